//go:build !tinygo

// Command mkeeprom builds a panel EEPROM image from a text file of messages.
//
// Each non-empty line is one message, stored in the next free cell. A line of the form
// "NN: text" stores text in cell NN and continues from NN+1. Lines starting with '#'
// are comments.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"msgpanel/hal"
	"msgpanel/internal/config"
	"msgpanel/panel/cellstore"
	"msgpanel/panel/charset"
	"msgpanel/panel/eeprom"
)

const defaultImagePath = "msgpanel.eeprom"

type message struct {
	cell int
	text []byte
	line int
}

func main() {
	var srcPath string
	var outPath string
	var brightness int
	var last int
	flag.StringVar(&srcPath, "src", "", "Text file with one message per line.")
	flag.StringVar(&outPath, "out", defaultImagePath, "Output EEPROM image path.")
	flag.IntVar(&brightness, "brightness", config.Default().Panel.DefaultBrightness, "Stored brightness (0-9).")
	flag.IntVar(&last, "last", 0, "Cell shown at power-on.")
	flag.Parse()

	if srcPath == "" {
		fmt.Fprintln(os.Stderr, "error: -src is required")
		os.Exit(2)
	}
	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer func() { _ = in.Close() }()

	if err := run(in, outPath, config.Default(), brightness, last); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseMessages(r io.Reader, slots, width int) ([]message, error) {
	var out []message
	next := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cell := next
		if num, rest, ok := strings.Cut(line, ":"); ok {
			if i, err := strconv.Atoi(strings.TrimSpace(num)); err == nil {
				cell = i
				line = strings.TrimPrefix(rest, " ")
			}
		}
		if cell < 0 || cell >= slots {
			return nil, fmt.Errorf("line %d: cell %d outside 0..%d", n, cell, slots-1)
		}
		text := charset.EncodeStored(line)
		if len(text) > width {
			return nil, fmt.Errorf("line %d: %d characters, a cell holds %d", n, len(text), width)
		}
		out = append(out, message{cell: cell, text: text, line: n})
		next = cell + 1
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return out, nil
}

func run(src io.Reader, outPath string, cfg config.Config, brightness, last int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if brightness < 0 || brightness > cfg.Panel.MaxBrightness {
		return fmt.Errorf("brightness %d outside 0..%d", brightness, cfg.Panel.MaxBrightness)
	}
	layout := cfg.Layout()
	if last < 0 || last >= layout.SlotCount {
		return fmt.Errorf("last cell %d outside 0..%d", last, layout.SlotCount-1)
	}
	msgs, err := parseMessages(src, layout.SlotCount, layout.SlotWidth)
	if err != nil {
		return err
	}

	if err := os.Remove(outPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove old image %q: %w", outPath, err)
	}
	bus, err := hal.OpenEEPROMBus(outPath, hal.EEPROMBusConfig{
		Address:  uint16(cfg.Storage.Address),
		Size:     cfg.Storage.Size,
		PageSize: cfg.Storage.PageSize,
	})
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	dev, err := eeprom.New(bus, cfg.EEPROM())
	if err != nil {
		return err
	}
	store, err := cellstore.New(dev, layout)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		if err := store.Write(m.cell, m.text); err != nil {
			return fmt.Errorf("line %d: %w", m.line, err)
		}
	}
	for _, v := range []struct{ n, v int }{
		{cellstore.VarBrightness, brightness},
		{cellstore.VarLastCell, last},
		{cellstore.VarFirstRun, 0},
	} {
		if v.n > layout.VarCount {
			continue
		}
		if err := store.WriteVar(v.n, uint16(v.v)); err != nil {
			return err
		}
	}
	return bus.Close()
}
