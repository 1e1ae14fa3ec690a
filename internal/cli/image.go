package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"msgpanel/panel/cellstore"
	"msgpanel/panel/charset"
	"msgpanel/panel/longtext"
	"msgpanel/panel/transmit"
)

var varNames = map[int]string{
	cellstore.VarBrightness: "brightness",
	cellstore.VarLastCell:   "last_cell",
	cellstore.VarFirstRun:   "first_run",
}

func dumpCmd(e *env) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "List the cells and variables stored in the EEPROM image",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, closeFn, err := e.openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			for i := 0; i < store.SlotCount(); i++ {
				slot, err := store.Read(i)
				if err != nil {
					return err
				}
				text := longtext.TrimRight(slot, cellstore.Blank)
				if len(text) == 0 && !all {
					continue
				}
				fmt.Fprintf(e.stdout, "%02d  %s\n", i, charset.Decode(text))
			}
			for n := 1; n <= store.Layout().VarCount; n++ {
				v, err := store.ReadVar(n)
				if err != nil {
					return err
				}
				name := varNames[n]
				if name == "" {
					name = "var" + strconv.Itoa(n)
				}
				if v == cellstore.VarErased {
					fmt.Fprintf(e.stdout, "%s = erased\n", name)
					continue
				}
				fmt.Fprintf(e.stdout, "%s = %d\n", name, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include blank cells")
	return cmd
}

func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cell %q: not a number", s)
	}
	return n, nil
}

func writeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "write <cell> <text>",
		Short: "Store text in a cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			i, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			store, closeFn, err := e.openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			text := charset.EncodeStored(args[1])
			if len(text) > store.SlotWidth() {
				return fmt.Errorf("cell %d: text is %d characters, the cell holds %d", i, len(text), store.SlotWidth())
			}
			return store.Write(i, text)
		},
	}
}

func clearCmd(e *env) *cobra.Command {
	var all, vars bool
	cmd := &cobra.Command{
		Use:   "clear [cell]",
		Short: "Erase one cell, every cell or the variables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 && !all && !vars {
				return fmt.Errorf("nothing to clear: give a cell, --all or --vars")
			}
			store, closeFn, err := e.openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			if len(args) == 1 {
				i, err := parseSlot(args[0])
				if err != nil {
					return err
				}
				if err := store.Clear(i); err != nil {
					return err
				}
			}
			if all {
				if err := store.ClearAll(); err != nil {
					return err
				}
			}
			if vars {
				return store.ClearVars()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "erase every cell")
	cmd.Flags().BoolVar(&vars, "vars", false, "erase the variables")
	return cmd
}

func frameCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "frame <brightness> <text>",
		Short: "Print the serial frame the panel sends for text",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("brightness %q: not a number", args[0])
			}
			cfg, err := e.load()
			if err != nil {
				return err
			}
			f := transmit.Frame{Brightness: b, Payload: []byte(args[1])}
			_, err = fmt.Fprintf(e.stdout, "%s\n", f.Bytes(cfg.Serial.MaxFrame))
			return err
		},
	}
}
