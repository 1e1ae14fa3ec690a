//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostEEPROMDefaultPath = "msgpanel.eeprom"

	eepromDefaultAddress  = 0x50
	eepromDefaultSize     = 4096
	eepromDefaultPageSize = 32
)

var (
	// ErrNoDevice is returned for transactions addressed to a missing device.
	ErrNoDevice = errors.New("i2c: no device at address")
	// ErrDeviceBusy is returned while the device finishes an internal write cycle.
	ErrDeviceBusy = errors.New("i2c: device busy")
)

// EEPROMBusConfig describes the emulated 24Cxx part.
type EEPROMBusConfig struct {
	Address  uint16
	Size     int
	PageSize int
	// BusyTx is how many transactions after a write are refused while the part
	// completes its write cycle.
	BusyTx int
}

// EEPROMBus is an I2C bus with a single 24Cxx EEPROM whose contents live in a file.
//
// Writes use the part's page semantics: the address counter wraps inside the page.
type EEPROMBus struct {
	mu   sync.Mutex
	f    *os.File
	cfg  EEPROMBusConfig
	busy int
	txs  int
}

// OpenEEPROMBus opens or creates the image at path. A new or short image is padded with
// 0xFF, the erased state of the part.
func OpenEEPROMBus(path string, cfg EEPROMBusConfig) (*EEPROMBus, error) {
	if cfg.Address == 0 {
		cfg.Address = eepromDefaultAddress
	}
	if cfg.Size <= 0 {
		cfg.Size = eepromDefaultSize
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = eepromDefaultPageSize
	}
	if cfg.Size%cfg.PageSize != 0 {
		return nil, fmt.Errorf("eeprom image: size %d not a multiple of page %d", cfg.Size, cfg.PageSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eeprom image: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("eeprom image: %w", err)
	}
	if have := st.Size(); have < int64(cfg.Size) {
		fill := make([]byte, int64(cfg.Size)-have)
		for i := range fill {
			fill[i] = 0xFF
		}
		if _, err := f.WriteAt(fill, have); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("eeprom image: erase %s: %w", path, err)
		}
	}
	return &EEPROMBus{f: f, cfg: cfg}, nil
}

// Config returns the emulated part's geometry.
func (e *EEPROMBus) Config() EEPROMBusConfig { return e.cfg }

// Transactions returns how many transactions reached the part, refused ones included.
func (e *EEPROMBus) Transactions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.txs
}

// Tx performs an addressed transaction: w starts with the two-byte big-endian memory
// address, optionally followed by data to write; r is filled by a sequential read.
func (e *EEPROMBus) Tx(addr uint16, w, r []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.f == nil {
		return ErrNotImplemented
	}
	if addr != e.cfg.Address {
		return fmt.Errorf("%w 0x%02x", ErrNoDevice, addr)
	}
	e.txs++
	if e.busy > 0 {
		e.busy--
		return ErrDeviceBusy
	}
	if len(w) < 2 {
		return fmt.Errorf("i2c: eeprom needs a 2-byte address, got %d bytes", len(w))
	}
	off := (int(w[0])<<8 | int(w[1])) % e.cfg.Size

	if data := w[2:]; len(data) > 0 {
		if err := e.writePage(off, data); err != nil {
			return err
		}
		e.busy = e.cfg.BusyTx
	}
	if len(r) > 0 {
		return e.readSeq(off, r)
	}
	return nil
}

// ReadRegister is not supported: the part uses 16-bit memory addresses.
func (e *EEPROMBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return ErrNotImplemented
}

// WriteRegister is not supported: the part uses 16-bit memory addresses.
func (e *EEPROMBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return ErrNotImplemented
}

func (e *EEPROMBus) writePage(off int, data []byte) error {
	page := off - off%e.cfg.PageSize
	if len(data) > e.cfg.PageSize {
		// Only the last PageSize bytes survive the rollover.
		off = page + (off-page+len(data))%e.cfg.PageSize
		data = data[len(data)-e.cfg.PageSize:]
	}
	for len(data) > 0 {
		n := page + e.cfg.PageSize - off
		if n > len(data) {
			n = len(data)
		}
		if _, err := e.f.WriteAt(data[:n], int64(off)); err != nil {
			return fmt.Errorf("eeprom write at %d: %w", off, err)
		}
		data = data[n:]
		off = page
	}
	return nil
}

func (e *EEPROMBus) readSeq(off int, r []byte) error {
	for len(r) > 0 {
		n := e.cfg.Size - off
		if n > len(r) {
			n = len(r)
		}
		if _, err := e.f.ReadAt(r[:n], int64(off)); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("eeprom read at %d: %w", off, err)
		}
		r = r[n:]
		off = 0
	}
	return nil
}

// Close flushes and releases the image.
func (e *EEPROMBus) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.f == nil {
		return nil
	}
	err := e.f.Close()
	e.f = nil
	return err
}
