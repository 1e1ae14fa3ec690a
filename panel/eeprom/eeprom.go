// Package eeprom drives a 24Cxx-style serial EEPROM over an I2C bus.
package eeprom

import (
	"fmt"
	"time"

	"tinygo.org/x/drivers"

	"msgpanel/panel/fault"
)

const (
	// DefaultAddress is the 7-bit bus address with A0..A2 tied low.
	DefaultAddress = 0x50
	// DefaultSize is the capacity of a 24C32 in bytes.
	DefaultSize = 4096
	// DefaultPageSize is the 24C32 write page.
	DefaultPageSize = 32
	// DefaultRetries covers the 5 ms internal write cycle at the default backoff.
	DefaultRetries = 10
	DefaultBackoff = time.Millisecond
)

// Config describes the attached part.
type Config struct {
	Address  uint16
	Size     int
	PageSize int
	// Retries is the number of attempts per bus transaction.
	Retries int
	Backoff time.Duration
}

func DefaultConfig() Config {
	return Config{
		Address:  DefaultAddress,
		Size:     DefaultSize,
		PageSize: DefaultPageSize,
		Retries:  DefaultRetries,
		Backoff:  DefaultBackoff,
	}
}

// Device is a byte-addressable view of the EEPROM.
//
// Device is not safe for concurrent use.
type Device struct {
	bus drivers.I2C
	cfg Config

	// sleep is replaced in tests.
	sleep func(time.Duration)
	wbuf  []byte
}

// New returns a device on bus. Zero fields in cfg take their defaults.
func New(bus drivers.I2C, cfg Config) (*Device, error) {
	if bus == nil {
		return nil, fmt.Errorf("eeprom: bus: %w", fault.ErrNullArgument)
	}
	def := DefaultConfig()
	if cfg.Address == 0 {
		cfg.Address = def.Address
	}
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.Retries <= 0 {
		cfg.Retries = def.Retries
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = 0
	}
	if cfg.Size > 1<<16 {
		return nil, fmt.Errorf("eeprom: size %d exceeds 16-bit addressing: %w", cfg.Size, fault.ErrOutOfRange)
	}
	return &Device{
		bus:   bus,
		cfg:   cfg,
		sleep: time.Sleep,
		wbuf:  make([]byte, 2+cfg.PageSize),
	}, nil
}

// Size returns the capacity in bytes.
func (d *Device) Size() int { return d.cfg.Size }

// PageSize returns the write page size in bytes.
func (d *Device) PageSize() int { return d.cfg.PageSize }

func (d *Device) check(p []byte, off int64) error {
	if p == nil {
		return fault.ErrNullArgument
	}
	if off < 0 || off+int64(len(p)) > int64(d.cfg.Size) {
		return fmt.Errorf("offset %d len %d size %d: %w", off, len(p), d.cfg.Size, fault.ErrOutOfRange)
	}
	return nil
}

// ReadAt reads len(p) bytes starting at off in one sequential read.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if err := d.check(p, off); err != nil {
		return 0, fmt.Errorf("eeprom read: %w", err)
	}
	if len(p) == 0 {
		return 0, nil
	}
	addr := [2]byte{byte(off >> 8), byte(off)}
	if err := d.tx(addr[:], p); err != nil {
		return 0, fmt.Errorf("eeprom read at %d: %w", off, err)
	}
	return len(p), nil
}

// WriteAt writes p starting at off. Every page-boundary crossing starts a new bus transaction.
func (d *Device) WriteAt(p []byte, off int64) (int, error) {
	if err := d.check(p, off); err != nil {
		return 0, fmt.Errorf("eeprom write: %w", err)
	}
	n := 0
	for n < len(p) {
		at := off + int64(n)
		chunk := d.cfg.PageSize - int(at%int64(d.cfg.PageSize))
		if rest := len(p) - n; chunk > rest {
			chunk = rest
		}
		w := d.wbuf[:2+chunk]
		w[0] = byte(at >> 8)
		w[1] = byte(at)
		copy(w[2:], p[n:n+chunk])
		if err := d.tx(w, nil); err != nil {
			return n, fmt.Errorf("eeprom write at %d: %w", at, err)
		}
		n += chunk
	}
	return n, nil
}

// tx retries while the part NAKs its address during an internal write cycle.
func (d *Device) tx(w, r []byte) error {
	var err error
	for attempt := 0; attempt < d.cfg.Retries; attempt++ {
		if attempt > 0 && d.cfg.Backoff > 0 {
			d.sleep(d.cfg.Backoff)
		}
		if err = d.bus.Tx(d.cfg.Address, w, r); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", fault.ErrTransactionTimeout, d.cfg.Retries, err)
}
