// Package cellstore keeps fixed-width message slots and numbered 16-bit variables in a
// byte-addressable persistent device.
package cellstore

import (
	"encoding/binary"
	"fmt"

	"msgpanel/panel/fault"
)

const (
	// Erased is the byte value of unwritten device memory.
	Erased = 0xFF
	// Blank replaces Erased bytes on read and pads short writes.
	Blank = ' '
	// VarErased is the value of a variable that was never written.
	VarErased = 0xFFFF
)

// Variable numbers.
const (
	VarBrightness = 1
	VarLastCell   = 2
	VarFirstRun   = 3
)

// Device is the persistent memory behind a Store. *eeprom.Device satisfies it.
type Device interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int
}

// Layout places the slot and variable areas on the device.
type Layout struct {
	SlotCount int
	SlotWidth int
	// VarBase is the byte offset of variable 1. Variables are little-endian uint16.
	VarBase  int
	VarCount int
}

func DefaultLayout() Layout {
	return Layout{SlotCount: 50, SlotWidth: 32, VarBase: 3200, VarCount: 3}
}

// Validate checks that both areas fit on a device of size bytes without overlapping.
func (l Layout) Validate(size int) error {
	switch {
	case l.SlotCount <= 0 || l.SlotWidth <= 0:
		return fmt.Errorf("layout: %d slots of %d bytes: %w", l.SlotCount, l.SlotWidth, fault.ErrOutOfRange)
	case l.SlotWidth%2 != 0:
		return fmt.Errorf("layout: slot width %d is not two halves: %w", l.SlotWidth, fault.ErrOutOfRange)
	case l.VarCount < 0 || l.VarBase < 0:
		return fmt.Errorf("layout: variables at %d count %d: %w", l.VarBase, l.VarCount, fault.ErrOutOfRange)
	case l.SlotCount*l.SlotWidth > l.VarBase && l.VarCount > 0:
		return fmt.Errorf("layout: slot area ends at %d past variables at %d: %w", l.SlotCount*l.SlotWidth, l.VarBase, fault.ErrOutOfRange)
	case l.SlotCount*l.SlotWidth > size:
		return fmt.Errorf("layout: slot area ends at %d past device size %d: %w", l.SlotCount*l.SlotWidth, size, fault.ErrOutOfRange)
	case l.VarCount > 0 && l.VarBase+2*l.VarCount > size:
		return fmt.Errorf("layout: variables end at %d past device size %d: %w", l.VarBase+2*l.VarCount, size, fault.ErrOutOfRange)
	}
	return nil
}

// Store is not safe for concurrent use; the foreground loop owns it.
type Store struct {
	dev    Device
	layout Layout

	cacheIndex int
	cacheValid bool
	cache      []byte

	scratch []byte
}

func New(dev Device, l Layout) (*Store, error) {
	if dev == nil {
		return nil, fmt.Errorf("cellstore: device: %w", fault.ErrNullArgument)
	}
	if err := l.Validate(dev.Size()); err != nil {
		return nil, fmt.Errorf("cellstore: %w", err)
	}
	return &Store{
		dev:     dev,
		layout:  l,
		cache:   make([]byte, l.SlotWidth),
		scratch: make([]byte, l.SlotWidth),
	}, nil
}

func (s *Store) Layout() Layout { return s.layout }
func (s *Store) SlotCount() int { return s.layout.SlotCount }
func (s *Store) SlotWidth() int { return s.layout.SlotWidth }

func (s *Store) checkSlot(i int) error {
	if i < 0 || i >= s.layout.SlotCount {
		return fmt.Errorf("slot %d of %d: %w", i, s.layout.SlotCount, fault.ErrOutOfRange)
	}
	return nil
}

func (s *Store) offset(i int) int64 { return int64(i) * int64(s.layout.SlotWidth) }

// Read returns a copy of slot i with erased bytes shown as blanks.
func (s *Store) Read(i int) ([]byte, error) {
	if err := s.checkSlot(i); err != nil {
		return nil, err
	}
	out := make([]byte, s.layout.SlotWidth)
	if s.cacheValid && s.cacheIndex == i {
		copy(out, s.cache)
		return out, nil
	}
	if _, err := s.dev.ReadAt(out, s.offset(i)); err != nil {
		return nil, fmt.Errorf("read slot %d: %w", i, err)
	}
	for k, b := range out {
		if b == Erased {
			out[k] = Blank
		}
	}
	copy(s.cache, out)
	s.cacheIndex = i
	s.cacheValid = true
	return out, nil
}

// Write stores p as slot i. Short payloads are padded with blanks; long ones are cut at the slot width.
func (s *Store) Write(i int, p []byte) error {
	if err := s.checkSlot(i); err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("write slot %d: %w", i, fault.ErrNullArgument)
	}
	n := copy(s.scratch, p)
	for k := n; k < len(s.scratch); k++ {
		s.scratch[k] = Blank
	}
	return s.put(i, s.scratch)
}

// Clear erases slot i.
func (s *Store) Clear(i int) error {
	if err := s.checkSlot(i); err != nil {
		return err
	}
	for k := range s.scratch {
		s.scratch[k] = Erased
	}
	return s.put(i, s.scratch)
}

func (s *Store) put(i int, p []byte) error {
	// Invalidate first; a partial write leaves the device content unknown.
	s.Invalidate(i)
	if _, err := s.dev.WriteAt(p, s.offset(i)); err != nil {
		return fmt.Errorf("write slot %d: %w", i, err)
	}
	return nil
}

// ClearError reports the slot at which ClearAll stopped. Slots below Index were cleared.
type ClearError struct {
	Index int
	Err   error
}

func (e *ClearError) Error() string { return fmt.Sprintf("clear slot %d: %v", e.Index, e.Err) }
func (e *ClearError) Unwrap() error { return e.Err }

// ClearAll erases every slot in order and stops at the first failure.
func (s *Store) ClearAll() error {
	for i := 0; i < s.layout.SlotCount; i++ {
		if err := s.Clear(i); err != nil {
			return &ClearError{Index: i, Err: err}
		}
	}
	return nil
}

// Invalidate drops the cached copy of slot i, if any.
func (s *Store) Invalidate(i int) {
	if s.cacheIndex == i {
		s.cacheValid = false
	}
}

func (s *Store) varOffset(n int) (int64, error) {
	if n < 1 || n > s.layout.VarCount {
		return 0, fmt.Errorf("variable %d of %d: %w", n, s.layout.VarCount, fault.ErrOutOfRange)
	}
	return int64(s.layout.VarBase + 2*(n-1)), nil
}

// ReadVar returns variable n. Never-written variables read as VarErased.
func (s *Store) ReadVar(n int) (uint16, error) {
	off, err := s.varOffset(n)
	if err != nil {
		return 0, err
	}
	var b [2]byte
	if _, err := s.dev.ReadAt(b[:], off); err != nil {
		return 0, fmt.Errorf("read variable %d: %w", n, err)
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (s *Store) WriteVar(n int, v uint16) error {
	off, err := s.varOffset(n)
	if err != nil {
		return err
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	if _, err := s.dev.WriteAt(b[:], off); err != nil {
		return fmt.Errorf("write variable %d: %w", n, err)
	}
	return nil
}

// ClearVars resets every variable to VarErased.
func (s *Store) ClearVars() error {
	for n := 1; n <= s.layout.VarCount; n++ {
		if err := s.WriteVar(n, VarErased); err != nil {
			return err
		}
	}
	return nil
}
