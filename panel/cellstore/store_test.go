package cellstore

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"msgpanel/panel/fault"
)

var errBus = errors.New("bus error")

// countingDevice is an in-memory device that counts calls and can fail on demand.
type countingDevice struct {
	mem       []byte
	reads     int
	writes    int
	failRead  bool
	failWrite func(off int64) bool
}

func newCountingDevice(size int) *countingDevice {
	return &countingDevice{mem: bytes.Repeat([]byte{Erased}, size)}
}

func (d *countingDevice) Size() int { return len(d.mem) }

func (d *countingDevice) ReadAt(p []byte, off int64) (int, error) {
	d.reads++
	if d.failRead {
		return 0, errBus
	}
	return copy(p, d.mem[off:]), nil
}

func (d *countingDevice) WriteAt(p []byte, off int64) (int, error) {
	d.writes++
	if d.failWrite != nil && d.failWrite(off) {
		return 0, errBus
	}
	return copy(d.mem[off:], p), nil
}

func newTestStore(t *testing.T) (*Store, *countingDevice) {
	t.Helper()
	dev := newCountingDevice(4096)
	s, err := New(dev, DefaultLayout())
	require.NoError(t, err)
	return s, dev
}

func pad(s string) []byte {
	out := bytes.Repeat([]byte{Blank}, 32)
	copy(out, s)
	return out
}

func TestNew(t *testing.T) {
	_, err := New(nil, DefaultLayout())
	require.ErrorIs(t, err, fault.ErrNullArgument)

	tests := []struct {
		name   string
		layout Layout
		size   int
	}{
		{"no slots", Layout{SlotCount: 0, SlotWidth: 32}, 4096},
		{"odd width", Layout{SlotCount: 10, SlotWidth: 31}, 4096},
		{"overlaps variables", Layout{SlotCount: 101, SlotWidth: 32, VarBase: 3200, VarCount: 3}, 4096},
		{"slots past device", Layout{SlotCount: 50, SlotWidth: 32}, 1024},
		{"variables past device", Layout{SlotCount: 50, SlotWidth: 32, VarBase: 4095, VarCount: 1}, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newCountingDevice(tt.size), tt.layout)
			require.ErrorIs(t, err, fault.ErrOutOfRange)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	for _, i := range []int{0, 6, 49} {
		require.NoError(t, s.Write(i, []byte("message")))
		got, err := s.Read(i)
		require.NoError(t, err)
		require.Equal(t, pad("message"), got)
	}
}

func TestWriteTruncatesAtSlotWidth(t *testing.T) {
	s, dev := newTestStore(t)
	long := bytes.Repeat([]byte{'x'}, 40)
	require.NoError(t, s.Write(3, long))
	require.Equal(t, bytes.Repeat([]byte{'x'}, 32), dev.mem[96:128])
	require.Equal(t, byte(Erased), dev.mem[128], "next slot untouched")
}

func TestReadMapsErasedToBlank(t *testing.T) {
	s, dev := newTestStore(t)
	copy(dev.mem[32:], []byte{'a', 0x00, 0xFF, 'b'})

	got, err := s.Read(1)
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 0x00, ' ', 'b'}, got[:4])
	require.Equal(t, pad(""), func() []byte { b, _ := s.Read(2); return b }())
}

func TestOutOfRangeDoesNoIO(t *testing.T) {
	s, dev := newTestStore(t)
	for _, i := range []int{-1, 50, 1000} {
		_, err := s.Read(i)
		require.ErrorIs(t, err, fault.ErrOutOfRange)
		require.ErrorIs(t, s.Write(i, []byte("x")), fault.ErrOutOfRange)
		require.ErrorIs(t, s.Clear(i), fault.ErrOutOfRange)
	}
	_, err := s.ReadVar(0)
	require.ErrorIs(t, err, fault.ErrOutOfRange)
	require.ErrorIs(t, s.WriteVar(4, 1), fault.ErrOutOfRange)
	require.Zero(t, dev.reads)
	require.Zero(t, dev.writes)
}

func TestCacheHitSkipsDevice(t *testing.T) {
	s, dev := newTestStore(t)
	require.NoError(t, s.Write(5, []byte("hello")))

	first, err := s.Read(5)
	require.NoError(t, err)
	require.Equal(t, 1, dev.reads)

	first[0] = 'X'
	second, err := s.Read(5)
	require.NoError(t, err)
	require.Equal(t, 1, dev.reads, "second read served from cache")
	require.Equal(t, pad("hello"), second, "cache returns copies")

	_, err = s.Read(6)
	require.NoError(t, err)
	require.Equal(t, 2, dev.reads)
}

func TestWriteInvalidatesOnlyCachedIndex(t *testing.T) {
	s, dev := newTestStore(t)
	_, err := s.Read(5)
	require.NoError(t, err)

	require.NoError(t, s.Write(7, []byte("other")))
	_, err = s.Read(5)
	require.NoError(t, err)
	require.Equal(t, 1, dev.reads)

	require.NoError(t, s.Write(5, []byte("new")))
	got, err := s.Read(5)
	require.NoError(t, err)
	require.Equal(t, 2, dev.reads)
	require.Equal(t, pad("new"), got)
}

func TestFailedWriteStillInvalidates(t *testing.T) {
	s, dev := newTestStore(t)
	_, err := s.Read(5)
	require.NoError(t, err)

	dev.failWrite = func(int64) bool { return true }
	require.ErrorIs(t, s.Write(5, []byte("new")), errBus)

	_, err = s.Read(5)
	require.NoError(t, err)
	require.Equal(t, 2, dev.reads)
}

func TestFailedReadLeavesCache(t *testing.T) {
	s, dev := newTestStore(t)
	require.NoError(t, s.Write(1, []byte("one")))
	_, err := s.Read(1)
	require.NoError(t, err)

	dev.failRead = true
	_, err = s.Read(2)
	require.ErrorIs(t, err, errBus)

	got, err := s.Read(1)
	require.NoError(t, err)
	require.Equal(t, pad("one"), got)
}

func TestClearAll(t *testing.T) {
	s, dev := newTestStore(t)
	for i := 0; i < 50; i++ {
		require.NoError(t, s.Write(i, []byte("data")))
	}
	require.NoError(t, s.ClearAll())
	require.Equal(t, bytes.Repeat([]byte{Erased}, 1600), dev.mem[:1600])

	got, err := s.Read(0)
	require.NoError(t, err)
	require.Equal(t, pad(""), got)
}

func TestClearAllStopsAtFirstError(t *testing.T) {
	s, dev := newTestStore(t)
	for i := 0; i < 50; i++ {
		require.NoError(t, s.Write(i, []byte("data")))
	}
	dev.failWrite = func(off int64) bool { return off == 10*32 }

	err := s.ClearAll()
	var ce *ClearError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 10, ce.Index)
	require.ErrorIs(t, err, errBus)

	require.Equal(t, byte(Erased), dev.mem[9*32])
	require.Equal(t, byte('d'), dev.mem[11*32], "slots after the failure are untouched")
}

func TestVariables(t *testing.T) {
	s, dev := newTestStore(t)
	v, err := s.ReadVar(VarBrightness)
	require.NoError(t, err)
	require.Equal(t, uint16(VarErased), v)

	require.NoError(t, s.WriteVar(VarBrightness, 7))
	require.NoError(t, s.WriteVar(VarLastCell, 0x0123))
	require.Equal(t, []byte{7, 0, 0x23, 0x01}, dev.mem[3200:3204])

	v, err = s.ReadVar(VarLastCell)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0123), v)

	require.NoError(t, s.ClearVars())
	v, err = s.ReadVar(VarBrightness)
	require.NoError(t, err)
	require.Equal(t, uint16(VarErased), v)
}
