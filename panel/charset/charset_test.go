package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	enc := Encode("Яч: 05")
	require.Equal(t, []byte{0xDF, 0xF7, ':', ' ', '0', '5'}, enc)
	require.Equal(t, "Яч: 05", Decode(enc))
}

func TestEncodeStoredAvoidsErasedCode(t *testing.T) {
	require.Equal(t, byte(0xFF), Encode("я")[0])
	enc := EncodeStored("Первая я")
	require.NotContains(t, enc, byte(0xFF))
	require.Equal(t, "ПерваЯ Я", Decode(enc))
	require.Equal(t, Encode("Вторник"), EncodeStored("Вторник"))
}

func TestEncodeReplacesUnmapped(t *testing.T) {
	require.Equal(t, []byte{'a', '?', 'b'}, Encode("a★b"))
	require.Equal(t, []byte{'?'}, Encode("\xff"))
}

func TestDecodeReplacesUnassigned(t *testing.T) {
	// 0x98 is unassigned in Windows-1251.
	require.Equal(t, "x?", Decode([]byte{'x', 0x98}))
}

func TestDefaultTable(t *testing.T) {
	tab := DefaultTable()
	require.Equal(t, 56, tab.Len())
	require.Equal(t, byte(' '), tab.At(0))
	require.Equal(t, Encode("А")[0], tab.At(1))
	require.Equal(t, 1, tab.Index(Encode("А")[0]))
	require.Equal(t, 0, tab.Index('z'), "absent characters map to the blank")
	require.Equal(t, byte(' '), tab.At(99))
	require.Equal(t, DefaultChars, tab.String())
}

func TestNewTableRejectsBadInput(t *testing.T) {
	_, err := NewTable("")
	require.Error(t, err)

	_, err = NewTable("AA")
	require.ErrorContains(t, err, "duplicate")

	_, err = NewTable("A★")
	require.ErrorContains(t, err, "no CP1251 code")
}
