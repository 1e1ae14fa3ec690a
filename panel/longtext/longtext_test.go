package longtext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func slot(first, second string) []byte {
	return append(PadRight([]byte(first), 16, ' '), PadRight([]byte(second), 16, ' ')...)
}

func TestSplit(t *testing.T) {
	content := slot("hello", "world")

	seg := Split(content, First)
	require.Equal(t, First, seg.Part)
	require.Equal(t, PadRight([]byte("hello"), 16, ' '), seg.Text)

	seg = Split(content, Second)
	require.Equal(t, PadRight([]byte("world"), 16, ' '), seg.Text)

	seg.Text[0] = 'X'
	require.Equal(t, byte('w'), content[16], "Split copies")
}

func TestMergePreservesOtherHalf(t *testing.T) {
	content := slot("hello", "world")
	content[31] = 0x00

	out := Merge(content, 32, Segment{Part: First, Text: PadRight([]byte("bye"), 16, ' ')}, ' ')
	require.Equal(t, PadRight([]byte("bye"), 16, ' '), out[:16])
	require.Equal(t, content[16:], out[16:])

	out = Merge(content, 32, Segment{Part: Second, Text: []byte("new")}, ' ')
	require.Equal(t, content[:16], out[:16])
	require.Equal(t, []byte("new"), out[16:19])
	require.Equal(t, content[19:], out[19:], "bytes past the edited prefix are kept")
}

func TestMergePadsShortContent(t *testing.T) {
	out := Merge([]byte("ab"), 32, Segment{Part: Second, Text: []byte("cd")}, ' ')
	require.Len(t, out, 32)
	require.Equal(t, []byte("ab"), out[:2])
	require.Equal(t, bytes.Repeat([]byte{' '}, 14), out[2:16])
	require.Equal(t, []byte("cd"), out[16:18])
}

func TestMergeCutsLongSegment(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, 20)
	out := Merge(slot("", "keep"), 32, Segment{Part: First, Text: long}, ' ')
	require.Equal(t, bytes.Repeat([]byte{'x'}, 16), out[:16])
	require.Equal(t, []byte("keep"), out[16:20])
}

func TestPartHelpers(t *testing.T) {
	require.Equal(t, Second, First.Other())
	require.Equal(t, First, Second.Other())
	require.Equal(t, 1, First.Number())
	require.Equal(t, 2, Second.Number())
}

func TestTrimPad(t *testing.T) {
	require.Equal(t, []byte("ab"), TrimRight([]byte("ab  "), ' '))
	require.Empty(t, TrimRight([]byte("   "), ' '))
	require.Equal(t, []byte("ab  "), PadRight([]byte("ab"), 4, ' '))
	require.Equal(t, []byte("ab"), PadRight([]byte("abcd"), 2, ' '))
}
