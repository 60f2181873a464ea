package buffer

import (
	"testing"

	"github.com/bethropolis/jdiff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNumbered(t *testing.T, lb *LineBuffer) {
	t.Helper()
	for i, l := range lb.Lines() {
		assert.Equal(t, i+1, l.Number, "line %d misnumbered", i)
	}
}

func TestNewLineBufferStartsWithOneLine(t *testing.T) {
	lb := NewLineBuffer()
	assert.Equal(t, 1, lb.LineCount())
	assert.Equal(t, []string{""}, lb.Strings())
	assert.False(t, lb.IsModified())
}

func TestInsertRune(t *testing.T) {
	lb := NewLineBuffer("héllo")
	info, err := lb.InsertRune(types.Position{Line: 0, Col: 2}, 'X')
	require.NoError(t, err)

	assert.Equal(t, "héXllo", lb.Strings()[0])
	assert.Equal(t, types.Position{Line: 0, Col: 3}, info.End)
	assert.True(t, lb.IsModified())

	_, err = lb.InsertRune(types.Position{Line: 3, Col: 0}, 'X')
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = lb.InsertRune(types.Position{Line: 0, Col: 99}, 'X')
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestInsertLineAfterRenumbers(t *testing.T) {
	lb := NewLineBuffer("a", "b", "c")
	info, err := lb.InsertLineAfter(0)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "", "b", "c"}, lb.Strings())
	assert.Equal(t, 1, info.LinesDelta)
	assertNumbered(t, lb)
}

func TestMergeWithPrevious(t *testing.T) {
	lb := NewLineBuffer("ab", "cd", "ef")
	info, err := lb.MergeWithPrevious(1)
	require.NoError(t, err)

	assert.Equal(t, []string{"abcd", "ef"}, lb.Strings())
	assert.Equal(t, types.Position{Line: 0, Col: 2}, info.End)
	assertNumbered(t, lb)

	_, err = lb.MergeWithPrevious(0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDeleteRuneBefore(t *testing.T) {
	lb := NewLineBuffer("abc")
	_, err := lb.DeleteRuneBefore(types.Position{Line: 0, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, "ac", lb.Strings()[0])

	_, err = lb.DeleteRuneBefore(types.Position{Line: 0, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		pos     types.Position
		text    string
		want    []string
		end     types.Position
	}{
		{
			name:    "single line",
			initial: []string{"ad"},
			pos:     types.Position{Col: 1},
			text:    "bc",
			want:    []string{"abcd"},
			end:     types.Position{Col: 3},
		},
		{
			name:    "multi line",
			initial: []string{"head tail", "next"},
			pos:     types.Position{Col: 5},
			text:    "one\r\ntwo\nthree ",
			want:    []string{"head one", "two", "three tail", "next"},
			end:     types.Position{Line: 2, Col: 6},
		},
		{
			name:    "trailing newline",
			initial: []string{"x"},
			pos:     types.Position{Col: 1},
			text:    "y\n",
			want:    []string{"xy", ""},
			end:     types.Position{Line: 1, Col: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := NewLineBuffer(tt.initial...)
			info, err := lb.InsertText(tt.pos, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lb.Strings())
			assert.Equal(t, tt.end, info.End)
			assertNumbered(t, lb)
		})
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	lb := NewLineBuffer("a")
	lines := lb.Lines()
	lines[0].Text = "changed"
	assert.Equal(t, "a", lb.Strings()[0])
}

func TestBytesAndMarkSaved(t *testing.T) {
	lb := NewLineBuffer("a", "b")
	_, err := lb.InsertRune(types.Position{Line: 1, Col: 1}, 'c')
	require.NoError(t, err)
	assert.Equal(t, "a\nbc", string(lb.Bytes()))

	lb.MarkSaved()
	assert.False(t, lb.IsModified())
}
