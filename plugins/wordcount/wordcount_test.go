package wordcount

import (
	"context"
	"testing"

	"github.com/bethropolis/jdiff/internal/commands"
	"github.com/bethropolis/jdiff/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Stats
	}{
		{"empty buffer", []string{""}, Stats{Lines: 1}},
		{"one line", []string{"hello  world"}, Stats{Lines: 1, Words: 2, Bytes: 12}},
		{"newlines count as bytes", []string{"a b", "", "c"}, Stats{Lines: 3, Words: 3, Bytes: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.lines))
		})
	}
}

func TestWordCountCommand(t *testing.T) {
	st := state.New(state.Options{MaxEditors: 1, HistoryLimit: 10})
	st.Editors.Active().InsertText("one two\nthree")

	registry := commands.NewRegistry()
	p := &WordCount{}
	require.NoError(t, registry.Register("wordcount", p.executeWordCount))

	s := commands.NewStore(context.Background(), registry, commands.Env{State: st})
	follow, err := s.Execute("wordcount")
	require.NoError(t, err)
	require.Len(t, follow, 1)
	assert.Equal(t, "Lines: 2, Words: 3, Bytes: 13", follow[0].Text)
}
