package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mblarsen/trans-selection/internal/clipboard"
	"github.com/mblarsen/trans-selection/internal/failure"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  hello\nworld  ":     "hello world",
		"one\r\ntwo\rthree":    "one two three",
		"a\n\nb":               "a  b",
		"x\fy\vz":              "x y z",
		"a\u2028b\u2029c":      "a b c",
		"one\u0085two":         "one two",
		"f\x1cg\x1dh\x1ei":     "f g h i",
		"  keep  inner  gaps ": "keep  inner  gaps",
		" \n\t ":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestReadSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("primary selection wins", func(t *testing.T) {
		b := &mockBoard{Primary: "  hello\nworld  ", Clipboard: "ignored"}
		out := ReadSelection(ctx, b)
		assert.Equal(t, SelectionFound, out.Status)
		assert.Equal(t, "hello world", out.Text)
		assert.Equal(t, []clipboard.Selection{clipboard.Primary}, b.Pasted)
	})

	t.Run("falls back to clipboard", func(t *testing.T) {
		b := &mockBoard{Primary: " \n", Clipboard: "copied\ntext\n"}
		out := ReadSelection(ctx, b)
		assert.Equal(t, SelectionFound, out.Status)
		assert.Equal(t, "copied text", out.Text)
		assert.Equal(t, []clipboard.Selection{clipboard.Primary, clipboard.Clipboard}, b.Pasted)
	})

	t.Run("both empty", func(t *testing.T) {
		out := ReadSelection(ctx, &mockBoard{})
		assert.Equal(t, SelectionNotFound, out.Status)
		assert.Empty(t, out.Text)
		assert.NoError(t, out.Err)
	})

	t.Run("reader fails", func(t *testing.T) {
		out := ReadSelection(ctx, &mockBoard{PasteErr: errors.New("wl-paste: not found")})
		assert.Equal(t, SelectionReadError, out.Status)
		require.Error(t, out.Err)
		assert.Equal(t, failure.CommandExecution, failure.KindOf(out.Err))
	})
}
