package transform

import (
	"messenger-lab/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ASCII", "Hi Alice, how are you?", "?uoy era woh ,ecilA iH"},
		{"Multibyte runes", "été", "été"},
		{"Mixed runes", "abç", "çba"},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, Reverse(tt.input))
			// Reverse is its own inverse
			req.Equal(tt.input, Reverse(Reverse(tt.input)))
		})
	}
}

func TestChain_AppliesStagesInOrder(t *testing.T) {
	req := require.New(t)
	suffix := func(s string) Stage { return func(c string) string { return c + s } }

	req.Equal("x-a-b", Chain(suffix("-a"), suffix("-b"))("x"))
	req.Equal("x", Chain()("x"))
}

func TestRenderer_EncryptedMessage(t *testing.T) {
	req := require.New(t)
	message := domain.NewDirectMessage("john", []string{"alice"}, "Hi Alice, how are you?", true, time.Now())
	renderer := NewRenderer(nil)

	// When a reader asks for the view of an encrypted message
	view := renderer.Render(message)

	// Then the view is obscured
	req.True(view.Encrypted)
	req.NotEqual(message.Content, view.Content)
	req.Equal(Reverse(message.Content), view.Content)

	// And the canonical message is untouched
	req.Equal("Hi Alice, how are you?", message.Content)
}

func TestRenderer_ReadStagesRunBeforeEncryption(t *testing.T) {
	req := require.New(t)
	message := domain.NewDirectMessage("john", []string{"alice"}, "hello", false, time.Now())
	renderer := NewRenderer(nil, strings.ToUpper)

	req.Equal("HELLO", renderer.Render(message).Content)

	message.Encrypted = true
	req.Equal("OLLEH", renderer.Render(message).Content)
}
