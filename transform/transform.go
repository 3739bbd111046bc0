// Package transform builds read-time views of messages.
// A stage never mutates the stored message: it maps content to content.
package transform

import (
	"messenger-lab/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Stage is a pure content transformation.
type Stage func(content string) string

// Chain applies the stages left to right. An empty chain is the identity.
func Chain(stages ...Stage) Stage {
	return func(content string) string {
		return lo.Reduce(stages, func(acc string, stage Stage, _ int) string {
			return stage(acc)
		}, content)
	}
}

// Reverse obscures content by reversing its runes.
// It is a placeholder for encryption at rest and is its own inverse.
func Reverse(content string) string {
	runes := []rune(content)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// View is what a reader gets for a message.
// Content may differ from the canonical content; everything else is the stored message.
type View struct {
	MessageID uuid.UUID
	SenderID  string
	Encrypted bool
	Content   string
}

// Renderer produces views from canonical messages.
type Renderer struct {
	read    Stage
	encrypt Stage
}

// NewRenderer applies read stages to every view and, for encrypted messages,
// the encryption stage last. A nil encryption stage defaults to Reverse.
func NewRenderer(encrypt Stage, read ...Stage) Renderer {
	if encrypt == nil {
		encrypt = Reverse
	}
	return Renderer{read: Chain(read...), encrypt: encrypt}
}

func (r Renderer) Render(message domain.Message) View {
	content := r.read(message.Content)
	if message.Encrypted {
		content = r.encrypt(content)
	}
	return View{
		MessageID: message.ID,
		SenderID:  message.SenderID,
		Encrypted: message.Encrypted,
		Content:   content,
	}
}
