package moderation

import (
	"fmt"
	"log/slog"
	"messenger-lab/domain"
	"messenger-lab/transform"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// Noise is skipped, so dictionary words must not hide across word boundaries
// (e.g. "scam" inside "is cam").
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"spam", "scam", "phishing"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Single word, spaces kept",
			input:    "Stop the spam now",
			expected: "Stop the **** now",
		},
		{
			name:     "Repeated word",
			input:    "spam spam",
			expected: "**** ****",
		},
		{
			name:     "Leet speak with dots",
			input:    "Beware of $.c.4.m",
			expected: "Beware of *******",
		},
		{
			name:     "Uppercase with dashes",
			input:    "P-H-I-S-H-I-N-G alert",
			expected: "*************** alert",
		},
		{
			name:     "Accented neighbours",
			input:    "Un été sans spam",
			expected: "Un été sans ****",
		},
		{
			name:     "Trailing punctuation is kept",
			input:    "No spam!",
			expected: "No ****!",
		},
		{
			name:     "Nothing to censor",
			input:    "Hello, world!",
			expected: "Hello, world!",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, mod.Censor(tt.input), "test=%s,", tt.name)
		})
	}
}

func TestModerator_NoiseOnlyWordsAreIgnored(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given words made of noise only
	dictionary := []string{"...", ",,,", "", "spam"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then real words are still censored
	req.Equal("The **** is gone", mod.Censor("The spam is gone"))

	// And punctuation is left alone
	req.Equal("Hello ...", mod.Censor("Hello ..."))
}

func TestModerator_EmptyDictionary(t *testing.T) {
	req := require.New(t)

	// Given no censored word at all
	mod, err := NewModerator(nil, replacementChar, slog.Default())
	req.NoError(err)

	// Then content goes through untouched
	req.Equal("spam", mod.Censor("spam"))
}

func TestModerator_CensorAsReadStage(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"scam"}, replacementChar, slog.Default())
	req.NoError(err)
	renderer := transform.NewRenderer(nil, mod.Censor)

	// Given a plain and an encrypted message mentioning a censored word
	plain := domain.NewDirectMessage("john", []string{"alice"}, "this is a sc4m", false, time.Now())
	secret := domain.NewDirectMessage("john", []string{"alice"}, "scam ahead", true, time.Now())

	// When both are rendered
	plainView := renderer.Render(plain)
	secretView := renderer.Render(secret)

	// Then the word is masked before the encryption stage runs
	req.Equal("this is a ****", plainView.Content)
	req.Equal("daeha ****", secretView.Content)

	// And the canonical content is untouched
	req.Equal("this is a sc4m", plain.Content)
	req.Equal("scam ahead", secret.Content)
}

func BenchmarkModerator_Censor(b *testing.B) {
	words := make([]string, 0, 10_000)
	for i := 0; i < 10_000; i++ {
		words = append(words, fmt.Sprintf("word%dx", i))
	}
	mod, err := NewModerator(words, replacementChar, slog.Default())
	if err != nil {
		b.Fatal(err)
	}
	input := "a rather long sentence mentioning word42x and word9999x between friends"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mod.Censor(input)
	}
}
