package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	OfflinePolicy        string        `env:"OFFLINE_POLICY,default=push-on-reconnect"`
	SearchStrategy       string        `env:"SEARCH_STRATEGY,default=keyword"`
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=256"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	SampleInterval       time.Duration `env:"SAMPLE_INTERVAL,default=1s"`
	AuditFilepath        string        `env:"AUDIT_FILEPATH"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharacterReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MetricsPort          int           `env:"METRICS_PORT,default=0"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Words splits a comma separated list, dropping blanks and duplicates.
func Words(list string) []string {
	words := lo.Map(strings.Split(list, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Uniq(lo.Compact(words))
}
