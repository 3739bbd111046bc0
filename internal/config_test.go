package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)

	_, err = CharacterRune("")
	req.Error(err)
	_, err = CharacterRune("**")
	req.Error(err)
}

func TestWords(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"spam", "scam"}, Words(" spam, scam,,spam "))
	req.Empty(Words(""))
}

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{"SEARCH_STRATEGY": "fulltext", "LIMIT_MESSAGES": "5"}, &config)

	req.NoError(err)
	req.Equal("fulltext", config.SearchStrategy)
	req.Equal("push-on-reconnect", config.OfflinePolicy)
	req.Equal(256, config.EventBufferSize)
	req.NotNil(config.LimitMessages)
	req.Equal(5, *config.LimitMessages)
	req.Empty(config.AuditFilepath)
	req.Zero(config.MetricsPort)
}
