package search

import (
	"fmt"
	"messenger-lab/errors"
	"strings"
)

// Strategy selects how keywords are matched against message content.
// It is fixed when the index is built.
type Strategy int

const (
	// StrategyNone leaves search unconfigured: every query fails with ErrSearchStrategyNotSet.
	StrategyNone Strategy = iota
	// StrategyKeyword is case-sensitive substring containment.
	StrategyKeyword
	// StrategyFullText is a tokenised, case-insensitive match backed by bluge.
	StrategyFullText
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyKeyword:
		return "keyword"
	case StrategyFullText:
		return "fulltext"
	default:
		return "unknown"
	}
}

func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return StrategyNone, nil
	case "keyword":
		return StrategyKeyword, nil
	case "fulltext", "full-text":
		return StrategyFullText, nil
	default:
		return StrategyNone, fmt.Errorf("%w: %q", errors.ErrUnknownSearchStrategy, value)
	}
}
