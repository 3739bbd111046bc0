package domain

// ChannelID names a broadcast group.
type ChannelID string

// Set is an unordered collection of participant IDs.
type Set map[string]struct{}
