package recs

import (
	"movieapi/internal/title"
)

// listSize is the target length of every recommendation list.
const listSize = 5

// Source identifies one of the three precomputed per-user recommendation
// tables.
type Source int

const (
	SourceLocation Source = iota
	SourceBasic
	SourceStreaming
)

func (s Source) String() string {
	switch s {
	case SourceLocation:
		return "location"
	case SourceBasic:
		return "basic"
	case SourceStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// UserRecommendations carries the three independently assembled lists for a
// user. The lists are not deduplicated against each other.
type UserRecommendations struct {
	LocationBased  []title.Item `json:"locationBased"`
	General        []title.Item `json:"general"`
	StreamingBased []title.Item `json:"streamingBased"`
}
