package recs

import (
	"strconv"
)

const (
	// userKeySpace is the size of the synthetic user population the
	// recommendation tables are keyed over.
	userKeySpace = 200

	// defaultUserKey is used when an external id cannot be parsed.
	defaultUserKey = 1

	keyPrefixLen = 8
)

// UserKey deterministically maps an opaque external user identifier onto
// the bounded key space [1, 200] of the precomputed tables. The first 8
// characters are read as a base-16 integer; ids that are too short or not
// hexadecimal fall back to the default key. The mapping is many-to-one by
// design: the tables cover a small synthetic population, not the full
// identity space. The second return value reports the fallback.
func UserKey(externalID string) (int, bool) {
	if len(externalID) < keyPrefixLen {
		return defaultUserKey, true
	}
	v, err := strconv.ParseInt(externalID[:keyPrefixLen], 16, 32)
	if err != nil {
		return defaultUserKey, true
	}
	return int(v%userKeySpace) + 1, false
}
