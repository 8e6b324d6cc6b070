package recs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserKey(t *testing.T) {
	tests := []struct {
		name         string
		externalID   string
		wantKey      int
		wantFallback bool
	}{
		{"all zeros", "00000000-0000-0000", 1, false},
		{"two hundred one wraps to two", "000000c9-rest-ignored", 2, false},
		{"exact multiple wraps to one", "000000c8", 1, false},
		{"short id falls back", "abc", 1, true},
		{"empty id falls back", "", 1, true},
		{"non-hex prefix falls back", "zzzzzzzz-0000", 1, true},
		{"prefix over signed 32-bit range falls back", "ffffffff-0000", 1, true},
		{"max signed 32-bit value", "7fffffff", int(int64(0x7fffffff)%200) + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, fellBack := UserKey(tt.externalID)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantFallback, fellBack)
		})
	}
}

func TestUserKey_Deterministic(t *testing.T) {
	first, _ := UserKey("deadbeef-cafe")
	for i := 0; i < 100; i++ {
		key, _ := UserKey("deadbeef-cafe")
		assert.Equal(t, first, key)
	}
}

func TestUserKey_Bounded(t *testing.T) {
	ids := []string{"00000000", "0000ffff", "12345678", "7fffffff", "deadbeef"}
	for _, id := range ids {
		key, _ := UserKey(id)
		assert.GreaterOrEqual(t, key, 1, "id %q", id)
		assert.LessOrEqual(t, key, 200, "id %q", id)
	}
}
