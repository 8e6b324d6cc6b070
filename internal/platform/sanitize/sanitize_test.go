package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "a fine movie", "a fine movie"},
		{"script block removed", "nice <script>alert(1)</script> film", "nice  film"},
		{"script block case insensitive", "<SCRIPT src=x></SCRIPT>ok", "ok"},
		{"html tags stripped", "<b>bold</b> claim", "bold claim"},
		{"event handler removed", `<img src=x onerror=alert(1)>after`, "after"},
		{"script url removed", "see javascript:alert(1) here", "see alert(1) here"},
		{"empty passthrough", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", Encode("<b>hi</b>"))
	assert.Equal(t, "no markup", Encode("no markup"))
}
