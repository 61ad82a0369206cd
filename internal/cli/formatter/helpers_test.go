package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"older", now.Add(-72 * time.Hour), "Mar 11, 2026"},
		{"future", now.Add(48 * time.Hour), "Mar 16, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "75%", Percent(0.75))
	assert.Equal(t, "100%", Percent(1))
	assert.Equal(t, "0%", Percent(0))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890abcdef")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "slot build", Humanize("slot_build"))
	assert.Equal(t, "retell", Humanize("retell"))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	got := stripANSI(RenderBox("audit", "body text"))
	assert.Contains(t, got, "AUDIT")
	assert.Contains(t, got, "body text")
	assert.True(t, strings.Contains(got, "╭"), "rounded border")
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("levels"))
	assert.Equal(t, "LEVELS\n──────", got)
}
