package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityFor(t *testing.T) {
	cases := map[string]string{
		"ban":             SeverityError,
		"kick":            SeverityError,
		"message_delete":  SeverityError,
		"warn":            SeverityWarning,
		"mute":            SeverityWarning,
		"timeout":         SeverityWarning,
		"unban":           SeveritySuccess,
		"unmute":          SeveritySuccess,
		"ticket_resolved": SeveritySuccess,
		"approve":         SeveritySuccess,
		"member_join":     SeverityInfo,
		"":                SeverityInfo,
		"something_else":  SeverityInfo,
	}
	for input, want := range cases {
		assert.Equal(t, want, SeverityFor(input), "actionType %q", input)
	}
}

func TestSeverityForIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, SeverityError, SeverityFor("BAN"))
	assert.Equal(t, SeveritySuccess, SeverityFor("UnBan"))
}

// Undo actions embed their destructive counterpart as a substring; they must
// still classify as success.
func TestSeverityForUndoActionsWin(t *testing.T) {
	assert.Equal(t, SeveritySuccess, SeverityFor("unban_member"))
	assert.Equal(t, SeveritySuccess, SeverityFor("unmute_member"))
}
