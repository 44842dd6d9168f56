package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTokenRoundTrip(t *testing.T) {
	var testTable = []string{"PRINT", "GOTO", "ELSE", "REM", "+", "MOD", "CIRCLE", "FIELD"}

	for _, kw := range testTable {
		tok, err := ToToken(kw)
		assert.NoError(t, err, "kw=%s", kw)
		spelling, width, ok := Spelling(tok)
		assert.True(t, ok, "kw=%s", kw)
		assert.Equal(t, len(tok), width, "kw=%s", kw)
		assert.Equal(t, kw, spelling, "kw=%s", kw)
	}
}

func TestToTokenUnknown(t *testing.T) {
	_, err := ToToken("NOTAKEYWORD")
	assert.Error(t, err)
}

func TestExtendedLeadBytesAreKeywordLeads(t *testing.T) {
	assert.True(t, IsKeywordLead(extALead))
	assert.True(t, IsKeywordLead(extBLead))
	assert.True(t, IsKeywordLead(KWPrint))
	assert.False(t, IsKeywordLead(0x00))
}

func TestLinenumWordsCoverJumpTargets(t *testing.T) {
	for _, kw := range []string{"GOTO", "GOSUB", "THEN", "ELSE", "RUN", "RESUME"} {
		assert.True(t, LinenumWords[kw], "kw=%s", kw)
	}
	assert.False(t, LinenumWords["PRINT"])
}

func TestShortNameExceptions(t *testing.T) {
	assert.True(t, ShortNameExceptions["FN"])
	assert.True(t, ShortNameExceptions["TAB"])
	assert.False(t, ShortNameExceptions["PRINT"])
}
