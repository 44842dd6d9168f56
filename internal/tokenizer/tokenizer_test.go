package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marioaugustorama/pcbasic/internal/console"
	"github.com/marioaugustorama/pcbasic/internal/floaterr"
	"github.com/marioaugustorama/pcbasic/internal/strheap"
	"github.com/marioaugustorama/pcbasic/internal/token"
	"github.com/marioaugustorama/pcbasic/internal/values"
)

func newTestTokeniser() *Tokeniser {
	heap := strheap.NewHeap()
	handler := floaterr.NewHandler(&console.Buffer{})
	vals := values.NewFacade(heap, handler, false)
	return New(vals)
}

func TestTokeniseStoredLineEnvelope(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("10 PRINT")
	assert.NoError(t, err)
	assert.Equal(t, byte(token.StoredLineMarker), out[0])
	assert.Equal(t, token.EnvelopeMagic[0], out[1])
	assert.Equal(t, token.EnvelopeMagic[1], out[2])
	assert.Equal(t, byte(10), out[3])
	assert.Equal(t, byte(0), out[4])
	assert.Equal(t, token.KWPrint, out[5])
}

func TestTokeniseDirectLineAnchor(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("PRINT 1")
	assert.NoError(t, err)
	assert.Equal(t, byte(token.DirectLineMarker), out[0])
}

func TestTokeniseKeyword(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("PRINT")
	assert.NoError(t, err)
	assert.Contains(t, out, token.KWPrint)
}

func TestTokeniseQuestionMarkIsPrint(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("? 1")
	assert.NoError(t, err)
	assert.Equal(t, token.KWPrint, out[1])
}

func TestTokeniseApostropheIsColonRemRem(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("' hi")
	assert.NoError(t, err)
	assert.Equal(t, byte(token.DirectLineMarker), out[1])
	assert.Equal(t, token.KWRem, out[2])
	assert.Equal(t, token.OREM, out[3])
}

func TestTokeniseElseGetsColonPrefix(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("ELSE")
	assert.NoError(t, err)
	assert.Equal(t, byte(token.DirectLineMarker), out[1])
	assert.Equal(t, token.KWElse, out[2])
}

func TestTokeniseWhileGetsPlusSuffix(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("WHILE")
	assert.NoError(t, err)
	assert.Equal(t, token.KWWhile, out[1])
	assert.Equal(t, token.OPlus, out[2])
}

func TestTokeniseGotoRunTogetherWithSpaces(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("GO  TO")
	assert.NoError(t, err)
	assert.Contains(t, out, token.KWGoto)
}

func TestTokeniseGoSub(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("GO SUB")
	assert.NoError(t, err)
	assert.Contains(t, out, token.KWGosub)
}

func TestTokeniseGoStandaloneIdentifier(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("GOX = 1")
	assert.NoError(t, err)
	assert.Contains(t, string(out), "GOX")
}

func TestTokeniseSmallIntLiteral(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("PRINT 5")
	assert.NoError(t, err)
	small, _ := token.SmallInt(5)
	assert.Contains(t, out, small)
}

func TestTokeniseHexLiteral(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("&HFF")
	assert.NoError(t, err)
	assert.Contains(t, out, byte(token.THex))
}

func TestTokeniseOctLiteral(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("&O17")
	assert.NoError(t, err)
	assert.Contains(t, out, byte(token.TOct))
}

func TestTokeniseStringLiteralPassthrough(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine(`PRINT "HELLO"`)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"HELLO"`)
}

func TestTokeniseRemPassesRestVerbatim(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("REM this is a comment : not a statement")
	assert.NoError(t, err)
	assert.Contains(t, string(out), "this is a comment : not a statement")
}

func TestTokeniseDataPassesThroughExceptLiterals(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine(`DATA 1,2,"three,four"`)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `1,2,"three,four"`)
}

func TestTokeniseElseLookaheadAvoidsExponent(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("PRINT 5ELSE")
	assert.NoError(t, err)
	assert.Contains(t, out, token.KWPrint)
	assert.Contains(t, out, token.KWElse)
	small, _ := token.SmallInt(5)
	assert.Contains(t, out, small)
}

func TestTokeniseJumpNumberAfterGoto(t *testing.T) {
	tz := newTestTokeniser()
	out, err := tz.TokeniseLine("GOTO 100")
	assert.NoError(t, err)
	assert.Contains(t, out, byte(token.TUint))
}
