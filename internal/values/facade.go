package values

import (
	"strconv"
	"strings"

	"github.com/marioaugustorama/pcbasic/internal/floaterr"
	"github.com/marioaugustorama/pcbasic/internal/mbf"
	"github.com/marioaugustorama/pcbasic/internal/strheap"
	"github.com/marioaugustorama/pcbasic/internal/token"
)

// Facade is the stateful collaborator every caller actually holds: the
// string heap values are allocated from, the float error handler
// soft/hard errors are routed through, and the double_math flag that
// changes Pow's promotion rule (spec.md §6's --double-math switch).
type Facade struct {
	Heap       *strheap.Heap
	FloatErr   *floaterr.Handler
	DoubleMath bool
}

// NewFacade wires a fresh heap and error handler together.
func NewFacade(heap *strheap.Heap, floatErr *floaterr.Handler, doubleMath bool) *Facade {
	return &Facade{Heap: heap, FloatErr: floatErr, DoubleMath: doubleMath}
}

// NewInteger, NewSingle, NewDouble, NewString are zero-valued
// factories for each kind (spec.md §4.E's new_integer/new_single/
// new_double/new_string).
func (f *Facade) NewInteger() Value { return fromInteger(mbf.NewInteger()) }
func (f *Facade) NewSingle() Value  { return fromSingle(mbf.NewSingle()) }
func (f *Facade) NewDouble() Value  { return fromDouble(mbf.NewDouble()) }
func (f *Facade) NewString() Value  { return fromStr(strheap.NewString(f.Heap)) }

// Null returns the zero value for the scalar kind sigil denotes
// (spec.md §4.E's null(), used to default-initialize a variable).
func (f *Facade) Null(sigil byte) (Value, bool) {
	kind, ok := KindForSigil(sigil)
	if !ok {
		return Value{}, false
	}
	switch kind {
	case KindInteger:
		return f.NewInteger(), true
	case KindSingle:
		return f.NewSingle(), true
	case KindDouble:
		return f.NewDouble(), true
	case KindString:
		return f.NewString(), true
	}
	return Value{}, false
}

// FromBool converts a Go bool to the dialect's Integer truth
// representation: 0 for false, -1 (all bits set) for true.
func (f *Facade) FromBool(b bool) Value {
	v := f.NewInteger()
	if b {
		v.Integer().FromInt(-1, false)
	}
	return v
}

// Create allocates a Value from a raw storage-size buffer (2, 3, 4 or
// 8 bytes), the inverse of Value.ToBytes (spec.md §4.E's from_bytes).
func (f *Facade) Create(buf []byte) Value {
	switch len(buf) {
	case 2:
		return fromInteger(mbf.NewInteger().FromBytes(buf))
	case 3:
		return fromStr(strheap.NewString(f.Heap).FromBytes(buf))
	case 4:
		return fromSingle(mbf.NewSingle().FromBytes(buf))
	case 8:
		return fromDouble(mbf.NewDouble().FromBytes(buf))
	}
	return Value{}
}

// FromToken decodes one of the tokeniser's numeric literal tokens
// (spec.md §4.E's from_token): the lead byte selects Integer, Single
// or Double.
func (f *Facade) FromToken(t []byte) (Value, error) {
	if len(t) == 0 {
		return Value{}, mbf.ErrDomain
	}
	lead := t[0]
	switch lead {
	case token.TSingle:
		v := mbf.NewSingle()
		_, err := v.FromToken(t)
		return fromSingle(v), err
	case token.TDouble:
		v := mbf.NewDouble()
		_, err := v.FromToken(t)
		return fromDouble(v), err
	}
	if token.Number[lead] {
		v := mbf.NewInteger()
		_, err := v.FromToken(t)
		return fromInteger(v), err
	}
	return Value{}, mbf.ErrDomain
}

// FromStr parses a decimal source-text spelling into a number,
// matching spec.md §4.E's from_str: try &H/&O radix prefixes, then a
// plain integer, then fall back to a float literal: Double when the
// spelling has a D exponent or # suffix, Single otherwise.
func (f *Facade) FromStr(word string) (Value, error) {
	word = strings.ToUpper(strings.TrimLeft(word, " \n"))
	if word == "" {
		return f.NewInteger(), nil
	}
	if strings.HasPrefix(word, "&H") {
		v := mbf.NewInteger()
		_, err := v.FromHex(word[2:])
		return fromInteger(v), err
	}
	if strings.HasPrefix(word, "&O") {
		v := mbf.NewInteger()
		_, err := v.FromOct(word[2:])
		return fromInteger(v), err
	}
	if strings.HasPrefix(word, "&") {
		v := mbf.NewInteger()
		_, err := v.FromOct(word[1:])
		return fromInteger(v), err
	}
	iv := mbf.NewInteger()
	if _, err := iv.FromDecimal(word); err == nil {
		return fromInteger(iv), nil
	}
	isDouble := strings.ContainsAny(word, "D#")
	clean := strings.NewReplacer("D", "E", "#", "", "!", "").Replace(word)
	f64, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return Value{}, mbf.ErrDomain
	}
	if isDouble {
		v := mbf.NewDouble()
		_, err := v.FromValue(f64)
		return fromDouble(v), err
	}
	v := mbf.NewSingle()
	_, err = v.FromValue(f64)
	return fromSingle(v), err
}

// FromHexLiteral and FromOctLiteral decode a tokeniser-supplied hex or
// octal spelling straight into the radix-preserving literal token
// bytes (T_HEX/T_OCT), the path tokeniser.py's _tokenise_hex and
// _tokenise_oct take through new_integer().from_hex/from_oct.
func (f *Facade) FromHexLiteral(s string) ([]byte, error) {
	v := mbf.NewInteger()
	if _, err := v.FromHex(s); err != nil {
		return nil, err
	}
	return v.ToTokenHex(), nil
}

func (f *Facade) FromOctLiteral(s string) ([]byte, error) {
	v := mbf.NewInteger()
	if _, err := v.FromOct(s); err != nil {
		return nil, err
	}
	return v.ToTokenOct(), nil
}

// ToStr renders a numeric Value the way PRINT/STR$/LIST do (spec.md
// §4.E's to_str): leadingSpace adds the sign-placeholder space PRINT
// reserves for positive numbers; typeSign appends the %!/#/ sigil the
// way LIST does.
func (f *Facade) ToStr(v Value, leadingSpace, typeSign bool) (string, error) {
	if v.IsString() {
		return "", ErrTypeMismatch
	}
	var s string
	switch v.Kind {
	case KindInteger:
		n := v.Integer().ToInt(false)
		s = strconv.Itoa(n)
	case KindSingle:
		s = formatFloat(v.Single().ToValue(), 'E', 7)
	case KindDouble:
		s = formatFloat(v.Double().ToValue(), 'D', 16)
	}
	if leadingSpace && !strings.HasPrefix(s, "-") {
		s = " " + s
	}
	if typeSign {
		s += string(v.Kind.Sigil())
	}
	return s, nil
}

// formatFloat renders f with up to sig significant digits, using expChar
// ('E' for Single, 'D' for Double) in place of Go's 'e' when scientific
// notation is needed, matching the dialect's STR$/PRINT rendering.
func formatFloat(f float64, expChar byte, sig int) string {
	s := strconv.FormatFloat(f, 'G', sig, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		s = s[:i] + string(expChar) + strings.TrimPrefix(s[i+1:], "+")
	} else if i := strings.IndexByte(s, 'E'); i >= 0 {
		s = s[:i] + string(expChar) + strings.TrimPrefix(s[i+1:], "+")
	}
	return s
}

// Representation is STR$: the string form of a number, PRINT's
// leading-space convention, no type sigil.
func (f *Facade) Representation(v Value) (Value, error) {
	s, err := f.ToStr(v, true, false)
	if err != nil {
		return Value{}, err
	}
	out := strheap.NewString(f.Heap)
	_, err = out.FromStr(s)
	return fromStr(out), err
}

// Val is VAL: the numeric value of a string's decimal spelling,
// tolerating trailing garbage the way the original lexer does (any
// non-numeric suffix is simply not parsed).
func (f *Facade) Val(v Value) (Value, error) {
	if !v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	word := strings.TrimLeft(v.String().ToStr(), " ")
	end := len(word)
	for i, r := range word {
		if !strings.ContainsRune("0123456789+-.ED# ", r) {
			end = i
			break
		}
	}
	return f.FromStr(strings.TrimSpace(word[:end]))
}

// Character is CHR$: the single-byte string for an ASCII code 0..255.
func (f *Facade) Character(v Value) (Value, error) {
	n := v.Integer().ToInt(false)
	if n < 0 || n > 255 {
		return Value{}, mbf.ErrDomain
	}
	out := strheap.NewString(f.Heap)
	_, err := out.FromStr(string([]byte{byte(n)}))
	return fromStr(out), err
}

// Octal and Hexadecimal are OCT$/HEX$: unsigned octal/hex spellings
// of an Integer, -32768..65535 allowed as input (spec.md's cint_ with
// unsigned=true).
func (f *Facade) Octal(v Value) (Value, error) {
	i, err := f.cint(v, true)
	if err != nil {
		return Value{}, err
	}
	out := strheap.NewString(f.Heap)
	_, err = out.FromStr(i.Integer().ToOct())
	return fromStr(out), err
}

func (f *Facade) Hexadecimal(v Value) (Value, error) {
	i, err := f.cint(v, true)
	if err != nil {
		return Value{}, err
	}
	out := strheap.NewString(f.Heap)
	_, err = out.FromStr(i.Integer().ToHex())
	return fromStr(out), err
}

// MkI, MkS, MkD are MKI$/MKS$/MKD$: the raw byte representation of a
// number, stored as a String (spec.md §4.E).
func (f *Facade) MkI(v Value) (Value, error) { return f.mkBytes(v, KindInteger) }
func (f *Facade) MkS(v Value) (Value, error) { return f.mkBytes(v, KindSingle) }
func (f *Facade) MkD(v Value) (Value, error) { return f.mkBytes(v, KindDouble) }

func (f *Facade) mkBytes(v Value, kind Kind) (Value, error) {
	var conv Value
	var err error
	switch kind {
	case KindInteger:
		conv, err = f.CInt(v)
	case KindSingle:
		conv, err = f.CSng(v)
	case KindDouble:
		conv, err = f.CDbl(v)
	}
	if err != nil {
		return Value{}, err
	}
	out := strheap.NewString(f.Heap)
	_, err = out.FromStr(string(conv.ToBytes()))
	return fromStr(out), err
}

// CvI, CvS, CvD are CVI/CVS/CVD: the numeric value of a byte-string
// representation produced by MKI$/MKS$/MKD$.
func (f *Facade) CvI(v Value) (Value, error) { return f.cvBytes(v, 2) }
func (f *Facade) CvS(v Value) (Value, error) { return f.cvBytes(v, 4) }
func (f *Facade) CvD(v Value) (Value, error) { return f.cvBytes(v, 8) }

func (f *Facade) cvBytes(v Value, n int) (Value, error) {
	if !v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	s := v.String().ToStr()
	if len(s) < n {
		return Value{}, mbf.ErrDomain
	}
	return f.Create([]byte(s[:n])), nil
}

// Len and Asc are LEN/ASC on a String Value.
func (f *Facade) Len(v Value) (int, error) {
	if !v.IsString() {
		return 0, ErrTypeMismatch
	}
	return v.String().Len(), nil
}

func (f *Facade) Asc(v Value) (Value, error) {
	if !v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	n, ok := v.String().Asc()
	if !ok {
		return Value{}, mbf.ErrDomain
	}
	out := f.NewInteger()
	out.Integer().FromInt(n, false)
	return out, nil
}

// SpaceDollar is SPACE$: a run of n spaces.
func (f *Facade) SpaceDollar(n int) (Value, error) {
	s, err := strheap.Space(f.Heap, n)
	return fromStr(s), err
}
