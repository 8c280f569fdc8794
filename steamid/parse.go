package steamid

import (
	"fmt"
	"strconv"
)

// MismatchError reports input that did not match an expected token.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("steamid: expected %q, found %q", e.Expected, e.Actual)
}

// NumberError reports a missing or overlong unsigned integer.
type NumberError struct {
	Text string
}

func (e *NumberError) Error() string {
	if e.Text == "" {
		return "steamid: expected an unsigned integer"
	}
	return fmt.Sprintf("steamid: %q does not fit an unsigned 64-bit integer", e.Text)
}

// UnknownTypeError reports a character with no account type mapping.
type UnknownTypeError struct {
	Char rune
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("steamid: unknown account type letter %q", e.Char)
}

// parser is a forward-only cursor over the input. It indexes by
// character rather than byte so multi-byte input fails with whole
// characters in the diagnostic, never a split encoding.
type parser struct {
	chars []rune
	pos   int
}

func newParser(input string) *parser {
	return &parser{chars: []rune(input)}
}

// expectLiteral consumes exactly the width of want and fails when the
// consumed text differs. The actual text in the error spans the full
// expected width, read even past the fault point, so the diagnostic
// shows everything that was physically consumed.
func (p *parser) expectLiteral(want string) error {
	wantChars := []rune(want)
	end := p.pos + len(wantChars)
	if end > len(p.chars) {
		end = len(p.chars)
	}
	actual := string(p.chars[p.pos:end])
	p.pos = end
	if actual != want {
		return &MismatchError{Expected: want, Actual: actual}
	}
	return nil
}

// expectChar consumes one character and fails when it is not c.
func (p *parser) expectChar(c rune) error {
	if p.pos >= len(p.chars) {
		return &MismatchError{Expected: string(c), Actual: ""}
	}
	got := p.chars[p.pos]
	p.pos++
	if got != c {
		return &MismatchError{Expected: string(c), Actual: string(got)}
	}
	return nil
}

// uint consumes a maximal run of decimal digits, through the final
// character of the input when that character is a digit. An empty run
// or a run that overflows uint64 fails.
func (p *parser) uint() (uint64, error) {
	start := p.pos
	for p.pos < len(p.chars) && p.chars[p.pos] >= '0' && p.chars[p.pos] <= '9' {
		p.pos++
	}
	run := string(p.chars[start:p.pos])
	if run == "" {
		return 0, &NumberError{}
	}
	v, err := strconv.ParseUint(run, 10, 64)
	if err != nil {
		return 0, &NumberError{Text: run}
	}
	return v, nil
}

// bracketed consumes '[', runs inner, then consumes ']'.
func (p *parser) bracketed(inner func() error) error {
	if err := p.expectChar('['); err != nil {
		return err
	}
	if err := inner(); err != nil {
		return err
	}
	return p.expectChar(']')
}

// typeLetter consumes one character and resolves it through the
// account type letter table.
func (p *parser) typeLetter() (AccountType, error) {
	if p.pos >= len(p.chars) {
		return TypeInvalid, &MismatchError{Expected: "account type letter", Actual: ""}
	}
	c := p.chars[p.pos]
	p.pos++
	t, ok := AccountTypeFromLetter(c)
	if !ok {
		return TypeInvalid, &UnknownTypeError{Char: c}
	}
	return t, nil
}

// universe consumes an unsigned integer and constructs a Universe.
// The enum is open, so any value that fits the 8-bit field is
// accepted, named or not.
func (p *parser) universe() (Universe, error) {
	v, err := p.uint()
	if err != nil {
		return UniverseIndividual, err
	}
	if v > universeField.Max() {
		return UniverseIndividual, &RangeError{Field: "universe", Value: v, Max: universeField.Max()}
	}
	return Universe(v), nil
}
