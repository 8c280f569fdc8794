package steamid

import (
	"fmt"
	"strconv"
	"strings"
)

// NoLetterError reports an account type the Community32 format cannot
// spell. TypeP2PSuperSeeder is representable in the word but has no
// letter in the table, so asking for its Community32 form is an error
// rather than a silent blank.
type NoLetterError struct {
	Type AccountType
}

func (e *NoLetterError) Error() string {
	return fmt.Sprintf("steamid: account type %s has no community32 letter", e.Type)
}

// writer mirrors the parser primitives, appending tokens to an output
// buffer instead of consuming them from an input.
type writer struct {
	sb strings.Builder
}

func (w *writer) literal(s string) {
	w.sb.WriteString(s)
}

func (w *writer) char(c rune) {
	w.sb.WriteRune(c)
}

func (w *writer) uint(v uint64) {
	w.sb.WriteString(strconv.FormatUint(v, 10))
}

func (w *writer) typeLetter(t AccountType) error {
	c, ok := t.Letter()
	if !ok {
		return &NoLetterError{Type: t}
	}
	w.sb.WriteRune(c)
	return nil
}

func (w *writer) bracketed(inner func() error) error {
	w.char('[')
	if err := inner(); err != nil {
		return err
	}
	w.char(']')
	return nil
}

// Encode renders id under the given format. Only the Community32
// grammar can fail, and only for an account type with no letter.
func (id SteamID) Encode(f Format) (string, error) {
	var w writer
	switch f {
	case FormatDefault:
		encodeDefault(&w, id)
	case FormatCommunity32:
		if err := encodeCommunity32(&w, id); err != nil {
			return "", err
		}
	case FormatCommunity64:
		w.uint(uint64(id))
	default:
		return "", fmt.Errorf("steamid: unknown format %s", f)
	}
	return w.sb.String(), nil
}

// encodeDefault writes STEAM_<universe>:<lowbit>:<accountid>, dropping
// the account type and instance.
func encodeDefault(w *writer, id SteamID) {
	w.literal("STEAM_")
	w.uint(uint64(id.Universe()))
	w.char(':')
	w.uint(id.LowBit())
	w.char(':')
	w.uint(uint64(id.AccountID()))
}

// encodeCommunity32 writes [<letter>:1:<full account id>], dropping
// the universe and instance.
func encodeCommunity32(w *writer, id SteamID) error {
	return w.bracketed(func() error {
		if err := w.typeLetter(id.AccountType()); err != nil {
			return err
		}
		w.char(':')
		w.char('1')
		w.char(':')
		w.uint(uint64(id.FullAccountID()))
		return nil
	})
}
