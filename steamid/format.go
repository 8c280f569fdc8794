package steamid

import "fmt"

// Format selects one of the three textual grammars.
//
// Declaration order is the trial order for auto-detection. Community64
// accepts any bare number, so it must come last or it would swallow
// inputs meant for the other two; Default and Community32 are mutually
// exclusive by their leading character.
type Format uint8

const (
	FormatDefault Format = iota
	FormatCommunity32
	FormatCommunity64
)

var formats = [...]Format{FormatDefault, FormatCommunity32, FormatCommunity64}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatDefault:
		return "default"
	case FormatCommunity32:
		return "community32"
	case FormatCommunity64:
		return "community64"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// FormatFromName resolves a format by its String name.
func FormatFromName(name string) (Format, bool) {
	for _, f := range formats {
		if f.String() == name {
			return f, true
		}
	}
	return FormatDefault, false
}

// UnknownFormatError reports input that matched none of the formats.
// It carries the original input rather than any per-format failure:
// when nothing matched, no single grammar's diagnosis is actionable.
type UnknownFormatError struct {
	Input string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("steamid: %q matches no known format", e.Input)
}

// Parse decodes s, trying each format in declaration order and
// returning the first success. Per-format parse errors are discarded
// here, and only here; when every grammar rejects s the result is an
// *UnknownFormatError carrying the original input.
func Parse(s string) (SteamID, error) {
	for _, f := range formats {
		if id, err := ParseFormat(s, f); err == nil {
			return id, nil
		}
	}
	return 0, &UnknownFormatError{Input: s}
}

// ParseFormat decodes s under a single explicit format. Parser errors
// propagate unwrapped so callers can retry under another grammar.
// Construction is atomic: on any failure no identifier is produced.
func ParseFormat(s string, f Format) (SteamID, error) {
	p := newParser(s)
	switch f {
	case FormatDefault:
		return parseDefault(p)
	case FormatCommunity32:
		return parseCommunity32(p)
	case FormatCommunity64:
		return parseCommunity64(p)
	default:
		return 0, fmt.Errorf("steamid: unknown format %s", f)
	}
}

// parseDefault decodes STEAM_<universe>:<lowbit>:<accountid>. The
// format carries no account type or instance, so those fields decode
// as zero.
func parseDefault(p *parser) (SteamID, error) {
	if err := p.expectLiteral("STEAM_"); err != nil {
		return 0, err
	}
	universe, err := p.universe()
	if err != nil {
		return 0, err
	}
	if err := p.expectChar(':'); err != nil {
		return 0, err
	}
	lowBit, err := p.uint()
	if err != nil {
		return 0, err
	}
	if lowBit > lowBitField.Max() {
		return 0, &RangeError{Field: "low bit", Value: lowBit, Max: lowBitField.Max()}
	}
	if err := p.expectChar(':'); err != nil {
		return 0, err
	}
	accountID, err := p.uint()
	if err != nil {
		return 0, err
	}
	if accountID > accountIDField.Max() {
		return 0, &RangeError{Field: "account id", Value: accountID, Max: accountIDField.Max()}
	}
	word := universeField.Pack(uint64(universe)) |
		lowBitField.Pack(lowBit) |
		accountIDField.Pack(accountID)
	return SteamID(word), nil
}

// parseCommunity32 decodes [<letter>:1:<full account id>]. Universe
// and instance decode as zero; the number's low bit becomes the
// word's low bit.
func parseCommunity32(p *parser) (SteamID, error) {
	var id SteamID
	err := p.bracketed(func() error {
		accountType, err := p.typeLetter()
		if err != nil {
			return err
		}
		if err := p.expectChar(':'); err != nil {
			return err
		}
		if err := p.expectChar('1'); err != nil {
			return err
		}
		if err := p.expectChar(':'); err != nil {
			return err
		}
		full, err := p.uint()
		if err != nil {
			return err
		}
		maxFull := accountIDField.Max()<<1 | lowBitField.Max()
		if full > maxFull {
			return &RangeError{Field: "account id", Value: full, Max: maxFull}
		}
		id = SteamID(accountTypeField.Pack(uint64(accountType)) |
			accountIDField.Pack(full>>1) |
			lowBitField.Pack(full&1))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// parseCommunity64 decodes the decimal digits of the raw word.
func parseCommunity64(p *parser) (SteamID, error) {
	v, err := p.uint()
	if err != nil {
		return 0, err
	}
	return SteamID(v), nil
}
