package steamid

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// String renders the lossless Community64 form.
func (id SteamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalText renders the Community64 form.
func (id SteamID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses any of the three formats via auto-detection.
func (id *SteamID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as a JSON string. The raw word
// exceeds the 53-bit integer range JavaScript consumers decode safely,
// so a JSON number form is never emitted.
func (id SteamID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts a string in any of the three formats, or a
// bare JSON number.
func (id *SteamID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return id.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner for int64, string, and []byte columns.
// Text columns may hold any of the three formats.
func (id *SteamID) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*id = SteamID(v)
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("steamid: cannot scan %T into SteamID", src)
	}
}

// Value implements driver.Valuer, storing the raw word as an int64.
func (id SteamID) Value() (driver.Value, error) {
	return int64(id), nil
}
