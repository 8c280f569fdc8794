package steamid

import "fmt"

// SteamID is a packed 64-bit Steam identifier. The zero value is a
// valid identifier with every field zero. Converting a raw uint64
// never fails; textual construction goes through Parse or ParseFormat.
type SteamID uint64

// RangeError reports a field value too wide for its bit range.
// Accepting such a value would corrupt the neighbouring fields, so
// every mutating entry point rejects it instead.
type RangeError struct {
	Field string
	Value uint64
	Max   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("steamid: %s value %d exceeds field maximum %d", e.Field, e.Value, e.Max)
}

// New composes an identifier from its four logical fields.
// fullAccountID is the account number as the Community32 format prints
// it, with the low bit folded in; its least-significant bit becomes the
// word's low bit and the remaining 31 bits the account id field.
func New(universe Universe, accountType AccountType, instance uint32, fullAccountID uint32) (SteamID, error) {
	if uint64(accountType) > accountTypeField.Max() {
		return 0, &RangeError{Field: "account type", Value: uint64(accountType), Max: accountTypeField.Max()}
	}
	if uint64(instance) > instanceField.Max() {
		return 0, &RangeError{Field: "instance", Value: uint64(instance), Max: instanceField.Max()}
	}
	return compose(universe, accountType, instance, fullAccountID), nil
}

// compose rebuilds the full word. Callers have already range-checked
// the account type and instance; universe and fullAccountID fit their
// fields by type.
func compose(universe Universe, accountType AccountType, instance uint32, fullAccountID uint32) SteamID {
	word := lowBitField.Pack(uint64(fullAccountID) & 1)
	word |= accountIDField.Pack(uint64(fullAccountID) >> 1)
	word |= instanceField.Pack(uint64(instance))
	word |= accountTypeField.Pack(uint64(accountType))
	word |= universeField.Pack(uint64(universe))
	return SteamID(word)
}

// LowBit returns the word's least-significant bit. It is an encoding
// artifact, not an account property: the Default format prints it as a
// separate token and Community32 folds it into the account number.
func (id SteamID) LowBit() uint64 {
	return lowBitField.Extract(uint64(id))
}

// AccountID returns the 31-bit account id field.
func (id SteamID) AccountID() uint32 {
	return uint32(accountIDField.Extract(uint64(id)))
}

// FullAccountID returns the account id with the low bit folded back in
// as its least-significant bit. This is the canonical numeric account
// identifier, and the single number Community32 prints.
func (id SteamID) FullAccountID() uint32 {
	return uint32(accountIDField.Extract(uint64(id))<<1 | lowBitField.Extract(uint64(id)))
}

// Instance returns the 20-bit instance field.
func (id SteamID) Instance() uint32 {
	return uint32(instanceField.Extract(uint64(id)))
}

// AccountType returns the account type field.
func (id SteamID) AccountType() AccountType {
	return AccountType(accountTypeField.Extract(uint64(id)))
}

// Universe returns the universe field.
func (id SteamID) Universe() Universe {
	return Universe(universeField.Extract(uint64(id)))
}

// SetInstance replaces the instance field, leaving every other field's
// value unchanged. The word is recomputed whole and replaced in one
// assignment.
func (id *SteamID) SetInstance(instance uint32) error {
	if uint64(instance) > instanceField.Max() {
		return &RangeError{Field: "instance", Value: uint64(instance), Max: instanceField.Max()}
	}
	*id = compose(id.Universe(), id.AccountType(), instance, id.FullAccountID())
	return nil
}

// SetAccountType replaces the account type field.
func (id *SteamID) SetAccountType(accountType AccountType) error {
	if uint64(accountType) > accountTypeField.Max() {
		return &RangeError{Field: "account type", Value: uint64(accountType), Max: accountTypeField.Max()}
	}
	*id = compose(id.Universe(), accountType, id.Instance(), id.FullAccountID())
	return nil
}

// SetUniverse replaces the universe field. Every Universe value fits
// the 8-bit field, so this cannot fail.
func (id *SteamID) SetUniverse(universe Universe) {
	*id = compose(universe, id.AccountType(), id.Instance(), id.FullAccountID())
}

// FieldValues is a decomposed snapshot of the five bit ranges.
type FieldValues struct {
	LowBit      uint64
	AccountID   uint32
	Instance    uint32
	AccountType AccountType
	Universe    Universe
}

// Fields returns the identifier's decomposed field values.
func (id SteamID) Fields() FieldValues {
	return FieldValues{
		LowBit:      id.LowBit(),
		AccountID:   id.AccountID(),
		Instance:    id.Instance(),
		AccountType: id.AccountType(),
		Universe:    id.Universe(),
	}
}
