package steamid

// BitField describes one contiguous bit range of a 64-bit word,
// Width bits wide starting Offset bits from the least-significant bit.
type BitField struct {
	Width  uint
	Offset uint
}

// next returns the field of the given width immediately above f.
// Chaining fields this way keeps every offset derived from its
// predecessor, so the layout cannot overlap if a width changes.
func (f BitField) next(width uint) BitField {
	return BitField{Width: width, Offset: f.Offset + f.Width}
}

// Mask returns the field's bits set within a 64-bit word.
func (f BitField) Mask() uint64 {
	return ((uint64(1) << f.Width) - 1) << f.Offset
}

// Max returns the largest value the field can hold.
func (f BitField) Max() uint64 {
	return (uint64(1) << f.Width) - 1
}

// Extract returns the field's value from word.
func (f BitField) Extract(word uint64) uint64 {
	return (word & f.Mask()) >> f.Offset
}

// Pack shifts value into field position. The caller ORs the result
// into an accumulator; value must fit in Width bits.
func (f BitField) Pack(value uint64) uint64 {
	return value << f.Offset
}

// The five canonical fields, LSB to MSB. Together they cover all 64 bits.
var (
	lowBitField      = BitField{Width: 1, Offset: 0}
	accountIDField   = lowBitField.next(31)
	instanceField    = accountIDField.next(20)
	accountTypeField = instanceField.next(4)
	universeField    = accountTypeField.next(8)
)
