package steamid

import "testing"

func TestBitField_LayoutCoversWord(t *testing.T) {
	fields := []struct {
		name  string
		field BitField
	}{
		{"low bit", lowBitField},
		{"account id", accountIDField},
		{"instance", instanceField},
		{"account type", accountTypeField},
		{"universe", universeField},
	}

	var union uint64
	for i, a := range fields {
		for _, b := range fields[i+1:] {
			if a.field.Mask()&b.field.Mask() != 0 {
				t.Errorf("%s and %s masks overlap", a.name, b.name)
			}
		}
		union |= a.field.Mask()
	}
	if union != ^uint64(0) {
		t.Errorf("field masks cover %016x, want all 64 bits", union)
	}
}

func TestBitField_ChainedOffsets(t *testing.T) {
	tests := []struct {
		name   string
		field  BitField
		offset uint
		width  uint
	}{
		{"low bit", lowBitField, 0, 1},
		{"account id", accountIDField, 1, 31},
		{"instance", instanceField, 32, 20},
		{"account type", accountTypeField, 52, 4},
		{"universe", universeField, 56, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Offset != tt.offset || tt.field.Width != tt.width {
				t.Errorf("got width=%d offset=%d, want width=%d offset=%d",
					tt.field.Width, tt.field.Offset, tt.width, tt.offset)
			}
		})
	}

	if end := universeField.Offset + universeField.Width; end != 64 {
		t.Errorf("layout ends at bit %d, want 64", end)
	}
}

func TestBitField_ExtractPack(t *testing.T) {
	f := BitField{Width: 4, Offset: 8}

	if got := f.Mask(); got != 0xF00 {
		t.Errorf("Mask() = %#x, want 0xF00", got)
	}
	if got := f.Max(); got != 15 {
		t.Errorf("Max() = %d, want 15", got)
	}

	word := f.Pack(0xA) | 0xFF // neighbouring bits set below the field
	if got := f.Extract(word); got != 0xA {
		t.Errorf("Extract(Pack(0xA)) = %#x, want 0xA", got)
	}
	if word&0xFF != 0xFF {
		t.Errorf("Pack disturbed bits outside the field")
	}
}
