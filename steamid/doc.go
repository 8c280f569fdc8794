// Package steamid encodes, decodes, and rewrites Steam identifiers:
// 64-bit values that pack an account id, instance, account type, and
// universe into fixed, non-overlapping bit ranges.
//
// # Bit Layout
//
// From the least-significant bit upward:
//
//	 1 bit   low bit (encoding artifact, see below)
//	31 bits  account id
//	20 bits  instance
//	 4 bits  account type
//	 8 bits  universe
//
// Each field's offset is derived from its predecessor, so the layout
// covers all 64 bits with no gaps and no overlap.
//
// # Textual Formats
//
// Three renderings exist, two of them lossy:
//
//	Default:      STEAM_1:0:11101      (universe, low bit, account id)
//	Community32:  [U:1:22202]          (account type, account id with low bit folded in)
//	Community64:  76561197960287930    (the raw word; lossless)
//
// A lossy format decodes with its missing fields zeroed. The low bit is
// not a meaningful account property: the Default format prints it as
// its own token while Community32 folds it back into the account
// number as that number's least-significant bit.
//
// Parse auto-detects the format; ParseFormat decodes one grammar
// explicitly. Encode renders a chosen format and String always renders
// the lossless Community64 form.
package steamid
