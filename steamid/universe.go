package steamid

import "fmt"

// Universe selects which deployment an identifier belongs to.
//
// The set is open: the 8-bit field can carry values outside the named
// constants, and those construct and round-trip unchanged.
type Universe uint8

const (
	UniverseIndividual Universe = 0
	UniversePublic     Universe = 1
	UniverseBeta       Universe = 2
	UniverseInternal   Universe = 3
	UniverseDev        Universe = 4
	UniverseRC         Universe = 5
)

// String returns the universe name.
func (u Universe) String() string {
	switch u {
	case UniverseIndividual:
		return "individual"
	case UniversePublic:
		return "public"
	case UniverseBeta:
		return "beta"
	case UniverseInternal:
		return "internal"
	case UniverseDev:
		return "dev"
	case UniverseRC:
		return "rc"
	default:
		return fmt.Sprintf("universe(%d)", uint8(u))
	}
}
