package steamid

import "fmt"

// AccountType selects the kind of entity an identifier names.
type AccountType uint8

const (
	TypeInvalid        AccountType = 0
	TypeIndividual     AccountType = 1
	TypeMultiseat      AccountType = 2
	TypeGameServer     AccountType = 3
	TypeAnonGameServer AccountType = 4
	TypePending        AccountType = 5
	TypeContentServer  AccountType = 6
	TypeClan           AccountType = 7
	TypeChat           AccountType = 8
	TypeP2PSuperSeeder AccountType = 9
	TypeAnonUser       AccountType = 10
)

// typeLetters maps account types to the single-character codes used by
// the Community32 text format. TypeP2PSuperSeeder has no letter and is
// not representable in that format.
var typeLetters = map[AccountType]rune{
	TypeInvalid:        'I',
	TypeIndividual:     'U',
	TypeMultiseat:      'M',
	TypeGameServer:     'G',
	TypeAnonGameServer: 'A',
	TypePending:        'P',
	TypeContentServer:  'C',
	TypeClan:           'g',
	TypeChat:           'T',
	TypeAnonUser:       'a',
}

// Letter returns the Community32 code for t, or false when t has none.
func (t AccountType) Letter() (rune, bool) {
	c, ok := typeLetters[t]
	return c, ok
}

// AccountTypeFromLetter resolves a Community32 code back to its
// account type. The table is case-sensitive: 'G' is a game server,
// 'g' is a clan.
func AccountTypeFromLetter(c rune) (AccountType, bool) {
	for t, l := range typeLetters {
		if l == c {
			return t, true
		}
	}
	return TypeInvalid, false
}

// String returns the account type name.
func (t AccountType) String() string {
	switch t {
	case TypeInvalid:
		return "invalid"
	case TypeIndividual:
		return "individual"
	case TypeMultiseat:
		return "multiseat"
	case TypeGameServer:
		return "game server"
	case TypeAnonGameServer:
		return "anonymous game server"
	case TypePending:
		return "pending"
	case TypeContentServer:
		return "content server"
	case TypeClan:
		return "clan"
	case TypeChat:
		return "chat"
	case TypeP2PSuperSeeder:
		return "p2p superseeder"
	case TypeAnonUser:
		return "anonymous user"
	default:
		return fmt.Sprintf("accounttype(%d)", uint8(t))
	}
}
