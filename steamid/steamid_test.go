package steamid

import (
	"errors"
	"testing"
)

// ============================================================
// Accessors
// ============================================================

func TestSteamID_Accessors(t *testing.T) {
	id := SteamID(76561198092541763)

	if got := id.LowBit(); got != 1 {
		t.Errorf("LowBit() = %d, want 1", got)
	}
	if got := id.AccountID(); got != 66138017 {
		t.Errorf("AccountID() = %d, want 66138017", got)
	}
	if got := id.FullAccountID(); got != 132276035 {
		t.Errorf("FullAccountID() = %d, want 132276035", got)
	}
	if got := id.Instance(); got != 1 {
		t.Errorf("Instance() = %d, want 1", got)
	}
	if got := id.AccountType(); got != TypeIndividual {
		t.Errorf("AccountType() = %s, want individual", got)
	}
	if got := id.Universe(); got != UniversePublic {
		t.Errorf("Universe() = %s, want public", got)
	}
}

func TestSteamID_InstanceDoesNotAffectAccountID(t *testing.T) {
	// Same account, different instance field.
	a := SteamID(76561193739638996)
	b := SteamID(76561198034606292)

	if a.AccountID() != b.AccountID() {
		t.Errorf("AccountID() differs: %d vs %d", a.AccountID(), b.AccountID())
	}
	if a.Instance() == b.Instance() {
		t.Errorf("Instance() unexpectedly equal: %d", a.Instance())
	}
}

func TestSteamID_Fields(t *testing.T) {
	id := SteamID(76561198092541763)
	got := id.Fields()
	want := FieldValues{
		LowBit:      1,
		AccountID:   66138017,
		Instance:    1,
		AccountType: TypeIndividual,
		Universe:    UniversePublic,
	}
	if got != want {
		t.Errorf("Fields() = %+v, want %+v", got, want)
	}
}

// ============================================================
// Mutators
// ============================================================

func TestSteamID_MutatorIsolation(t *testing.T) {
	base := SteamID(76561198092541763)

	t.Run("SetInstance", func(t *testing.T) {
		id := base
		if err := id.SetInstance(4); err != nil {
			t.Fatalf("SetInstance failed: %v", err)
		}
		if id.Instance() != 4 {
			t.Errorf("Instance() = %d, want 4", id.Instance())
		}
		assertOthersUnchanged(t, base, id, "instance")
	})

	t.Run("SetAccountType", func(t *testing.T) {
		id := base
		if err := id.SetAccountType(TypeClan); err != nil {
			t.Fatalf("SetAccountType failed: %v", err)
		}
		if id.AccountType() != TypeClan {
			t.Errorf("AccountType() = %s, want clan", id.AccountType())
		}
		assertOthersUnchanged(t, base, id, "account type")
	})

	t.Run("SetUniverse", func(t *testing.T) {
		id := base
		id.SetUniverse(UniverseBeta)
		if id.Universe() != UniverseBeta {
			t.Errorf("Universe() = %s, want beta", id.Universe())
		}
		assertOthersUnchanged(t, base, id, "universe")
	})
}

// assertOthersUnchanged checks that every field except the named one
// kept its value across a mutation.
func assertOthersUnchanged(t *testing.T, before, after SteamID, changed string) {
	t.Helper()
	if changed != "instance" && before.Instance() != after.Instance() {
		t.Errorf("Instance() changed: %d -> %d", before.Instance(), after.Instance())
	}
	if changed != "account type" && before.AccountType() != after.AccountType() {
		t.Errorf("AccountType() changed: %s -> %s", before.AccountType(), after.AccountType())
	}
	if changed != "universe" && before.Universe() != after.Universe() {
		t.Errorf("Universe() changed: %s -> %s", before.Universe(), after.Universe())
	}
	if before.AccountID() != after.AccountID() {
		t.Errorf("AccountID() changed: %d -> %d", before.AccountID(), after.AccountID())
	}
	if before.LowBit() != after.LowBit() {
		t.Errorf("LowBit() changed: %d -> %d", before.LowBit(), after.LowBit())
	}
}

func TestSteamID_MutatorRange(t *testing.T) {
	id := SteamID(76561198092541763)

	var rangeErr *RangeError
	if err := id.SetInstance(1 << 20); !errors.As(err, &rangeErr) {
		t.Fatalf("SetInstance(1<<20) error = %v, want *RangeError", err)
	}
	if rangeErr.Field != "instance" || rangeErr.Max != (1<<20)-1 {
		t.Errorf("RangeError = %+v, want field=instance max=%d", rangeErr, (1<<20)-1)
	}
	if id != 76561198092541763 {
		t.Errorf("failed SetInstance mutated the identifier")
	}

	if err := id.SetAccountType(AccountType(16)); !errors.As(err, &rangeErr) {
		t.Fatalf("SetAccountType(16) error = %v, want *RangeError", err)
	}
}

// ============================================================
// Construction
// ============================================================

func TestNew(t *testing.T) {
	id, err := New(UniversePublic, TypeIndividual, 1, 22202)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if id != SteamID(76561197960287930) {
		t.Errorf("New = %d, want 76561197960287930", uint64(id))
	}
}

func TestNew_Range(t *testing.T) {
	if _, err := New(UniversePublic, TypeIndividual, 1<<20, 1); err == nil {
		t.Errorf("New accepted an instance wider than 20 bits")
	}
	if _, err := New(UniversePublic, AccountType(200), 1, 1); err == nil {
		t.Errorf("New accepted an account type wider than 4 bits")
	}
}
