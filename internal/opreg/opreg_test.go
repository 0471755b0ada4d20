package opreg

import "testing"

func TestRegisterGetNames(t *testing.T) {
	r := &Registry{ops: make(map[string]Operator)}
	r.Register(Operator{Name: "SWAP_WITHIN", Description: "swap two blocks within one die"})
	r.Register(Operator{Name: "MOVE_TUPLE", Description: "move a tuple to another die"})

	got, err := r.Get("SWAP_WITHIN")
	if err != nil {
		t.Fatal(err)
	}
	if got.Description == "" {
		t.Fatal("expected non-empty description")
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "MOVE_TUPLE" || names[1] != "SWAP_WITHIN" {
		t.Fatalf("names not sorted/complete: %v", names)
	}
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	r := &Registry{ops: make(map[string]Operator)}
	if _, err := r.Get("NOPE"); err == nil {
		t.Fatal("expected error for unknown operator")
	}
}
