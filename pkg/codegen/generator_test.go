package codegen

import (
	"regexp"
	"testing"
)

var codeRe = regexp.MustCompile(`^WL-\d{4}$`)

func TestOrderCodeFormat(t *testing.T) {
	g := New("WL")
	none := func(string) (bool, error) { return false, nil }
	for i := 0; i < 50; i++ {
		code, err := g.OrderCode(none)
		if err != nil {
			t.Fatalf("OrderCode: %v", err)
		}
		if !codeRe.MatchString(code) {
			t.Fatalf("code %q does not match PREFIX-NNNN", code)
		}
	}
}

func TestOrderCodeRetriesOnCollision(t *testing.T) {
	g := New("WL")
	taken := map[string]bool{}
	exists := func(code string) (bool, error) { return taken[code], nil }

	first, err := g.OrderCode(exists)
	if err != nil {
		t.Fatal(err)
	}
	taken[first] = true

	// With one code taken the generator must still find another.
	second, err := g.OrderCode(exists)
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Errorf("generator returned taken code %q", first)
	}
}

func TestOrderCodeExhaustion(t *testing.T) {
	g := New("WL")
	all := func(string) (bool, error) { return true, nil }
	if _, err := g.OrderCode(all); err == nil {
		t.Error("expected exhaustion error when every code is taken")
	}
}

func TestOrderCodeLinearProbeFindsLastSlot(t *testing.T) {
	g := New("WL")
	free := "WL-1234"
	exists := func(code string) (bool, error) { return code != free, nil }
	code, err := g.OrderCode(exists)
	if err != nil {
		t.Fatalf("OrderCode: %v", err)
	}
	if code != free {
		t.Errorf("got %q, want the only free code %q", code, free)
	}
}
