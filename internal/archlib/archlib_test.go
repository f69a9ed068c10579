package archlib

import "testing"

func TestNamesListsAllFourBundledArchitectures(t *testing.T) {
	names := Names()
	want := map[string]bool{"ambit": true, "imply": true, "plim": true, "felix": true}
	if len(names) != len(want) {
		t.Fatalf("expected %d bundled architectures, got %v", len(want), names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected bundled architecture %q", n)
		}
	}
}

func TestLoadReturnsBuiltArchitectures(t *testing.T) {
	for _, name := range []string{"ambit", "imply", "plim", "felix"} {
		a, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if a == nil {
			t.Fatalf("Load(%q): nil architecture", name)
		}
		if len(a.Operations) == 0 {
			t.Errorf("Load(%q): expected at least one operation", name)
		}
		if len(a.CellTypes) == 0 {
			t.Errorf("Load(%q): expected at least one cell type", name)
		}
	}
}

func TestLoadUnknownNameFails(t *testing.T) {
	if _, err := Load("bogus"); err == nil {
		t.Fatal("expected an error for an unbundled architecture name")
	}
}

func TestFelixSupportsMajorityOverTernary(t *testing.T) {
	a, err := Load("felix")
	if err != nil {
		t.Fatalf("Load(felix): %v", err)
	}
	found := false
	for _, op := range a.Operations {
		if op.Name == "MIN" {
			found = true
		}
	}
	if !found {
		t.Error("expected felix to declare a MIN operation")
	}
}
