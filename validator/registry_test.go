package validator

import "testing"

func TestPartition(t *testing.T) {
	regs := []Registration{
		{Name: "core.A", Kind: SingleFile},
		{Name: "relationship.B", Kind: CrossFile},
		{Name: "core.C", Kind: SingleFile},
		{Name: "business.D", Kind: CrossFile},
	}

	singleFile, crossFile := Partition(regs)

	if len(singleFile) != 2 {
		t.Fatalf("Expected 2 single-file registrations, got %d", len(singleFile))
	}
	if len(crossFile) != 2 {
		t.Fatalf("Expected 2 cross-file registrations, got %d", len(crossFile))
	}

	// Order within each group is preserved.
	if singleFile[0].Name != "core.A" || singleFile[1].Name != "core.C" {
		t.Errorf("Expected single-file order [core.A, core.C], got [%s, %s]", singleFile[0].Name, singleFile[1].Name)
	}
	if crossFile[0].Name != "relationship.B" || crossFile[1].Name != "business.D" {
		t.Errorf("Expected cross-file order [relationship.B, business.D], got [%s, %s]", crossFile[0].Name, crossFile[1].Name)
	}
}

func TestPartition_Empty(t *testing.T) {
	singleFile, crossFile := Partition(nil)
	if len(singleFile) != 0 || len(crossFile) != 0 {
		t.Errorf("Expected both groups empty for nil input, got %d/%d", len(singleFile), len(crossFile))
	}
}

func TestKind_String(t *testing.T) {
	if SingleFile.String() != "single-file" {
		t.Errorf("Expected SingleFile.String() == \"single-file\", got %q", SingleFile.String())
	}
	if CrossFile.String() != "cross-file" {
		t.Errorf("Expected CrossFile.String() == \"cross-file\", got %q", CrossFile.String())
	}
}

func TestRegister_AllByNames(t *testing.T) {
	registryMu.Lock()
	saved := registry
	registry = nil
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		registry = saved
		registryMu.Unlock()
	})

	Register(Registration{Name: "core.A", Kind: SingleFile})
	Register(Registration{Name: "relationship.B", Kind: CrossFile})

	all := All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 registrations after Register twice, got %d", len(all))
	}

	// All returns a copy: mutating it must not affect the registry.
	all[0].Name = "mutated"
	if got := All()[0].Name; got != "core.A" {
		t.Errorf("Expected All() to return a defensive copy, registry name changed to %q", got)
	}

	byName := ByNames(map[string]bool{"relationship.B": true})
	if len(byName) != 1 || byName[0].Name != "relationship.B" {
		t.Fatalf("Expected ByNames to return only relationship.B, got %+v", byName)
	}

	none := ByNames(map[string]bool{"nonexistent": true})
	if len(none) != 0 {
		t.Errorf("Expected ByNames to return nothing for an unregistered name, got %d", len(none))
	}
}
