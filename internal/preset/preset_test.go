package preset

import (
	"sort"
	"testing"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	for _, id := range []string{"default", "turtle", "gauntlet"} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, want true", id)
		}
	}
	if Exists("nonexistent") {
		t.Error("Exists(nonexistent) = true")
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("List() returned %d presets, want at least 3", len(infos))
	}
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
		if info.Description == "" {
			t.Errorf("preset %q has no description", info.ID)
		}
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("List() not sorted: %v", ids)
	}
}

func TestCreateReturnsValidConfigs(t *testing.T) {
	for _, info := range List() {
		cfg, err := Create(info.ID)
		if err != nil {
			t.Errorf("Create(%q) error: %v", info.ID, err)
			continue
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q builds an invalid config: %v", info.ID, err)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nonexistent"); err == nil {
		t.Error("Create(nonexistent) expected error")
	}
}

func TestFactoriesReturnFreshValues(t *testing.T) {
	a, err := Create("default")
	if err != nil {
		t.Fatal(err)
	}
	a.Seed = 12345
	b, err := Create("default")
	if err != nil {
		t.Fatal(err)
	}
	if b.Seed == 12345 {
		t.Error("mutating one created config leaked into the next")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("default", "dup", nil)
}
