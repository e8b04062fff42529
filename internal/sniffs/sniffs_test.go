package sniffs_test

import (
	"testing"

	"cisniff/internal/sniffs"
)

func TestDefaultRegistry(t *testing.T) {
	reg := sniffs.Default()
	want := []string{
		"Files.ClosingFileComment",
		"Files.ClosingLocationComment",
		"NamingConventions.ConstructorName",
		"Operators.UppercaseLiteralLogicalOperators",
		"Strings.DoubleQuoteUsage",
		"Strings.VariableUsage",
	}
	names := reg.Names()
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %s, want %s", i, names[i], want[i])
		}
		rule, _ := reg.Get(names[i])
		if rule.Description() == "" || rule.Register().Empty() {
			t.Errorf("%s: missing description or kinds", names[i])
		}
	}

	// отдельные экземпляры для настраиваемых правил
	a, b := sniffs.Default(), sniffs.Default()
	if err := a.Configure(map[string]map[string]string{"Files.ClosingLocationComment": {"app_root": "/src/"}}); err != nil {
		t.Fatal(err)
	}
	ra, _ := a.Get("Files.ClosingLocationComment")
	rb, _ := b.Get("Files.ClosingLocationComment")
	if ra == rb {
		t.Error("registries must not share configurable rules")
	}
}
