package watch

import (
	"reflect"
	"testing"

	"EnvKit/internal/dotenv"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		old      dotenv.Mapping
		new      dotenv.Mapping
		expected Diff
	}{
		{
			"no changes",
			dotenv.Mapping{"A": "1"},
			dotenv.Mapping{"A": "1"},
			Diff{},
		},
		{
			"added",
			dotenv.Mapping{},
			dotenv.Mapping{"A": "1", "B": "2"},
			Diff{Added: []string{"A", "B"}},
		},
		{
			"removed",
			dotenv.Mapping{"A": "1", "B": "2"},
			dotenv.Mapping{"B": "2"},
			Diff{Removed: []string{"A"}},
		},
		{
			"changed",
			dotenv.Mapping{"A": "1"},
			dotenv.Mapping{"A": "2"},
			Diff{Changed: []string{"A"}},
		},
		{
			"mixed",
			dotenv.Mapping{"KEEP": "x", "DROP": "y", "EDIT": "old"},
			dotenv.Mapping{"KEEP": "x", "EDIT": "new", "FRESH": "z"},
			Diff{Added: []string{"FRESH"}, Removed: []string{"DROP"}, Changed: []string{"EDIT"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Compare(test.old, test.new)
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("Compare = %+v; want %+v", got, test.expected)
			}
		})
	}
}

func TestDiffEmpty(t *testing.T) {
	if !(Diff{}).Empty() {
		t.Error("zero Diff must be empty")
	}
	if (Diff{Added: []string{"A"}}).Empty() {
		t.Error("Diff with additions must not be empty")
	}
}
