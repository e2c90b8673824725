package cmd

import (
	"reflect"
	"testing"
)

func TestParseGroups(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []CommandGroup
	}{
		{
			"no arguments",
			nil,
			nil,
		},
		{
			"single command",
			[]string{"--parse", "file.env"},
			[]CommandGroup{{Command: "--parse", Args: []string{"file.env"}}},
		},
		{
			"short command",
			[]string{"-p", "file.env"},
			[]CommandGroup{{Command: "-p", Args: []string{"file.env"}}},
		},
		{
			"modifier applies to following command",
			[]string{"-v", "--parse", "file.env"},
			[]CommandGroup{{Flags: []string{"-v"}, Command: "--parse", Args: []string{"file.env"}}},
		},
		{
			"combined short flags expand",
			[]string{"-vp", "file.env"},
			[]CommandGroup{{Flags: []string{"-v"}, Command: "-p", Args: []string{"file.env"}}},
		},
		{
			"multiple groups",
			[]string{"--get", "a.env", "KEY", "-x", "--find"},
			[]CommandGroup{
				{Command: "--get", Args: []string{"a.env", "KEY"}},
				{Flags: []string{"-x"}, Command: "--find"},
			},
		},
		{
			"set takes three arguments",
			[]string{"--set", "a.env", "KEY", "VALUE"},
			[]CommandGroup{{Command: "--set", Args: []string{"a.env", "KEY", "VALUE"}}},
		},
		{
			"find with optional argument",
			[]string{"--find", "/tmp"},
			[]CommandGroup{{Command: "--find", Args: []string{"/tmp"}}},
		},
		{
			"export with optional format",
			[]string{"--export", "a.env", "json"},
			[]CommandGroup{{Command: "--export", Args: []string{"a.env", "json"}}},
		},
		{
			"trailing modifier forms its own group",
			[]string{"--version", "--no-color"},
			[]CommandGroup{
				{Command: "--version"},
				{Flags: []string{"--no-color"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			groups, err := Parse(test.args)
			if err != nil {
				t.Fatalf("Parse(%v) returned error: %v", test.args, err)
			}
			if !reflect.DeepEqual(groups, test.expected) {
				t.Errorf("Parse(%v) = %+v; want %+v", test.args, groups, test.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bare word", []string{"file.env"}},
		{"unknown long flag", []string{"--bogus"}},
		{"unknown short flag", []string{"-z"}},
		{"parse missing argument", []string{"--parse"}},
		{"get missing second argument", []string{"--get", "a.env"}},
		{"set missing value", []string{"--set", "a.env", "KEY"}},
		{"merge missing source", []string{"--merge", "a.env"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.args)
			if err == nil {
				t.Fatalf("Parse(%v) succeeded; want ParseError", test.args)
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("Parse(%v) error type = %T; want *ParseError", test.args, err)
			}
		})
	}
}

func TestArgCounts(t *testing.T) {
	tests := []struct {
		cmd      string
		min, max int
	}{
		{"--parse", 1, 1},
		{"--watch", 1, 1},
		{"--get", 2, 2},
		{"--unset", 2, 2},
		{"--set", 3, 3},
		{"--merge", 2, 2},
		{"--find", 0, 1},
		{"--export", 1, 2},
		{"--help", 0, 1},
		{"--version", 0, 0},
	}

	for _, test := range tests {
		min, max := argCounts(test.cmd)
		if min != test.min || max != test.max {
			t.Errorf("argCounts(%q) = (%d, %d); want (%d, %d)", test.cmd, min, max, test.min, test.max)
		}
	}
}

func TestGetUsageTargets(t *testing.T) {
	full := GetUsage("")
	for _, cmd := range []string{"--parse", "--export", "--get", "--set", "--unset", "--merge", "--find", "--watch", "--config-show", "--version", "--help"} {
		targeted := GetUsage(cmd)
		if targeted == "" {
			t.Errorf("GetUsage(%q) is empty", cmd)
		}
		if len(targeted) >= len(full) {
			t.Errorf("GetUsage(%q) is not narrower than the full usage", cmd)
		}
	}
}
