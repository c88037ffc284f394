package model

import "testing"

func TestInferPriority(t *testing.T) {
	cases := []struct {
		in       string
		priority Priority
		label    string
	}{
		{"!Buy milk", PriorityMedium, "Buy milk"},
		{"*Fix bug", PriorityHigh, "Fix bug"},
		{"Walk dog", PriorityLow, "Walk dog"},
		{"  *Fix bug  ", PriorityHigh, "Fix bug"},
		{"! spaced", PriorityMedium, " spaced"},
		{"?not a creation sigil", PriorityLow, "?not a creation sigil"},
		{"!!double", PriorityMedium, "!double"},
	}

	for _, tc := range cases {
		priority, label, ok := InferPriority(tc.in)
		if !ok {
			t.Fatalf("infer %q rejected unexpectedly", tc.in)
		}
		if priority != tc.priority || label != tc.label {
			t.Fatalf("infer %q = (%q, %q), want (%q, %q)", tc.in, priority, label, tc.priority, tc.label)
		}
	}
}

func TestInferPriorityRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "!", "*", " ! ", "\t*\n"} {
		if _, _, ok := InferPriority(in); ok {
			t.Fatalf("expected %q to be rejected", in)
		}
	}
}
