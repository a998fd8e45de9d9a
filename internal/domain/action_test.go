package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"PLACE", ActionPlace},
		{"place", ActionPlace},
		{"Place", ActionPlace},
		{"REMOVE", ActionRemove},
		{"MOVE", ActionMove},
		{"SWAP", ActionSwap},
		{"CLEAR", ActionClear},
		{"INIT", ActionInit},
		{"SAVE", ActionSave},
		{"LOAD", ActionLoad},
		{"TELEPORT", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionPlace, "PLACE"},
		{ActionSwap, "SWAP"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
