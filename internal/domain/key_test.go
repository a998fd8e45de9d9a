package domain

import (
	"sort"
	"testing"
)

func TestPackTargetKeyRoundTrip(t *testing.T) {
	tests := []struct {
		char CharacterID
		slot uint8
		team Team
	}{
		{1, 0, TeamAlly},
		{1, 0, TeamEnemy},
		{42, 3, TeamAlly},
		{10001, 0, TeamEnemy}, // companion-range id
		{1 << 30, 255, TeamEnemy},
	}

	for _, tt := range tests {
		k := PackTargetKey(tt.char, tt.slot, tt.team)
		if k.Character() != tt.char {
			t.Errorf("Character() = %d, want %d", k.Character(), tt.char)
		}
		if k.Slot() != tt.slot {
			t.Errorf("Slot() = %d, want %d", k.Slot(), tt.slot)
		}
		if k.Team() != tt.team {
			t.Errorf("Team() = %v, want %v", k.Team(), tt.team)
		}
	}
}

func TestPackSkillKeyIsSlotZero(t *testing.T) {
	k := PackSkillKey(7, TeamAlly)
	if k.Slot() != 0 {
		t.Errorf("activation key slot = %d, want 0", k.Slot())
	}
	if k != PackTargetKey(7, 0, TeamAlly) {
		t.Error("PackSkillKey must equal PackTargetKey with slot 0")
	}
}

func TestSkillKeyUniqueness(t *testing.T) {
	seen := make(map[SkillKey]bool)
	for _, char := range []CharacterID{1, 2, 100, 10001} {
		for _, team := range []Team{TeamAlly, TeamEnemy} {
			for slot := uint8(0); slot < 4; slot++ {
				k := PackTargetKey(char, slot, team)
				if seen[k] {
					t.Fatalf("key collision for char=%d slot=%d team=%v", char, slot, team)
				}
				seen[k] = true
			}
		}
	}
}

func TestSameActivationIgnoresSlot(t *testing.T) {
	a := PackTargetKey(5, 0, TeamAlly)
	b := PackTargetKey(5, 3, TeamAlly)
	c := PackTargetKey(5, 0, TeamEnemy)

	if !a.SameActivation(b) {
		t.Error("keys differing only in slot must share an activation")
	}
	if a.SameActivation(c) {
		t.Error("keys on different teams must not share an activation")
	}
}

func TestSkillKeyNumericOrderIsStable(t *testing.T) {
	// UpdateAll iterates keys in numeric order; characters of the same
	// team must come out sorted by id.
	keys := []SkillKey{
		PackSkillKey(30, TeamAlly),
		PackSkillKey(10, TeamAlly),
		PackSkillKey(20, TeamAlly),
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	want := []CharacterID{10, 20, 30}
	for i, k := range keys {
		if k.Character() != want[i] {
			t.Errorf("keys[%d].Character() = %d, want %d", i, k.Character(), want[i])
		}
	}
}
