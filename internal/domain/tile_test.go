package domain

import "testing"

func TestTileStateRoundTrip(t *testing.T) {
	states := []TileState{
		StateDefault, StateAvailableAlly, StateAvailableEnemy,
		StateOccupiedAlly, StateOccupiedEnemy, StateBlocked, StateBlockedBreakable,
	}
	for _, s := range states {
		if got := ParseTileState(s.String()); got != s {
			t.Errorf("ParseTileState(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if got := ParseTileState("garbage"); got != StateDefault {
		t.Errorf("unknown state should parse as DEFAULT, got %v", got)
	}
}

func TestStateTeamHelpers(t *testing.T) {
	if AvailableFor(TeamAlly) != StateAvailableAlly || AvailableFor(TeamEnemy) != StateAvailableEnemy {
		t.Error("AvailableFor mapping broken")
	}
	if OccupiedFor(TeamAlly) != StateOccupiedAlly || OccupiedFor(TeamEnemy) != StateOccupiedEnemy {
		t.Error("OccupiedFor mapping broken")
	}
	if !StateOccupiedAlly.IsOccupied() || StateAvailableAlly.IsOccupied() {
		t.Error("IsOccupied mapping broken")
	}
}

func TestTeamOpponent(t *testing.T) {
	if TeamAlly.Opponent() != TeamEnemy || TeamEnemy.Opponent() != TeamAlly {
		t.Error("Opponent mapping broken")
	}
	if TeamNone.Opponent() != TeamNone {
		t.Error("TeamNone has no opponent")
	}
}

func TestCompanionRange(t *testing.T) {
	if CharacterID(5).IsCompanion() {
		t.Error("small ids are not companions")
	}
	if !(CompanionIDOffset + 5).IsCompanion() {
		t.Error("offset ids are companions")
	}
}
