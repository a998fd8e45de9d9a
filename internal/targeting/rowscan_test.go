package targeting

import (
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

func TestRowScanNearestInOwnRow(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0)) // center row, pos 4
	near := b.idAt(t, hexmap.New(2, 0))   // two to the right
	far := b.idAt(t, hexmap.New(-4, 0))   // four to the left

	b.put(caster, casterID, domain.TeamAlly)
	b.put(near, victimID, domain.TeamEnemy)
	b.put(far, decoyID, domain.TeamEnemy)

	res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanRight, PreferRear)
	if !res.Found || res.HexID != near {
		t.Errorf("expected nearest-in-row %d, got %+v", near, res)
	}
}

func TestRowScanTieBreakDirection(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))
	left := b.idAt(t, hexmap.New(-2, 0))
	right := b.idAt(t, hexmap.New(2, 0))

	b.put(left, victimID, domain.TeamEnemy)
	b.put(right, decoyID, domain.TeamEnemy)

	if res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanRight, PreferRear); res.HexID != right {
		t.Errorf("ScanRight should pick %d, got %d", right, res.HexID)
	}
	if res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanLeft, PreferRear); res.HexID != left {
		t.Errorf("ScanLeft should pick %d, got %d", left, res.HexID)
	}

	// The direction inverts for an enemy-team caster.
	if res := RowScan(b, caster, domain.TeamEnemy, domain.TeamEnemy, ScanRight, PreferRear); res.HexID != left {
		t.Errorf("enemy ScanRight should invert to left %d, got %d", left, res.HexID)
	}
}

func TestRowScanFallbackPrefersRearRow(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0)) // center row is empty otherwise

	// Two candidates on the same ring, different rows.
	frontHex := hexmap.New(0, 0).Neighbor(hexmap.DirNE) // row above center
	rearHex := hexmap.New(0, 0).Neighbor(hexmap.DirSE)  // row below center
	front := b.idAt(t, frontHex)
	rear := b.idAt(t, rearHex)

	b.put(front, decoyID, domain.TeamEnemy)
	b.put(rear, victimID, domain.TeamEnemy)

	// Ally rear is the bottom of the arena (higher row indexes).
	if res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanRight, PreferRear); res.HexID != rear {
		t.Errorf("PreferRear should pick %d, got %+v", rear, res)
	}
	if res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanRight, PreferFront); res.HexID != front {
		t.Errorf("PreferFront should pick %d, got %+v", front, res)
	}
}

func TestRowScanNoCandidates(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))
	b.put(caster, casterID, domain.TeamAlly)

	if res := RowScan(b, caster, domain.TeamAlly, domain.TeamEnemy, ScanRight, PreferRear); res.Found {
		t.Errorf("expected no target, got %+v", res)
	}
}
