package targeting

import (
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

func TestSelectByDistanceNearestAndFarthest(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))
	near := b.idAt(t, hexmap.New(1, 0))
	far := b.idAt(t, hexmap.New(4, 0))

	b.put(near, victimID, domain.TeamEnemy)
	b.put(far, decoyID, domain.TeamEnemy)

	if c, ok := SelectByDistance(b, caster, domain.TeamAlly, domain.TeamEnemy, Nearest); !ok || c.HexID != near {
		t.Errorf("Nearest = %+v, want hex %d", c, near)
	}
	if c, ok := SelectByDistance(b, caster, domain.TeamAlly, domain.TeamEnemy, Farthest); !ok || c.HexID != far {
		t.Errorf("Farthest = %+v, want hex %d", c, far)
	}
}

func TestSelectByDistanceTieBreakInversion(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))

	// Two equally distant candidates; ids differ.
	lo := b.idAt(t, hexmap.New(0, 0).Neighbor(hexmap.DirNW))
	hi := b.idAt(t, hexmap.New(0, 0).Neighbor(hexmap.DirSE))
	if lo > hi {
		lo, hi = hi, lo
	}
	b.put(lo, victimID, domain.TeamEnemy)
	b.put(hi, decoyID, domain.TeamEnemy)

	// Ally caster breaks ties by ascending id.
	if c, _ := SelectByDistance(b, caster, domain.TeamAlly, domain.TeamEnemy, Nearest); c.HexID != lo {
		t.Errorf("ally tie-break picked %d, want %d", c.HexID, lo)
	}
	// Enemy caster inverts the ordering.
	if c, _ := SelectByDistance(b, caster, domain.TeamEnemy, domain.TeamEnemy, Nearest); c.HexID != hi {
		t.Errorf("enemy tie-break picked %d, want %d", c.HexID, hi)
	}
}

func TestSelectByDistanceNoCandidates(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))
	if _, ok := SelectByDistance(b, caster, domain.TeamAlly, domain.TeamEnemy, Nearest); ok {
		t.Error("expected no candidate")
	}
}

func TestSelectTopN(t *testing.T) {
	b := newTestBoard(t, hexmap.PresetArena)
	caster := b.idAt(t, hexmap.New(0, 0))

	d1 := b.idAt(t, hexmap.New(1, 0))
	d2 := b.idAt(t, hexmap.New(2, 0))
	d3 := b.idAt(t, hexmap.New(3, 0))
	d4 := b.idAt(t, hexmap.New(4, 0))
	for i, id := range []int{d1, d2, d3, d4} {
		b.put(id, domain.CharacterID(10+i), domain.TeamEnemy)
	}

	got := SelectTopN(b, caster, domain.TeamAlly, domain.TeamEnemy, Nearest, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []int{d1, d2, d3}
	for i := range want {
		if got[i].HexID != want[i] {
			t.Errorf("top[%d] = %d, want %d", i, got[i].HexID, want[i])
		}
	}

	// Fewer candidates than n is fine.
	short := SelectTopN(b, caster, domain.TeamAlly, domain.TeamEnemy, Nearest, 10)
	if len(short) != 4 {
		t.Errorf("len = %d, want 4", len(short))
	}
}
