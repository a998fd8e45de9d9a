package targeting

import (
	"sort"
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// testBoard is a minimal read-only Board over a plain occupancy map.
type testBoard struct {
	arena *hexmap.Arena
	units map[int]domain.UnitRecord
}

func newTestBoard(t *testing.T, preset string) *testBoard {
	t.Helper()
	p, err := hexmap.LookupPreset(preset)
	if err != nil {
		t.Fatal(err)
	}
	a, err := hexmap.NewArena(p)
	if err != nil {
		t.Fatal(err)
	}
	return &testBoard{arena: a, units: make(map[int]domain.UnitRecord)}
}

func (b *testBoard) put(hexID int, char domain.CharacterID, team domain.Team) {
	b.units[hexID] = domain.UnitRecord{HexID: hexID, Character: char, Team: team}
}

func (b *testBoard) Arena() *hexmap.Arena { return b.arena }

func (b *testBoard) OccupantAt(hexID int) (domain.CharacterID, domain.Team, bool) {
	u, ok := b.units[hexID]
	if !ok {
		return 0, domain.TeamNone, false
	}
	return u.Character, u.Team, true
}

func (b *testBoard) Occupants(team domain.Team) []domain.Occupant {
	var out []domain.Occupant
	for id, u := range b.units {
		if u.Team == team {
			out = append(out, domain.Occupant{HexID: id, Character: u.Character})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HexID < out[j].HexID })
	return out
}

// idAt resolves a hex relative to the arena origin (0,0,0).
func (b *testBoard) idAt(t *testing.T, h hexmap.Hex) int {
	t.Helper()
	id, ok := b.arena.IDOf(h)
	if !ok {
		t.Fatalf("hex %v is not on the arena", h)
	}
	return id
}
