package grid

import (
	"os"
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	p, err := hexmap.LookupPreset(hexmap.PresetArena)
	if err != nil {
		t.Fatal(err)
	}
	a, err := hexmap.NewArena(p)
	if err != nil {
		t.Fatal(err)
	}
	return New(a, p)
}

func firstAvailable(t *testing.T, g *Grid, team domain.Team) int {
	t.Helper()
	ids := g.AvailableTiles(team)
	if len(ids) == 0 {
		t.Fatalf("no available tiles for %s", team)
	}
	return ids[0]
}

func mustPlace(t *testing.T, g *Grid, hexID int, char domain.CharacterID, team domain.Team) {
	t.Helper()
	if err := g.Place(hexID, char, team); err != nil {
		t.Fatalf("Place(%d, %d, %s): %v", hexID, char, team, err)
	}
}
