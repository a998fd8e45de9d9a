package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// HookWardenBanner — презентационный хук компаньона стража.
const HookWardenBanner = "warden:banner"

// newWarden — призыв компаньона на ближайшую свободную ячейку
// расстановки своей команды (в порядке обхода колец от носителя).
// Емкость проверяется до каких-либо записей: если свободной ячейки
// нет, активация возвращает NoAvailableTileError и объемлющая
// транзакция проваливается целиком.
func newWarden() *skill.Descriptor {
	return &skill.Descriptor{
		Name:  "warden",
		Hooks: []string{HookWardenBanner},
		OnActivate: func(ctx *skill.Context) error {
			spawnHex, ok := findSpawnTile(ctx)
			if !ok {
				return &domain.NoAvailableTileError{Owner: ctx.Character, Team: ctx.Team}
			}
			comp := ctx.Companions.AllocateID(ctx.Character, ctx.Team)
			return ctx.Companions.Spawn(ctx.Character, comp, ctx.Team, spawnHex, ctx.Hooks)
		},
		OnDeactivate: func(ctx *skill.Context) {
			ctx.Companions.CascadeRemove(ctx.Character, ctx.Team)
		},
	}
}

// findSpawnTile перебирает кольца вокруг носителя в порядке обхода
// его команды и возвращает первую незанятую ячейку расстановки.
func findSpawnTile(ctx *skill.Context) (int, bool) {
	arena := ctx.Grid.Arena()
	center, ok := arena.HexOf(ctx.HexID)
	if !ok {
		return 0, false
	}

	want := domain.AvailableFor(ctx.Team)
	for radius := 1; radius <= arena.MaxRadius(); radius++ {
		for _, h := range targeting.RingWalk(ctx.Team, center, radius) {
			id, onArena := arena.IDOf(h)
			if !onArena {
				continue
			}
			if t, found := ctx.Grid.Tile(id); found && t.State == want && !t.Occupied() {
				return id, true
			}
		}
	}
	return 0, false
}
