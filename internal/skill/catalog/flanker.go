package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// newFlanker — сканирование собственного ряда: ближайший противник в
// ряду носителя, ничья решается правой стороной, при пустом ряде —
// задние ряды соседних колец.
func newFlanker() *skill.Descriptor {
	compute := func(ctx *skill.Context) {
		res := targeting.RowScan(ctx.Grid, ctx.HexID, ctx.Team, ctx.Team.Opponent(),
			targeting.ScanRight, targeting.PreferRear)
		if !res.Found {
			ctx.Manager.ClearTargets(ctx.Character, ctx.Team)
			return
		}
		ctx.Manager.SetTarget(ctx.Character, 0, ctx.Team, skill.TargetInfo{
			TargetHexID:     res.HexID,
			TargetCharacter: res.Character,
		})
	}

	return &skill.Descriptor{
		Name:       "flanker",
		OnActivate: func(ctx *skill.Context) error { compute(ctx); return nil },
		OnUpdate:   compute,
	}
}
