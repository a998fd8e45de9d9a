package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// newSeeker — спиральный поиск ближайшего противника. Эталонный
// потребитель обхода колец; маршрут осмотра сохраняется в метаданных
// цели для индикации.
func newSeeker() *skill.Descriptor {
	compute := func(ctx *skill.Context) {
		res := targeting.SpiralSearch(ctx.Grid, ctx.HexID, ctx.Team, ctx.Team.Opponent(), nil)
		if !res.Found {
			ctx.Manager.ClearTargets(ctx.Character, ctx.Team)
			return
		}
		ctx.Manager.SetTarget(ctx.Character, 0, ctx.Team, skill.TargetInfo{
			TargetHexID:     res.HexID,
			TargetCharacter: res.Character,
			Meta:            skill.Meta{Trace: res.Trace},
		})
	}

	return &skill.Descriptor{
		Name:       "seeker",
		OnActivate: func(ctx *skill.Context) error { compute(ctx); return nil },
		OnUpdate:   compute,
	}
}
