package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// newSniper — самый дальний противник по кубической дистанции, ничья
// решается порядком идентификаторов (инвертированным для вражеской
// команды).
func newSniper() *skill.Descriptor {
	compute := func(ctx *skill.Context) {
		c, ok := targeting.SelectByDistance(ctx.Grid, ctx.HexID, ctx.Team, ctx.Team.Opponent(),
			targeting.Farthest)
		if !ok {
			ctx.Manager.ClearTargets(ctx.Character, ctx.Team)
			return
		}
		ctx.Manager.SetTarget(ctx.Character, 0, ctx.Team, skill.TargetInfo{
			TargetHexID:     c.HexID,
			TargetCharacter: c.Character,
		})
	}

	return &skill.Descriptor{
		Name:       "sniper",
		OnActivate: func(ctx *skill.Context) error { compute(ctx); return nil },
		OnUpdate:   compute,
	}
}
