package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// volleyTargets — сколько целей бьет залп.
const volleyTargets = 3

// newVolley — мульти-целевой залп: до трех ближайших противников,
// каждая цель в своем слоте кэша со стрелкой от носителя.
func newVolley() *skill.Descriptor {
	compute := func(ctx *skill.Context) {
		// Число целей могло уменьшиться с прошлого пересчета — кэш
		// чистится целиком перед заполнением.
		ctx.Manager.ClearTargets(ctx.Character, ctx.Team)

		picks := targeting.SelectTopN(ctx.Grid, ctx.HexID, ctx.Team, ctx.Team.Opponent(),
			targeting.Nearest, volleyTargets)
		for i, c := range picks {
			ctx.Manager.SetTarget(ctx.Character, uint8(i), ctx.Team, skill.TargetInfo{
				TargetHexID:     c.HexID,
				TargetCharacter: c.Character,
				Meta: skill.Meta{
					Arrows: []skill.Arrow{{FromHexID: ctx.HexID, ToHexID: c.HexID}},
				},
			})
		}
	}

	return &skill.Descriptor{
		Name:       "volley",
		OnActivate: func(ctx *skill.Context) error { compute(ctx); return nil },
		OnUpdate:   compute,
	}
}
