package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
)

// newMirror — зеркальный навык: цель ищется в ячейке, симметричной
// позиции носителя относительно центрального ряда. Прямое попадание
// (в зеркальной ячейке стоит противник) помечается в метаданных;
// иначе спиральный поиск стартует из зеркальной ячейки. Без карты
// симметрии навык деградирует до «нет цели».
func newMirror() *skill.Descriptor {
	compute := func(ctx *skill.Context) {
		sym := ctx.Manager.Symmetry()
		if sym == nil {
			ctx.Manager.ClearTargets(ctx.Character, ctx.Team)
			return
		}
		mirror, ok := sym.MirrorOf(ctx.HexID)
		if !ok {
			ctx.Manager.ClearTargets(ctx.Character, ctx.Team)
			return
		}

		opponent := ctx.Team.Opponent()
		if char, team, occupied := ctx.Grid.OccupantAt(mirror); occupied && team == opponent {
			ctx.Manager.SetTarget(ctx.Character, 0, ctx.Team, skill.TargetInfo{
				TargetHexID:     mirror,
				TargetCharacter: char,
				Meta:            skill.Meta{DirectMirror: true},
			})
			return
		}

		// Запасной поиск: спираль из зеркальной ячейки, порядок обхода —
		// команды носителя.
		res := targeting.SpiralSearch(ctx.Grid, mirror, ctx.Team, opponent, nil)
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
		Name:       "mirror",
		OnActivate: func(ctx *skill.Context) error { compute(ctx); return nil },
		OnUpdate:   compute,
	}
}
