package actions

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandlePlace(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	team := domain.ParseTeam(p.Team)
	if err := ctx.Grid.Place(p.HexID, domain.CharacterID(p.CharacterID), team); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg: fmt.Sprintf("character %d placed on hex %d (%s)", p.CharacterID, p.HexID, team),
	}, nil
}
