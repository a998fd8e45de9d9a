package actions

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	if err := ctx.Grid.Move(p.FromHexID, p.ToHexID, domain.CharacterID(p.CharacterID)); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg: fmt.Sprintf("character %d moved %d -> %d", p.CharacterID, p.FromHexID, p.ToHexID),
	}, nil
}
