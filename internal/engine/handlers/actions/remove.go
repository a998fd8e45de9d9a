package actions

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandleRemove(ctx handlers.Context, p api.RemovePayload) (handlers.Result, error) {
	if err := ctx.Grid.Remove(p.HexID); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("hex %d cleared", p.HexID)}, nil
}
