package actions

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandleSwap(ctx handlers.Context, p api.SwapPayload) (handlers.Result, error) {
	if err := ctx.Grid.Swap(p.HexA, p.HexB); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("hexes %d and %d swapped", p.HexA, p.HexB)}, nil
}
