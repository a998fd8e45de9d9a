package actions

import (
	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
)

func HandleClear(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Grid.Clear(); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: "grid cleared"}, nil
}
