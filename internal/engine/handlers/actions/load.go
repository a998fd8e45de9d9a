package actions

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandleLoad(ctx handlers.Context, p api.LoadPayload) (handlers.Result, error) {
	setup, err := ctx.Store.Load(p.Name)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	// Файл другой арены применять нельзя: идентификаторы ячеек не совпадут.
	if setup.Arena != ctx.Grid.Arena().Name() {
		return handlers.EmptyResult(), fmt.Errorf("setup %q is for arena %q, current arena is %q",
			p.Name, setup.Arena, ctx.Grid.Arena().Name())
	}

	if err := ctx.Grid.Rehydrate(setup.States, setup.Units); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("setup %q loaded", p.Name)}, nil
}
