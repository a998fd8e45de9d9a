package actions

import (
	"fmt"
	"time"

	"github.com/tmdict/stargazer-sub002/internal/engine/handlers"
	"github.com/tmdict/stargazer-sub002/internal/storage"
	"github.com/tmdict/stargazer-sub002/pkg/api"
)

func HandleSave(ctx handlers.Context, p api.SavePayload) (handlers.Result, error) {
	setup := &storage.Setup{
		SavedAt: time.Now().Unix(),
		Arena:   ctx.Grid.Arena().Name(),
		States:  ctx.Grid.ExportStates(),
		Units:   ctx.Grid.ExportUnits(),
	}
	if err := ctx.Store.Save(p.Name, setup); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("setup saved as %q", p.Name)}, nil
}
