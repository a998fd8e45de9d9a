package actions

import "github.com/tmdict/stargazer-sub002/internal/engine/handlers"

// HandleInit ничего не меняет: клиент запросил актуальный снимок,
// сервис разошлет его после выполнения команды.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
