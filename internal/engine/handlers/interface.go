package handlers

import (
	"encoding/json"

	"github.com/tmdict/stargazer-sub002/internal/companion"
	"github.com/tmdict/stargazer-sub002/internal/grid"
	"github.com/tmdict/stargazer-sub002/internal/skill"
	"github.com/tmdict/stargazer-sub002/internal/storage"
)

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние через
// транзакционный API сетки.
type Context struct {
	Grid       *grid.Grid
	Companions *companion.Registry
	Skills     *skill.Manager
	Store      *storage.Store
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg string // Текст лога
}

// HandlerFunc - это контракт для любой команды (PLACE, MOVE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
