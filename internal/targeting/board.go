package targeting

import (
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// Board — то, что библиотеке прицеливания нужно от сетки: только
// чтение. Функции пакета чистые: одна и та же занятость и одни и те же
// параметры всегда дают один и тот же результат, скрытой случайности
// нет.
type Board interface {
	Arena() *hexmap.Arena
	OccupantAt(hexID int) (domain.CharacterID, domain.Team, bool)
	Occupants(team domain.Team) []domain.Occupant
}
