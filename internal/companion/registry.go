package companion

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/grid"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

// Link — принадлежность компаньона: кто и за какую команду его призвал.
// Явное отношение вместо разложения идентификатора на множители:
// смещение диапазона остается договоренностью с внешними слоями,
// ядро владельца всегда читает отсюда.
type Link struct {
	Owner domain.CharacterID
	Team  domain.Team
}

type linkKey struct {
	owner domain.CharacterID
	team  domain.Team
}

// Position — сохраненная позиция компаньона для восстановления после
// смены команды владельца.
type Position struct {
	Companion domain.CharacterID
	HexID     int
}

// HookFunc вызывается при (пере)появлении компаньона на ячейке.
// Сами хуки — забота слоя представления; ядро только объявляет их.
type HookFunc func(hook string, comp domain.CharacterID, hexID int)

// Registry отслеживает призванных компаньонов и их принадлежность.
type Registry struct {
	grid    *grid.Grid
	byComp  map[domain.CharacterID]Link
	byOwner map[linkKey]map[domain.CharacterID]struct{}

	// OnHook, если задан, получает презентационные хуки навыков.
	OnHook HookFunc

	log *logrus.Entry
}

// NewRegistry создает пустой реестр поверх сетки.
func NewRegistry(g *grid.Grid) *Registry {
	return &Registry{
		grid:    g,
		byComp:  make(map[domain.CharacterID]Link),
		byOwner: make(map[linkKey]map[domain.CharacterID]struct{}),
		log:     logger.Log.WithField("component", "companions"),
	}
}

// AllocateID выделяет идентификатор очередного компаньона владельца:
// ownerId + k*offset, k >= 1. Диапазоны не пересекаются с владельцами.
func (r *Registry) AllocateID(owner domain.CharacterID, team domain.Team) domain.CharacterID {
	k := domain.CharacterID(len(r.Companions(owner, team)) + 1)
	return owner + k*domain.CompanionIDOffset
}

// Link регистрирует принадлежность компаньона.
func (r *Registry) Link(owner, comp domain.CharacterID, team domain.Team) {
	r.byComp[comp] = Link{Owner: owner, Team: team}
	key := linkKey{owner, team}
	if r.byOwner[key] == nil {
		r.byOwner[key] = make(map[domain.CharacterID]struct{})
	}
	r.byOwner[key][comp] = struct{}{}
}

// Unlink снимает принадлежность компаньона.
func (r *Registry) Unlink(owner, comp domain.CharacterID, team domain.Team) {
	delete(r.byComp, comp)
	key := linkKey{owner, team}
	if set, ok := r.byOwner[key]; ok {
		delete(set, comp)
		if len(set) == 0 {
			delete(r.byOwner, key)
		}
	}
}

// OwnerOf возвращает принадлежность компаньона.
func (r *Registry) OwnerOf(comp domain.CharacterID) (Link, bool) {
	l, ok := r.byComp[comp]
	return l, ok
}

// Companions возвращает компаньонов владельца по возрастанию
// идентификаторов (детерминированный порядок для каскадов и слепков).
func (r *Registry) Companions(owner domain.CharacterID, team domain.Team) []domain.CharacterID {
	set := r.byOwner[linkKey{owner, team}]
	out := make([]domain.CharacterID, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Spawn ставит компаньона на ячейку и регистрирует принадлежность.
// Занятая или отсутствующая ячейка — это NoAvailableTileError:
// молча уронить компаньона нельзя.
func (r *Registry) Spawn(owner, comp domain.CharacterID, team domain.Team, hexID int, hooks []string) error {
	if err := r.grid.SetOccupant(hexID, comp, team); err != nil {
		return &domain.NoAvailableTileError{Owner: owner, Team: team}
	}
	r.Link(owner, comp, team)
	r.applyHooks(hooks, comp, hexID)
	return nil
}

// CascadeRemove снимает с сетки всех компаньонов владельца и
// разрывает связи. Вызывается из деактивации призывающего навыка,
// до снятия самого владельца.
func (r *Registry) CascadeRemove(owner domain.CharacterID, team domain.Team) {
	for _, comp := range r.Companions(owner, team) {
		if hexID, ok := r.grid.FindCharacter(comp, team); ok {
			r.grid.ClearOccupant(hexID)
		}
		r.Unlink(owner, comp, team)
	}
}

// Snapshot сохраняет позиции компаньонов владельца перед сменой
// команды. Порядок детерминирован.
func (r *Registry) Snapshot(owner domain.CharacterID, team domain.Team) []Position {
	comps := r.Companions(owner, team)
	out := make([]Position, 0, len(comps))
	for _, comp := range comps {
		if hexID, ok := r.grid.FindCharacter(comp, team); ok {
			out = append(out, Position{Companion: comp, HexID: hexID})
		}
	}
	return out
}

// Restore возвращает компаньонов на сохраненные позиции после
// реактивации навыка владельца. Реактивация могла расставить их
// по-другому — здесь они переезжают на исходные ячейки, с повторным
// объявлением презентационных хуков навыка.
func (r *Registry) Restore(owner domain.CharacterID, team domain.Team, snap []Position, hooks []string) error {
	for _, pos := range snap {
		cur, onGrid := r.grid.FindCharacter(pos.Companion, team)
		if onGrid && cur == pos.HexID {
			r.applyHooks(hooks, pos.Companion, pos.HexID)
			continue
		}
		if occ, _, busy := r.grid.OccupantAt(pos.HexID); busy && occ != pos.Companion {
			return &domain.NoAvailableTileError{Owner: owner, Team: team}
		}
		if onGrid {
			r.grid.ClearOccupant(cur)
		}
		if err := r.grid.SetOccupant(pos.HexID, pos.Companion, team); err != nil {
			return &domain.NoAvailableTileError{Owner: owner, Team: team}
		}
		if !onGrid {
			r.Link(owner, pos.Companion, team)
		}
		r.applyHooks(hooks, pos.Companion, pos.HexID)
	}
	return nil
}

func (r *Registry) applyHooks(hooks []string, comp domain.CharacterID, hexID int) {
	for _, h := range hooks {
		if r.OnHook != nil {
			r.OnHook(h, comp, hexID)
		}
		r.log.WithFields(logrus.Fields{
			"hook":      h,
			"companion": comp,
			"hex":       hexID,
		}).Debug("Companion presentation hook declared.")
	}
}
