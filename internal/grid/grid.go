package grid

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

// SkillLifecycle — то, что движку сетки нужно от менеджера навыков.
// Интерфейс объявлен здесь, чтобы пакет сетки не зависел от пакета
// навыков (зависимость направлена в обратную сторону).
type SkillLifecycle interface {
	// Activate активирует навык персонажа (no-op, если навыка нет).
	Activate(char domain.CharacterID, hexID int, team domain.Team) error
	// Deactivate снимает активацию (no-op, если её не было).
	Deactivate(char domain.CharacterID, team domain.Team)
	// Relocate обновляет ячейку в записи активации при перемещении
	// персонажа внутри команды.
	Relocate(char domain.CharacterID, team domain.Team, hexID int)
	// Suspend снимает активацию перед сменой команды и возвращает
	// замыкание, точно восстанавливающее её (включая позиции
	// компаньонов) при откате.
	Suspend(char domain.CharacterID, team domain.Team) (resume func() error, active bool)
	// UpdateAll пересчитывает цели всех активных навыков.
	UpdateAll()
}

// noopLifecycle используется, пока менеджер навыков не привязан
// (например, в тестах чистой сетки).
type noopLifecycle struct{}

func (noopLifecycle) Activate(domain.CharacterID, int, domain.Team) error { return nil }
func (noopLifecycle) Deactivate(domain.CharacterID, domain.Team)          {}
func (noopLifecycle) Relocate(domain.CharacterID, domain.Team, int)       {}
func (noopLifecycle) Suspend(domain.CharacterID, domain.Team) (func() error, bool) {
	return nil, false
}
func (noopLifecycle) UpdateAll() {}

type charKey struct {
	char domain.CharacterID
	team domain.Team
}

// Grid — изменяемое состояние одной арены: ячейки плюс индекс
// занятости. Все записи идут через транзакционный API; низкоуровневые
// SetOccupant/ClearOccupant доступны только шагам транзакций и
// колбэкам навыков.
type Grid struct {
	arena  *hexmap.Arena
	tiles  map[int]*domain.Tile
	byChar map[charKey]int
	skills SkillLifecycle
	log    *logrus.Entry
}

// New строит сетку по арене и пресету: первые EnemyRows рядов получают
// состояние AVAILABLE_ENEMY, последние AllyRows — AVAILABLE_ALLY,
// ячейки из Blocked — BLOCKED, остальные — DEFAULT.
func New(arena *hexmap.Arena, p hexmap.Preset) *Grid {
	g := &Grid{
		arena:  arena,
		tiles:  make(map[int]*domain.Tile, arena.Size()),
		byChar: make(map[charKey]int),
		skills: noopLifecycle{},
		log:    logger.Log.WithField("component", "grid"),
	}

	for _, id := range arena.IDs() {
		h, _ := arena.HexOf(id)
		row, _ := arena.RowOf(id)

		state := domain.StateDefault
		if row < p.EnemyRows {
			state = domain.StateAvailableEnemy
		} else if row >= arena.RowCount()-p.AllyRows {
			state = domain.StateAvailableAlly
		}

		g.tiles[id] = &domain.Tile{ID: id, Hex: h, State: state}
	}

	for _, id := range p.Blocked {
		if t, ok := g.tiles[id]; ok {
			t.State = domain.StateBlocked
		}
	}

	return g
}

// BindSkills привязывает менеджер навыков. Вызывается один раз при
// сборке движка (менеджеру для контекста нужна сетка, поэтому связка
// двухфазная).
func (g *Grid) BindSkills(s SkillLifecycle) {
	if s != nil {
		g.skills = s
	}
}

// Arena возвращает таблицы геометрии арены.
func (g *Grid) Arena() *hexmap.Arena { return g.arena }

// Tile возвращает копию ячейки. Копия намеренная: снаружи транзакций
// состояние ячеек менять нельзя.
func (g *Grid) Tile(hexID int) (domain.Tile, bool) {
	t, ok := g.tiles[hexID]
	if !ok {
		return domain.Tile{}, false
	}
	return *t, true
}

// OccupantAt возвращает персонажа на ячейке.
func (g *Grid) OccupantAt(hexID int) (domain.CharacterID, domain.Team, bool) {
	t, ok := g.tiles[hexID]
	if !ok || !t.Occupied() {
		return 0, domain.TeamNone, false
	}
	return t.Character, t.Team, true
}

// Occupants возвращает всех персонажей команды в порядке возрастания
// идентификаторов ячеек. Порядок фиксирован: на нем держится
// детерминизм перебора кандидатов.
func (g *Grid) Occupants(team domain.Team) []domain.Occupant {
	var out []domain.Occupant
	for id, t := range g.tiles {
		if t.Occupied() && t.Team == team {
			out = append(out, domain.Occupant{HexID: id, Character: t.Character})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HexID < out[j].HexID })
	return out
}

// FindCharacter возвращает ячейку, на которой стоит персонаж команды.
func (g *Grid) FindCharacter(char domain.CharacterID, team domain.Team) (int, bool) {
	id, ok := g.byChar[charKey{char, team}]
	return id, ok
}

// AvailableTiles возвращает свободные ячейки расстановки команды
// в порядке возрастания идентификаторов.
func (g *Grid) AvailableTiles(team domain.Team) []int {
	var out []int
	want := domain.AvailableFor(team)
	for id, t := range g.tiles {
		if t.State == want && !t.Occupied() {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// Snapshot возвращает копии всех ячеек в порядке идентификаторов —
// полный слепок для слоя отрисовки.
func (g *Grid) Snapshot() []domain.Tile {
	out := make([]domain.Tile, 0, len(g.tiles))
	for _, id := range g.arena.IDs() {
		out = append(out, *g.tiles[id])
	}
	return out
}

// --- НИЗКОУРОВНЕВЫЕ МУТАЦИИ ---
// Только для шагов транзакций и колбэков навыков: эти операции меняют
// ячейку в обход транзакционного механизма.

// SetOccupant ставит персонажа на ячейку и помечает её занятой.
func (g *Grid) SetOccupant(hexID int, char domain.CharacterID, team domain.Team) error {
	t, ok := g.tiles[hexID]
	if !ok {
		return fmt.Errorf("set occupant: unknown hex %d", hexID)
	}
	if t.Occupied() {
		return fmt.Errorf("set occupant: hex %d is already occupied by %d", hexID, t.Character)
	}
	t.Character = char
	t.Team = team
	t.State = domain.OccupiedFor(team)
	g.byChar[charKey{char, team}] = hexID
	return nil
}

// ClearOccupant снимает персонажа с ячейки и возвращает её в
// состояние расстановки своей команды. Возвращает снятого персонажа
// (для шагов отката).
func (g *Grid) ClearOccupant(hexID int) (domain.CharacterID, domain.Team) {
	t, ok := g.tiles[hexID]
	if !ok || !t.Occupied() {
		return 0, domain.TeamNone
	}
	char, team := t.Character, t.Team
	delete(g.byChar, charKey{char, team})
	t.Character = 0
	t.Team = domain.TeamNone
	t.State = domain.AvailableFor(team)
	return char, team
}

// SetState напрямую выставляет состояние ячейки. Используется
// регидрацией и (внешним) редактором карт; занятые ячейки не трогаем.
func (g *Grid) SetState(hexID int, state domain.TileState) error {
	t, ok := g.tiles[hexID]
	if !ok {
		return fmt.Errorf("set state: unknown hex %d", hexID)
	}
	if t.Occupied() {
		return fmt.Errorf("set state: hex %d is occupied", hexID)
	}
	t.State = state
	return nil
}

// commit запускает транзакцию и после фиксации дает навыкам
// пересчитать цели по новому состоянию сетки.
func (g *Grid) commit(tx *Transaction) error {
	if err := tx.Run(); err != nil {
		return err
	}
	g.skills.UpdateAll()
	return nil
}
