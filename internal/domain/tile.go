package domain

import (
	"strings"

	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// TileState — состояние ячейки сетки.
type TileState uint8

const (
	StateDefault TileState = iota
	StateAvailableAlly
	StateAvailableEnemy
	StateOccupiedAlly
	StateOccupiedEnemy
	StateBlocked
	StateBlockedBreakable
)

var stateToString = map[TileState]string{
	StateDefault:          "DEFAULT",
	StateAvailableAlly:    "AVAILABLE_ALLY",
	StateAvailableEnemy:   "AVAILABLE_ENEMY",
	StateOccupiedAlly:     "OCCUPIED_ALLY",
	StateOccupiedEnemy:    "OCCUPIED_ENEMY",
	StateBlocked:          "BLOCKED",
	StateBlockedBreakable: "BLOCKED_BREAKABLE",
}

var stringToState = func() map[string]TileState {
	m := make(map[string]TileState, len(stateToString))
	for k, v := range stateToString {
		m[v] = k
	}
	return m
}()

// String реализует интерфейс Stringer.
func (s TileState) String() string {
	if v, ok := stateToString[s]; ok {
		return v
	}
	return "DEFAULT"
}

// ParseTileState конвертирует строку (из файла расстановки или от
// редактора карт) в TileState. Неизвестные значения дают DEFAULT.
func ParseTileState(s string) TileState {
	if v, ok := stringToState[strings.ToUpper(s)]; ok {
		return v
	}
	return StateDefault
}

// IsOccupied сообщает, является ли состояние занятым.
func (s TileState) IsOccupied() bool {
	return s == StateOccupiedAlly || s == StateOccupiedEnemy
}

// AvailableFor возвращает состояние "доступно для расстановки" команды.
func AvailableFor(t Team) TileState {
	if t == TeamEnemy {
		return StateAvailableEnemy
	}
	return StateAvailableAlly
}

// OccupiedFor возвращает состояние "занято" для команды.
func OccupiedFor(t Team) TileState {
	if t == TeamEnemy {
		return StateOccupiedEnemy
	}
	return StateOccupiedAlly
}

// Tile — одна ячейка арены: геометрия плюс игровое состояние.
//
// Инвариант: Character != 0 ⇔ Team != TeamNone ⇔ State ∈ {OCCUPIED_*}.
// Нарушать инвариант разрешено только шагам транзакции, и только так,
// чтобы к моменту возврата из публичной операции он был восстановлен.
type Tile struct {
	ID    int
	Hex   hexmap.Hex
	State TileState

	Character CharacterID // 0, если ячейка пуста
	Team      Team        // TeamNone, если ячейка пуста
}

// Occupied сообщает, стоит ли на ячейке персонаж.
func (t *Tile) Occupied() bool {
	return t.Character != 0
}
