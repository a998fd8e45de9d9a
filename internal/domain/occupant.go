package domain

// Occupant — пара "ячейка-персонаж" для читающих обходов сетки.
type Occupant struct {
	HexID     int
	Character CharacterID
}

// StateRecord — элемент списка (hexId, state) контракта регидрации.
type StateRecord struct {
	HexID int
	State TileState
}

// UnitRecord — элемент списка (hexId, characterId, team) контракта
// регидрации.
type UnitRecord struct {
	HexID     int
	Character CharacterID
	Team      Team
}
