package domain

// CharacterID — идентификатор персонажа в таблице способностей.
type CharacterID int

// CompanionIDOffset — смещение диапазона идентификаторов компаньонов.
// Договоренность с внешними слоями: companionId = ownerId + k*offset,
// поэтому диапазоны владельцев и компаньонов не пересекаются.
// Само ядро принадлежность компаньона читает из реестра связей,
// а не раскладывает идентификатор на множители.
const CompanionIDOffset CharacterID = 10000

// IsCompanion сообщает, лежит ли идентификатор в диапазоне компаньонов.
func (c CharacterID) IsCompanion() bool {
	return c >= CompanionIDOffset
}
