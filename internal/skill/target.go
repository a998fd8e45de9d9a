package skill

import "github.com/tmdict/stargazer-sub002/internal/domain"

// Arrow — стрелка индикации от ячейки заклинателя к ячейке цели
// (мульти-целевые навыки рисуют по стрелке на цель).
type Arrow struct {
	FromHexID int `json:"from"`
	ToHexID   int `json:"to"`
}

// Meta — навык-специфичные метаданные цели. Читаются слоем отрисовки
// как есть.
type Meta struct {
	// Trace — осмотренные ячейки спирального поиска (отладка).
	Trace []int `json:"trace,omitempty"`
	// DirectMirror — цель найдена прямым попаданием в зеркальную
	// ячейку, без запасного поиска.
	DirectMirror bool `json:"directMirror,omitempty"`
	// Arrows — стрелки мульти-целевого навыка.
	Arrows []Arrow `json:"arrows,omitempty"`
}

// TargetInfo — вычисленная цель навыка.
type TargetInfo struct {
	TargetHexID     int                `json:"targetHexId"`
	TargetCharacter domain.CharacterID `json:"targetCharacterId"`
	Meta            Meta               `json:"meta"`
}

// TargetEntry — запись кэша целей вместе со своим составным ключом.
type TargetEntry struct {
	Key  domain.SkillKey
	Info TargetInfo
}
