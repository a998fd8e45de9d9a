package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand — корневой объект команды от клиента-отрисовщика.
// Action парсится в domain.ActionType, Payload распаковывается
// хендлером соответствующей команды.
type ClientCommand struct {
	Action  string          `json:"action"`
	Session string          `json:"session,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PlacePayload — выставить персонажа на ячейку расстановки.
type PlacePayload struct {
	HexID       int    `json:"hexId"`
	CharacterID int    `json:"characterId"`
	Team        string `json:"team"` // "ALLY" или "ENEMY"
}

// RemovePayload — снять персонажа с ячейки.
type RemovePayload struct {
	HexID int `json:"hexId"`
}

// MovePayload — перенести персонажа на свободную ячейку.
// Смена стороны определяется состоянием целевой ячейки, клиент её
// не указывает.
type MovePayload struct {
	FromHexID   int `json:"fromHexId"`
	ToHexID     int `json:"toHexId"`
	CharacterID int `json:"characterId"`
}

// SwapPayload — поменять местами персонажей двух занятых ячеек.
type SwapPayload struct {
	HexA int `json:"hexA"`
	HexB int `json:"hexB"`
}

// SavePayload — записать текущую расстановку в файл.
type SavePayload struct {
	Name string `json:"name"`
}

// LoadPayload — восстановить расстановку из файла.
type LoadPayload struct {
	Name string `json:"name"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы исходящих сообщений.
const (
	ResponseUpdate = "UPDATE" // полный снимок после зафиксированной мутации
	ResponseError  = "ERROR"  // отказ команды, снимок не менялся
)

// ServerResponse — корневой объект ответа. После каждой зафиксированной
// мутации всем сессиям рассылается полный снимок: состояние всех ячеек
// плюс кэш целей активных навыков.
type ServerResponse struct {
	Type string `json:"type"`

	// Reason — код причины отказа (только для Type == "ERROR").
	Reason string `json:"reason,omitempty"`
	// Detail — человекочитаемое описание отказа.
	Detail string `json:"detail,omitempty"`

	// Arena — метаданные арены, чтобы клиент подготовил сетку.
	Arena *ArenaMeta `json:"arena,omitempty"`

	// Tiles — все ячейки арены в порядке идентификаторов.
	Tiles []TileView `json:"tiles,omitempty"`

	// Targets — вычисленные цели активных навыков.
	Targets []TargetView `json:"targets,omitempty"`

	// TargetsVersion — монотонный счетчик кэша целей. Клиент сравнивает
	// его со своим, чтобы не перерисовывать индикацию впустую.
	TargetsVersion uint64 `json:"targetsVersion,omitempty"`
}

// ArenaMeta — размеры и имя арены.
type ArenaMeta struct {
	Name      string `json:"name"`
	Tiles     int    `json:"tiles"`
	Rows      int    `json:"rows"`
	CenterRow int    `json:"centerRow"`
}

// TileView — DTO одной ячейки.
type TileView struct {
	HexID int `json:"hexId"`
	Q     int `json:"q"`
	R     int `json:"r"`

	State string `json:"state"`

	// CharacterID и Team присутствуют только у занятых ячеек.
	CharacterID int    `json:"characterId,omitempty"`
	Team        string `json:"team,omitempty"`
}

// TargetView — DTO одной записи кэша целей.
type TargetView struct {
	CharacterID int    `json:"characterId"`
	Slot        uint8  `json:"slot"`
	Team        string `json:"team"`

	TargetHexID       int `json:"targetHexId"`
	TargetCharacterID int `json:"targetCharacterId"`

	// Навык-специфичные метаданные.
	DirectMirror bool        `json:"directMirror,omitempty"`
	Trace        []int       `json:"trace,omitempty"`
	Arrows       []ArrowView `json:"arrows,omitempty"`
}

// ArrowView — стрелка индикации мульти-целевого навыка.
type ArrowView struct {
	From int `json:"from"`
	To   int `json:"to"`
}
