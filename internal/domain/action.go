package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlace
	ActionRemove
	ActionMove
	ActionSwap
	ActionClear
	ActionSave
	ActionLoad
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":   ActionInit,
	"PLACE":  ActionPlace,
	"REMOVE": ActionRemove,
	"MOVE":   ActionMove,
	"SWAP":   ActionSwap,
	"CLEAR":  ActionClear,
	"SAVE":   ActionSave,
	"LOAD":   ActionLoad,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:   "INIT",
	ActionPlace:  "PLACE",
	ActionRemove: "REMOVE",
	ActionMove:   "MOVE",
	ActionSwap:   "SWAP",
	ActionClear:  "CLEAR",
	ActionSave:   "SAVE",
	ActionLoad:   "LOAD",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
