package domain

import "strings"

// Team — сторона, за которую выставлен персонаж.
type Team uint8

const (
	TeamNone Team = iota
	TeamAlly
	TeamEnemy
)

// Маппинг для конвертации JSON -> Domain
var teamStringToTeam = map[string]Team{
	"ALLY":  TeamAlly,
	"ENEMY": TeamEnemy,
}

// Маппинг для логов Domain -> String
var teamToString = map[Team]string{
	TeamAlly:  "ALLY",
	TeamEnemy: "ENEMY",
}

// ParseTeam конвертирует строку из JSON в Team.
func ParseTeam(s string) Team {
	// Нечувствительность к регистру для надежности
	if t, ok := teamStringToTeam[strings.ToUpper(s)]; ok {
		return t
	}
	return TeamNone
}

// String реализует интерфейс Stringer (для fmt.Printf).
func (t Team) String() string {
	if s, ok := teamToString[t]; ok {
		return s
	}
	return "NONE"
}

// Opponent возвращает противоположную команду.
// Для TeamNone возвращается TeamNone: противника у "ничьей" стороны нет.
func (t Team) Opponent() Team {
	switch t {
	case TeamAlly:
		return TeamEnemy
	case TeamEnemy:
		return TeamAlly
	default:
		return TeamNone
	}
}
