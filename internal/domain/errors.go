package domain

import (
	"errors"
	"fmt"
)

// Коды причин отказа валидации. Отдаются клиенту как есть,
// человекочитаемый текст — забота слоя представления.
const (
	ReasonUnknownHex     = "UNKNOWN_HEX"
	ReasonNotAvailable   = "TILE_NOT_AVAILABLE"
	ReasonOccupied       = "TILE_OCCUPIED"
	ReasonNotOccupied    = "TILE_NOT_OCCUPIED"
	ReasonDuplicate      = "DUPLICATE_CHARACTER"
	ReasonCompanion      = "COMPANION_NOT_PLACEABLE"
	ReasonCompanionTeam  = "COMPANION_TEAM_LOCKED"
	ReasonWrongCharacter = "WRONG_CHARACTER"
	ReasonBadTeam        = "BAD_TEAM"
)

// ValidationError — отказ до начала мутации: ни один шаг транзакции
// ещё не выполнялся, сетка гарантированно не тронута.
type ValidationError struct {
	Reason string
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Reason, e.Msg)
}

// NewValidationError создает ValidationError с форматированием.
func NewValidationError(reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

// IsValidation сообщает, является ли ошибка отказом валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NoAvailableTileError — для компаньона не нашлось ни одной свободной
// ячейки. Ошибка различима намеренно: молча потерянный компаньон
// нарушил бы инвариант "компаньоны разделяют судьбу владельца".
type NoAvailableTileError struct {
	Owner CharacterID
	Team  Team
}

func (e *NoAvailableTileError) Error() string {
	return fmt.Sprintf("no available tile for companion of %d on team %s", e.Owner, e.Team)
}

// IsNoAvailableTile сообщает, является ли ошибка нехваткой ячеек.
func IsNoAvailableTile(err error) bool {
	var ne *NoAvailableTileError
	return errors.As(err, &ne)
}
