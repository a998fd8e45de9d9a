package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Session string          // Идентификатор сессии-отправителя (для адресных ответов)
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
