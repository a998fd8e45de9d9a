package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID выдает идентификатор сессии: 12 байт случайности в hex.
// Сессии живут только в памяти хаба, глобальная уникальность UUID
// здесь не нужна.
func GenerateID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
