package domain

import "fmt"

// SkillKey — 48-битный упакованный ключ записей активации и кэша целей.
//
// SkillKey является value-type и предназначен для дешёвого копирования,
// сравнения и использования как ключ map. Числовой порядок ключей
// задает детерминированный порядок обхода активных навыков.
//
// Формат битов (от старших к младшим):
//
//	[ Team (8) | Slot (8) | Character (32) ]
//
// Где:
//   - Team — команда активации (один и тот же персонаж может быть
//     независимо активен за обе команды)
//   - Slot — вторичный индекс цели для мульти-целевых навыков
//     (N одновременных целей сосуществуют в кэше, не затирая друг друга)
//   - Character — идентификатор персонажа
type SkillKey uint64

// NilSkillKey — нулевой ключ, аналог nil для отсутствующей записи.
const NilSkillKey SkillKey = 0

// Конфигурация битов SkillKey.
const (
	bitsCharacter = 32
	bitsSlot      = 8

	shiftSlot = bitsCharacter
	shiftTeam = bitsCharacter + bitsSlot

	maskCharacter = (1 << bitsCharacter) - 1
	maskSlot      = (1 << bitsSlot) - 1
	maskTeam      = 0xFF
)

// PackSkillKey собирает ключ записи активации (слот 0).
func PackSkillKey(char CharacterID, team Team) SkillKey {
	return PackTargetKey(char, 0, team)
}

// PackTargetKey собирает ключ записи кэша целей с вторичным индексом.
//
// Функция не проверяет диапазоны и предполагает, что идентификатор
// персонажа неотрицателен и помещается в 32 бита.
func PackTargetKey(char CharacterID, slot uint8, team Team) SkillKey {
	return SkillKey(uint64(team)<<shiftTeam |
		uint64(slot)<<shiftSlot |
		uint64(uint32(char)))
}

// Character извлекает идентификатор персонажа.
func (k SkillKey) Character() CharacterID {
	return CharacterID(uint64(k) & maskCharacter)
}

// Slot извлекает вторичный индекс цели.
func (k SkillKey) Slot() uint8 {
	return uint8((uint64(k) >> shiftSlot) & maskSlot)
}

// Team извлекает команду активации.
func (k SkillKey) Team() Team {
	return Team((uint64(k) >> shiftTeam) & maskTeam)
}

// SameActivation сообщает, относятся ли два ключа к одной записи
// активации (совпадают персонаж и команда, слот игнорируется).
func (k SkillKey) SameActivation(o SkillKey) bool {
	const activationMask = uint64(maskTeam)<<shiftTeam | maskCharacter
	return uint64(k)&activationMask == uint64(o)&activationMask
}

// String реализует интерфейс Stringer (для логов и отладки).
func (k SkillKey) String() string {
	return fmt.Sprintf("skill[char=%d slot=%d team=%s]", k.Character(), k.Slot(), k.Team())
}
