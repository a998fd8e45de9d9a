// Package catalog содержит встроенный набор способностей. Таблица
// собирается на старте и передается движку как неизменяемый реестр.
package catalog

import (
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/skill"
)

// Идентификаторы персонажей со способностями.
const (
	CharSeeker  = domain.CharacterID(101)
	CharMirror  = domain.CharacterID(102)
	CharFlanker = domain.CharacterID(103)
	CharSniper  = domain.CharacterID(104)
	CharVolley  = domain.CharacterID(105)
	CharWarden  = domain.CharacterID(106)
)

// Default возвращает полную таблицу способностей.
func Default() *skill.Registry {
	return skill.NewRegistry(map[domain.CharacterID]*skill.Descriptor{
		CharSeeker:  newSeeker(),
		CharMirror:  newMirror(),
		CharFlanker: newFlanker(),
		CharSniper:  newSniper(),
		CharVolley:  newVolley(),
		CharWarden:  newWarden(),
	})
}
