package skill

import (
	"sort"

	"github.com/tmdict/stargazer-sub002/internal/domain"
)

// Descriptor — описатель способности персонажа.
//
// OnActivate обязателен, OnDeactivate и OnUpdate опциональны.
// OnUpdate вызывается после каждой зафиксированной транзакции сетки —
// это шанс пересчитать цель по новому состоянию. Описатели не должны
// зависеть от порядка обновления чужих навыков.
type Descriptor struct {
	Name string

	// Hooks — имена презентационных хуков, которые навык объявляет
	// для своих компаньонов. Исполнение хуков — забота внешнего слоя.
	Hooks []string

	OnActivate   func(ctx *Context) error
	OnDeactivate func(ctx *Context)
	OnUpdate     func(ctx *Context)
}

// Registry — неизменяемая таблица способностей, построенная на старте
// и переданная в конструктор движка. Глобального состояния нет
// намеренно: движок видит только то, что ему отдали.
type Registry struct {
	byChar map[domain.CharacterID]*Descriptor
}

// NewRegistry копирует таблицу; дальше её никто не меняет.
func NewRegistry(descriptors map[domain.CharacterID]*Descriptor) *Registry {
	byChar := make(map[domain.CharacterID]*Descriptor, len(descriptors))
	for id, d := range descriptors {
		byChar[id] = d
	}
	return &Registry{byChar: byChar}
}

// Lookup возвращает описатель способности персонажа.
func (r *Registry) Lookup(char domain.CharacterID) (*Descriptor, bool) {
	d, ok := r.byChar[char]
	return d, ok
}

// Has сообщает, есть ли у персонажа способность.
func (r *Registry) Has(char domain.CharacterID) bool {
	_, ok := r.byChar[char]
	return ok
}

// Characters возвращает идентификаторы персонажей со способностями
// по возрастанию.
func (r *Registry) Characters() []domain.CharacterID {
	out := make([]domain.CharacterID, 0, len(r.byChar))
	for id := range r.byChar {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
