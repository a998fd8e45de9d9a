package skill

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/companion"
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/grid"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

// Context передается в колбэки описателя. Всё, что колбэку позволено
// трогать, собрано здесь; глобальных ссылок у навыков нет.
type Context struct {
	Grid       *grid.Grid
	Companions *companion.Registry
	Manager    *Manager

	Character domain.CharacterID
	HexID     int
	Team      domain.Team

	// Hooks — презентационные хуки из описателя навыка (для призыва
	// компаньонов).
	Hooks []string
}

// entry — запись активации: где и за какую команду стоит носитель.
type entry struct {
	hexID int
	team  domain.Team
}

// Manager держит записи активаций и кэш целей. Реализует
// grid.SkillLifecycle; сетка дергает его из шагов транзакций и после
// каждой фиксации.
type Manager struct {
	registry   *Registry
	grid       *grid.Grid
	companions *companion.Registry
	symmetry   *targeting.Symmetry

	active  map[domain.SkillKey]*entry
	targets map[domain.SkillKey]TargetInfo
	version uint64

	log *logrus.Entry
}

// NewManager собирает менеджер поверх сетки и реестра компаньонов.
// Карта симметрии строится один раз по арене; если арена не прошла
// проверку симметрии, зеркальные навыки деградируют до «нет цели».
func NewManager(reg *Registry, g *grid.Grid, comps *companion.Registry) *Manager {
	m := &Manager{
		registry:   reg,
		grid:       g,
		companions: comps,
		active:     make(map[domain.SkillKey]*entry),
		targets:    make(map[domain.SkillKey]TargetInfo),
		log:        logger.Log.WithField("component", "skills"),
	}

	sym, err := targeting.NewSymmetry(g.Arena())
	if err != nil {
		m.log.WithError(err).Warn("Arena symmetry table rejected, mirror skills will find no targets.")
	} else {
		m.symmetry = sym
	}

	return m
}

// Symmetry возвращает зеркальную карту арены (nil, если её не удалось
// построить).
func (m *Manager) Symmetry() *targeting.Symmetry { return m.symmetry }

func (m *Manager) context(d *Descriptor, char domain.CharacterID, hexID int, team domain.Team) *Context {
	return &Context{
		Grid:       m.grid,
		Companions: m.companions,
		Manager:    m,
		Character:  char,
		HexID:      hexID,
		Team:       team,
		Hooks:      d.Hooks,
	}
}

// Activate регистрирует активацию и зовет OnActivate. Персонаж без
// способности — no-op. Повторная активация того же персонажа за ту же
// команду сначала снимает старую запись (идемпотентность).
//
// Паника или ошибка колбэка откатывает запись и возвращается наружу:
// объемлющая транзакция сетки обязана провалиться целиком.
func (m *Manager) Activate(char domain.CharacterID, hexID int, team domain.Team) error {
	d, ok := m.registry.Lookup(char)
	if !ok {
		return nil
	}

	key := domain.PackSkillKey(char, team)
	if _, dup := m.active[key]; dup {
		m.Deactivate(char, team)
	}

	m.active[key] = &entry{hexID: hexID, team: team}

	err := m.invoke(d.Name, func() error {
		if d.OnActivate == nil {
			return nil
		}
		return d.OnActivate(m.context(d, char, hexID, team))
	})
	if err != nil {
		delete(m.active, key)
		m.ClearTargets(char, team)
		return fmt.Errorf("activate %s: %w", d.Name, err)
	}

	m.log.WithFields(logrus.Fields{
		"skill": d.Name,
		"char":  char,
		"hex":   hexID,
		"team":  team,
	}).Debug("Skill activated.")
	return nil
}

// Deactivate зовет OnDeactivate, снимает запись и чистит цели
// персонажа. Отсутствующая запись — no-op.
func (m *Manager) Deactivate(char domain.CharacterID, team domain.Team) {
	key := domain.PackSkillKey(char, team)
	e, ok := m.active[key]
	if !ok {
		return
	}

	if d, found := m.registry.Lookup(char); found && d.OnDeactivate != nil {
		// Деактивация не имеет права сорвать снятие записи: паника
		// колбэка логируется и глотается.
		if err := m.invoke(d.Name, func() error {
			d.OnDeactivate(m.context(d, char, e.hexID, team))
			return nil
		}); err != nil {
			m.log.WithError(err).WithField("char", char).Error("OnDeactivate failed, entry removed anyway.")
		}
	}

	delete(m.active, key)
	m.ClearTargets(char, team)
}

// Relocate обновляет ячейку записи при перемещении носителя внутри
// команды. Активация не пересоздается: компаньоны и цели доживут до
// ближайшего UpdateAll.
func (m *Manager) Relocate(char domain.CharacterID, team domain.Team, hexID int) {
	if e, ok := m.active[domain.PackSkillKey(char, team)]; ok {
		e.hexID = hexID
	}
}

// Suspend снимает активацию перед сменой команды и возвращает
// замыкание для точного отката: реактивация на исходной ячейке плюс
// возврат компаньонов на сохраненные позиции.
func (m *Manager) Suspend(char domain.CharacterID, team domain.Team) (func() error, bool) {
	key := domain.PackSkillKey(char, team)
	e, ok := m.active[key]
	if !ok {
		return nil, false
	}

	hexID := e.hexID
	var snap []companion.Position
	var hooks []string
	if d, found := m.registry.Lookup(char); found {
		hooks = d.Hooks
	}
	if m.companions != nil {
		snap = m.companions.Snapshot(char, team)
	}

	m.Deactivate(char, team)

	resume := func() error {
		if err := m.Activate(char, hexID, team); err != nil {
			return err
		}
		if m.companions == nil || len(snap) == 0 {
			return nil
		}
		return m.companions.Restore(char, team, snap, hooks)
	}
	return resume, true
}

// UpdateAll пересчитывает цели всех активных навыков в числовом
// порядке ключей. Порядок фиксирован, чтобы два одинаковых состояния
// сетки давали одинаковые кэши целей.
func (m *Manager) UpdateAll() {
	keys := make([]domain.SkillKey, 0, len(m.active))
	for k := range m.active {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		e, ok := m.active[key]
		if !ok {
			continue // снят каскадом предыдущего обновления
		}
		d, found := m.registry.Lookup(key.Character())
		if !found || d.OnUpdate == nil {
			continue
		}
		// Один сломанный навык не должен валить пересчет остальных:
		// его цели сбрасываются, обход продолжается.
		if err := m.invoke(d.Name, func() error {
			d.OnUpdate(m.context(d, key.Character(), e.hexID, key.Team()))
			return nil
		}); err != nil {
			m.log.WithError(err).WithField("key", key.String()).Error("OnUpdate failed, targets dropped.")
			m.ClearTargets(key.Character(), key.Team())
		}
	}
}

// IsActive сообщает, активен ли навык персонажа за команду.
func (m *Manager) IsActive(char domain.CharacterID, team domain.Team) bool {
	_, ok := m.active[domain.PackSkillKey(char, team)]
	return ok
}

// ActiveKeys возвращает ключи активаций в числовом порядке.
func (m *Manager) ActiveKeys() []domain.SkillKey {
	out := make([]domain.SkillKey, 0, len(m.active))
	for k := range m.active {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- КЭШ ЦЕЛЕЙ ---

// SetTarget записывает цель навыка в слот. Любая запись двигает версию.
func (m *Manager) SetTarget(char domain.CharacterID, slot uint8, team domain.Team, info TargetInfo) {
	m.targets[domain.PackTargetKey(char, slot, team)] = info
	m.version++
}

// ClearTarget снимает один слот цели.
func (m *Manager) ClearTarget(char domain.CharacterID, slot uint8, team domain.Team) {
	key := domain.PackTargetKey(char, slot, team)
	if _, ok := m.targets[key]; ok {
		delete(m.targets, key)
		m.version++
	}
}

// ClearTargets снимает все слоты целей активации (персонаж + команда).
func (m *Manager) ClearTargets(char domain.CharacterID, team domain.Team) {
	base := domain.PackSkillKey(char, team)
	dropped := false
	for k := range m.targets {
		if k.SameActivation(base) {
			delete(m.targets, k)
			dropped = true
		}
	}
	if dropped {
		m.version++
	}
}

// Target возвращает цель из слота.
func (m *Manager) Target(char domain.CharacterID, slot uint8, team domain.Team) (TargetInfo, bool) {
	info, ok := m.targets[domain.PackTargetKey(char, slot, team)]
	return info, ok
}

// Version возвращает монотонный счетчик изменений кэша целей. Слой
// отрисовки сравнивает его со своим, чтобы не перерисовывать стрелки
// впустую.
func (m *Manager) Version() uint64 { return m.version }

// Targets возвращает слепок кэша целей в числовом порядке ключей.
func (m *Manager) Targets() []TargetEntry {
	out := make([]TargetEntry, 0, len(m.targets))
	for k, info := range m.targets {
		out = append(out, TargetEntry{Key: k, Info: info})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// invoke выполняет колбэк, перехватывая панику: сбой одного описателя
// не должен ронять процесс и портить сетку.
func (m *Manager) invoke(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("skill %s panicked: %v", name, r)
		}
	}()
	return fn()
}
