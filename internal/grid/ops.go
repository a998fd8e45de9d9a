package grid

import (
	"sort"

	"github.com/tmdict/stargazer-sub002/internal/domain"
)

// Place выставляет персонажа на свободную ячейку расстановки команды.
//
// Ошибки валидации (*domain.ValidationError) возвращаются до запуска
// транзакции; любая другая ошибка означает откат, после которого сетка
// гарантированно не изменена.
func (g *Grid) Place(hexID int, char domain.CharacterID, team domain.Team) error {
	if err := g.validatePlace(hexID, char, team); err != nil {
		return err
	}

	tx := NewTransaction("place").
		Add(Step{
			Name:    "occupy",
			Forward: func() error { return g.SetOccupant(hexID, char, team) },
			Rollback: func() {
				g.ClearOccupant(hexID)
			},
		}).
		Add(Step{
			Name:    "activate-skill",
			Forward: func() error { return g.skills.Activate(char, hexID, team) },
			Rollback: func() {
				g.skills.Deactivate(char, team)
			},
		})

	return g.commit(tx)
}

func (g *Grid) validatePlace(hexID int, char domain.CharacterID, team domain.Team) error {
	if team != domain.TeamAlly && team != domain.TeamEnemy {
		return domain.NewValidationError(domain.ReasonBadTeam, "team %d is not placeable", team)
	}
	if char <= 0 {
		return domain.NewValidationError(domain.ReasonWrongCharacter, "character id %d is invalid", char)
	}
	if char.IsCompanion() {
		// Компаньоны появляются только как побочный эффект активации
		// навыка владельца.
		return domain.NewValidationError(domain.ReasonCompanion, "companion %d cannot be placed directly", char)
	}
	t, ok := g.tiles[hexID]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", hexID)
	}
	if t.Occupied() {
		return domain.NewValidationError(domain.ReasonOccupied, "hex %d is occupied by %d", hexID, t.Character)
	}
	if t.State != domain.AvailableFor(team) {
		return domain.NewValidationError(domain.ReasonNotAvailable, "hex %d (%s) is not available for %s", hexID, t.State, team)
	}
	if _, dup := g.byChar[charKey{char, team}]; dup {
		return domain.NewValidationError(domain.ReasonDuplicate, "character %d is already on team %s", char, team)
	}
	return nil
}

// Remove снимает персонажа с ячейки. Навык персонажа деактивируется
// первым шагом, так что компаньоны уходят с сетки до владельца.
func (g *Grid) Remove(hexID int) error {
	t, ok := g.tiles[hexID]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", hexID)
	}
	if !t.Occupied() {
		return domain.NewValidationError(domain.ReasonNotOccupied, "hex %d is empty", hexID)
	}
	if t.Character.IsCompanion() {
		return domain.NewValidationError(domain.ReasonCompanion, "companion %d is removed with its owner", t.Character)
	}

	char, team := t.Character, t.Team
	var resume func() error

	tx := NewTransaction("remove").
		Add(Step{
			Name: "deactivate-skill",
			Forward: func() error {
				resume, _ = g.skills.Suspend(char, team)
				return nil
			},
			Rollback: func() {
				if resume != nil {
					if err := resume(); err != nil {
						g.log.WithError(err).Error("Failed to restore skill activation during rollback.")
					}
				}
			},
		}).
		Add(Step{
			Name: "clear-tile",
			Forward: func() error {
				g.ClearOccupant(hexID)
				return nil
			},
			Rollback: func() {
				if err := g.SetOccupant(hexID, char, team); err != nil {
					g.log.WithError(err).Error("Failed to restore occupant during rollback.")
				}
			},
		})

	return g.commit(tx)
}

// Move переносит персонажа на свободную ячейку расстановки. Перенос на
// ячейку противоположной стороны меняет команду: навык деактивируется
// под старой командой и активируется под новой в рамках той же
// транзакции; провал реактивации откатывает всё, включая исходную
// активацию и позиции компаньонов.
func (g *Grid) Move(fromHexID, toHexID int, char domain.CharacterID) error {
	from, ok := g.tiles[fromHexID]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", fromHexID)
	}
	to, ok := g.tiles[toHexID]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", toHexID)
	}
	if !from.Occupied() {
		return domain.NewValidationError(domain.ReasonNotOccupied, "hex %d is empty", fromHexID)
	}
	if from.Character != char {
		return domain.NewValidationError(domain.ReasonWrongCharacter, "hex %d holds %d, not %d", fromHexID, from.Character, char)
	}
	if to.Occupied() {
		return domain.NewValidationError(domain.ReasonOccupied, "hex %d is occupied by %d", toHexID, to.Character)
	}

	oldTeam := from.Team
	var newTeam domain.Team
	switch to.State {
	case domain.StateAvailableAlly:
		newTeam = domain.TeamAlly
	case domain.StateAvailableEnemy:
		newTeam = domain.TeamEnemy
	default:
		return domain.NewValidationError(domain.ReasonNotAvailable, "hex %d (%s) is not available", toHexID, to.State)
	}

	if newTeam == oldTeam {
		return g.moveSameTeam(fromHexID, toHexID, char, oldTeam)
	}

	// Смена команды отклоняется до старта транзакции для компаньонов
	// и для дубликатов на целевой команде.
	if char.IsCompanion() {
		return domain.NewValidationError(domain.ReasonCompanionTeam, "companion %d cannot change teams", char)
	}
	if _, dup := g.byChar[charKey{char, newTeam}]; dup {
		return domain.NewValidationError(domain.ReasonDuplicate, "character %d is already on team %s", char, newTeam)
	}
	return g.moveCrossTeam(fromHexID, toHexID, char, oldTeam, newTeam)
}

func (g *Grid) moveSameTeam(fromHexID, toHexID int, char domain.CharacterID, team domain.Team) error {
	tx := NewTransaction("move").
		Add(Step{
			Name: "vacate",
			Forward: func() error {
				g.ClearOccupant(fromHexID)
				return nil
			},
			Rollback: func() {
				if err := g.SetOccupant(fromHexID, char, team); err != nil {
					g.log.WithError(err).Error("Failed to restore occupant during rollback.")
				}
			},
		}).
		Add(Step{
			Name:    "occupy",
			Forward: func() error { return g.SetOccupant(toHexID, char, team) },
			Rollback: func() {
				g.ClearOccupant(toHexID)
			},
		}).
		Add(Step{
			Name: "relocate-skill",
			Forward: func() error {
				g.skills.Relocate(char, team, toHexID)
				return nil
			},
			Rollback: func() {
				g.skills.Relocate(char, team, fromHexID)
			},
		})

	return g.commit(tx)
}

func (g *Grid) moveCrossTeam(fromHexID, toHexID int, char domain.CharacterID, oldTeam, newTeam domain.Team) error {
	var resume func() error

	tx := NewTransaction("move-cross-team").
		Add(Step{
			Name: "suspend-old-skill",
			Forward: func() error {
				resume, _ = g.skills.Suspend(char, oldTeam)
				return nil
			},
			Rollback: func() {
				if resume != nil {
					if err := resume(); err != nil {
						g.log.WithError(err).Error("Failed to restore skill activation during rollback.")
					}
				}
			},
		}).
		Add(Step{
			Name: "vacate",
			Forward: func() error {
				g.ClearOccupant(fromHexID)
				return nil
			},
			Rollback: func() {
				if err := g.SetOccupant(fromHexID, char, oldTeam); err != nil {
					g.log.WithError(err).Error("Failed to restore occupant during rollback.")
				}
			},
		}).
		Add(Step{
			Name:    "occupy-new",
			Forward: func() error { return g.SetOccupant(toHexID, char, newTeam) },
			Rollback: func() {
				g.ClearOccupant(toHexID)
			},
		}).
		Add(Step{
			Name:    "activate-new-skill",
			Forward: func() error { return g.skills.Activate(char, toHexID, newTeam) },
			Rollback: func() {
				g.skills.Deactivate(char, newTeam)
			},
		})

	return g.commit(tx)
}

// Swap меняет местами двух персонажей. Если ячейки принадлежат разным
// сторонам, оба персонажа меняют команду со всеми вытекающими
// деактивациями и реактивациями.
func (g *Grid) Swap(hexA, hexB int) error {
	a, ok := g.tiles[hexA]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", hexA)
	}
	b, ok := g.tiles[hexB]
	if !ok {
		return domain.NewValidationError(domain.ReasonUnknownHex, "hex %d is not on the arena", hexB)
	}
	if hexA == hexB {
		return domain.NewValidationError(domain.ReasonOccupied, "cannot swap hex %d with itself", hexA)
	}
	if !a.Occupied() || !b.Occupied() {
		return domain.NewValidationError(domain.ReasonNotOccupied, "swap requires both tiles occupied")
	}

	charA, teamA := a.Character, a.Team
	charB, teamB := b.Character, b.Team
	crossTeam := teamA != teamB

	if crossTeam {
		if charA.IsCompanion() || charB.IsCompanion() {
			return domain.NewValidationError(domain.ReasonCompanionTeam, "companions cannot change teams")
		}
		if _, dup := g.byChar[charKey{charA, teamB}]; dup {
			return domain.NewValidationError(domain.ReasonDuplicate, "character %d is already on team %s", charA, teamB)
		}
		if _, dup := g.byChar[charKey{charB, teamA}]; dup {
			return domain.NewValidationError(domain.ReasonDuplicate, "character %d is already on team %s", charB, teamA)
		}
	}

	tx := NewTransaction("swap")
	var resumeA, resumeB func() error

	if crossTeam {
		tx.Add(Step{
			Name: "suspend-a",
			Forward: func() error {
				resumeA, _ = g.skills.Suspend(charA, teamA)
				return nil
			},
			Rollback: func() {
				if resumeA != nil {
					if err := resumeA(); err != nil {
						g.log.WithError(err).Error("Failed to restore skill activation during rollback.")
					}
				}
			},
		})
		tx.Add(Step{
			Name: "suspend-b",
			Forward: func() error {
				resumeB, _ = g.skills.Suspend(charB, teamB)
				return nil
			},
			Rollback: func() {
				if resumeB != nil {
					if err := resumeB(); err != nil {
						g.log.WithError(err).Error("Failed to restore skill activation during rollback.")
					}
				}
			},
		})
	}

	tx.Add(Step{
		Name: "vacate-both",
		Forward: func() error {
			g.ClearOccupant(hexA)
			g.ClearOccupant(hexB)
			return nil
		},
		Rollback: func() {
			if err := g.SetOccupant(hexA, charA, teamA); err != nil {
				g.log.WithError(err).Error("Failed to restore occupant during rollback.")
			}
			if err := g.SetOccupant(hexB, charB, teamB); err != nil {
				g.log.WithError(err).Error("Failed to restore occupant during rollback.")
			}
		},
	})

	// Персонаж наследует сторону ячейки, на которую встает.
	newTeamA, newTeamB := teamB, teamA
	tx.Add(Step{
		Name:    "occupy-swapped",
		Forward: func() error { return g.occupyPair(hexB, charA, newTeamA, hexA, charB, newTeamB) },
		Rollback: func() {
			g.ClearOccupant(hexA)
			g.ClearOccupant(hexB)
		},
	})

	if crossTeam {
		tx.Add(Step{
			Name:    "activate-a",
			Forward: func() error { return g.skills.Activate(charA, hexB, newTeamA) },
			Rollback: func() {
				g.skills.Deactivate(charA, newTeamA)
			},
		})
		tx.Add(Step{
			Name:    "activate-b",
			Forward: func() error { return g.skills.Activate(charB, hexA, newTeamB) },
			Rollback: func() {
				g.skills.Deactivate(charB, newTeamB)
			},
		})
	} else {
		tx.Add(Step{
			Name: "relocate-skills",
			Forward: func() error {
				g.skills.Relocate(charA, teamA, hexB)
				g.skills.Relocate(charB, teamB, hexA)
				return nil
			},
			Rollback: func() {
				g.skills.Relocate(charA, teamA, hexA)
				g.skills.Relocate(charB, teamB, hexB)
			},
		})
	}

	return g.commit(tx)
}

// occupyPair ставит двух персонажей атомарно относительно шага:
// при ошибке второй постановки первая снимается тут же.
func (g *Grid) occupyPair(hex1 int, char1 domain.CharacterID, team1 domain.Team,
	hex2 int, char2 domain.CharacterID, team2 domain.Team) error {
	if err := g.SetOccupant(hex1, char1, team1); err != nil {
		return err
	}
	if err := g.SetOccupant(hex2, char2, team2); err != nil {
		g.ClearOccupant(hex1)
		return err
	}
	return nil
}

// Clear снимает всех персонажей с сетки (компаньоны уходят каскадом
// вместе с владельцами). Возвращает первую ошибку.
func (g *Grid) Clear() error {
	var hexes []int
	for id, t := range g.tiles {
		if t.Occupied() && !t.Character.IsCompanion() {
			hexes = append(hexes, id)
		}
	}
	sort.Ints(hexes)

	for _, id := range hexes {
		// Ячейка могла опустеть каскадом, перепроверяем.
		if t := g.tiles[id]; !t.Occupied() {
			continue
		}
		if err := g.Remove(id); err != nil {
			return err
		}
	}
	return nil
}

// ExportStates выдает список (hexId, state) всех ячеек — половину
// контракта сериализации. Формат упаковки — забота внешнего слоя.
func (g *Grid) ExportStates() []domain.StateRecord {
	out := make([]domain.StateRecord, 0, len(g.tiles))
	for _, id := range g.arena.IDs() {
		out = append(out, domain.StateRecord{HexID: id, State: g.tiles[id].State})
	}
	return out
}

// ExportUnits выдает список (hexId, characterId, team) занятых ячеек,
// включая компаньонов (слою отрисовки они нужны).
func (g *Grid) ExportUnits() []domain.UnitRecord {
	var out []domain.UnitRecord
	for _, id := range g.arena.IDs() {
		t := g.tiles[id]
		if t.Occupied() {
			out = append(out, domain.UnitRecord{HexID: id, Character: t.Character, Team: t.Team})
		}
	}
	return out
}

// Rehydrate восстанавливает сетку из списков контракта сериализации.
// Записи компаньонов пропускаются: их пересоздает активация навыка
// владельца. Занятые состояния временно понижаются до доступных,
// чтобы расстановка юнитов прошла обычной валидацией.
func (g *Grid) Rehydrate(states []domain.StateRecord, units []domain.UnitRecord) error {
	if err := g.Clear(); err != nil {
		return err
	}

	for _, s := range states {
		state := s.State
		switch state {
		case domain.StateOccupiedAlly:
			state = domain.StateAvailableAlly
		case domain.StateOccupiedEnemy:
			state = domain.StateAvailableEnemy
		}
		if err := g.SetState(s.HexID, state); err != nil {
			return err
		}
	}

	for _, u := range units {
		if u.Character.IsCompanion() {
			continue
		}
		if err := g.Place(u.HexID, u.Character, u.Team); err != nil {
			return err
		}
	}
	return nil
}
