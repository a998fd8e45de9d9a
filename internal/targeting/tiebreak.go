package targeting

import (
	"sort"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// DistanceMode — критерий выбора кандидата по дистанции.
type DistanceMode int

const (
	Nearest DistanceMode = iota
	Farthest
)

// Candidate — кандидат в цели с посчитанной дистанцией.
type Candidate struct {
	HexID     int
	Character domain.CharacterID
	Distance  int
}

// rankCandidates возвращает кандидатов команды target, отсортированных
// по правилу выбора: дистанция (min или max вперед), ничья — по
// идентификатору ячейки. Возрастание или убывание идентификатора
// зависит от команды искателя: для вражеской стороны порядок
// инвертируется — повторяющийся инвариант поворота на 180°.
func rankCandidates(b Board, fromHexID int, seeker, target domain.Team, mode DistanceMode) []Candidate {
	arena := b.Arena()
	from, ok := arena.HexOf(fromHexID)
	if !ok {
		return nil
	}

	var cands []Candidate
	for _, occ := range b.Occupants(target) {
		if occ.HexID == fromHexID {
			continue
		}
		h, onArena := arena.HexOf(occ.HexID)
		if !onArena {
			continue
		}
		cands = append(cands, Candidate{
			HexID:     occ.HexID,
			Character: occ.Character,
			Distance:  hexmap.Distance(from, h),
		})
	}

	idAscending := seeker != domain.TeamEnemy
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Distance != cands[j].Distance {
			if mode == Farthest {
				return cands[i].Distance > cands[j].Distance
			}
			return cands[i].Distance < cands[j].Distance
		}
		if idAscending {
			return cands[i].HexID < cands[j].HexID
		}
		return cands[i].HexID > cands[j].HexID
	})
	return cands
}

// SelectByDistance выбирает одного кандидата команды target по
// дистанции от fromHexID (ближайшего или дальнего).
func SelectByDistance(b Board, fromHexID int, seeker, target domain.Team, mode DistanceMode) (Candidate, bool) {
	cands := rankCandidates(b, fromHexID, seeker, target, mode)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	return cands[0], true
}

// SelectTopN возвращает первых n кандидатов в том же порядке.
// Каждый из них сохраняется в кэше целей под собственным составным
// ключом (персонаж, слот, команда), так что N одновременных целей
// не затирают друг друга.
func SelectTopN(b Board, fromHexID int, seeker, target domain.Team, mode DistanceMode, n int) []Candidate {
	cands := rankCandidates(b, fromHexID, seeker, target, mode)
	if len(cands) > n {
		cands = cands[:n]
	}
	return cands
}
