package targeting

import (
	"github.com/tmdict/stargazer-sub002/internal/domain"
)

// ScanDirection — направление разрешения ничьих внутри ряда.
type ScanDirection int

const (
	ScanLeft ScanDirection = iota
	ScanRight
)

// RowIntent — предпочтение ряда при пустом собственном ряде:
// искать в первую очередь занятые ячейки заднего или переднего ряда.
type RowIntent int

const (
	PreferRear RowIntent = iota
	PreferFront
)

// RowScanResult — результат сканирования ряда.
type RowScanResult struct {
	Found     bool
	HexID     int
	Character domain.CharacterID
}

// RowScan ищет ближайшего персонажа команды target в собственном ряду
// ячейки fromHexID. Ничья по расстоянию внутри ряда разрешается
// направлением dir; для искателя вражеской команды направление
// инвертируется (всё тот же инвариант поворота на 180°).
//
// Если ряд пуст, поиск переходит к расширяющимся кольцам без
// собственного ряда; внутри кольца предпочтение отдается occupant'у
// самого заднего (или переднего, по intent) ряда, дальше решает
// порядок обхода кольца.
func RowScan(b Board, fromHexID int, seeker, target domain.Team, dir ScanDirection, intent RowIntent) RowScanResult {
	arena := b.Arena()
	ownRow, ok := arena.RowOf(fromHexID)
	if !ok {
		return RowScanResult{}
	}
	ownPos, _ := arena.PosInRow(fromHexID)

	// Инверсия направления для вражеского искателя.
	effDir := dir
	if seeker == domain.TeamEnemy {
		if effDir == ScanLeft {
			effDir = ScanRight
		} else {
			effDir = ScanLeft
		}
	}

	// 1. Собственный ряд: ближайший по позиции, ничья — по направлению.
	best := RowScanResult{}
	bestDist := 0
	for pos, id := range arena.Row(ownRow) {
		if id == fromHexID {
			continue
		}
		char, team, occupied := b.OccupantAt(id)
		if !occupied || team != target {
			continue
		}
		dist := pos - ownPos
		if dist < 0 {
			dist = -dist
		}
		if !best.Found || dist < bestDist {
			best = RowScanResult{Found: true, HexID: id, Character: char}
			bestDist = dist
			continue
		}
		if dist == bestDist {
			// Равные дистанции: левая позиция меньше правой.
			takeRight := id > best.HexID
			if (effDir == ScanRight && takeRight) || (effDir == ScanLeft && !takeRight) {
				best = RowScanResult{Found: true, HexID: id, Character: char}
			}
		}
	}
	if best.Found {
		return best
	}

	// 2. Ряд пуст: расширяющиеся кольца без собственного ряда.
	return rowFallback(b, fromHexID, ownRow, seeker, target, intent)
}

// rowFallback перебирает кольца, исключая собственный ряд искателя.
// Внутри кольца кандидаты ранжируются по ряду (задний или передний —
// по intent), затем по порядку обхода.
func rowFallback(b Board, fromHexID, ownRow int, seeker, target domain.Team, intent RowIntent) RowScanResult {
	arena := b.Arena()
	center, _ := arena.HexOf(fromHexID)

	// "Задний" ряд зависит от стороны: для союзной команды тыл — низ
	// арены (большие индексы рядов), для вражеской — верх.
	rearward := func(row int) int {
		if seeker == domain.TeamEnemy {
			return -row
		}
		return row
	}

	for radius := 1; radius <= arena.MaxRadius(); radius++ {
		best := RowScanResult{}
		bestRank := 0
		for _, h := range RingWalk(seeker, center, radius) {
			id, onArena := arena.IDOf(h)
			if !onArena {
				continue
			}
			row, _ := arena.RowOf(id)
			if row == ownRow {
				continue
			}
			char, team, occupied := b.OccupantAt(id)
			if !occupied || team != target {
				continue
			}
			rank := rearward(row)
			if intent == PreferFront {
				rank = -rank
			}
			if !best.Found || rank > bestRank {
				best = RowScanResult{Found: true, HexID: id, Character: char}
				bestRank = rank
			}
		}
		if best.Found {
			return best
		}
	}
	return RowScanResult{}
}
