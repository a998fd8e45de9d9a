package targeting

import (
	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// RingWalk возвращает обход кольца для команды искателя.
//
// Союзный обход начинается у правого верхнего угла кольца и идет по
// часовой стрелке. Вражеский обход — тот же самый, повернутый на 180°
// вокруг центра: начинается у левого нижнего угла и идет в обратную
// сторону. Поворот гарантирует зеркальный инвариант: поиски двух
// команд над зеркально отраженными расстановками дают зеркальные цели.
func RingWalk(seeker domain.Team, center hexmap.Hex, radius int) []hexmap.Hex {
	walk := hexmap.Ring(center, radius, hexmap.DirNE, hexmap.Clockwise)
	if seeker == domain.TeamEnemy {
		return hexmap.ReflectRing(center, walk)
	}
	return walk
}

// SpiralResult — результат спирального поиска.
type SpiralResult struct {
	Found     bool
	HexID     int
	Character domain.CharacterID

	// Trace — осмотренные ячейки в порядке осмотра (для отладки
	// и индикации в слое отрисовки).
	Trace []int
}

// Filter отсекает ячейки из рассмотрения (например, собственный ряд
// искателя). nil — без фильтра.
type Filter func(hexID int) bool

// SpiralSearch обходит кольца радиуса 1, 2, 3, ... вокруг ячейки
// fromHexID и возвращает первую по порядку обхода ячейку, занятую
// командой target. Порядок обхода каждого кольца зависит от команды
// искателя (см. RingWalk).
//
// Отсутствие цели в пределах арены — не ошибка: Found == false.
func SpiralSearch(b Board, fromHexID int, seeker, target domain.Team, filter Filter) SpiralResult {
	arena := b.Arena()
	center, ok := arena.HexOf(fromHexID)
	if !ok {
		return SpiralResult{}
	}

	res := SpiralResult{}
	for radius := 1; radius <= arena.MaxRadius(); radius++ {
		for _, h := range RingWalk(seeker, center, radius) {
			id, onArena := arena.IDOf(h)
			if !onArena {
				// Выход за границу арены — просто промах таблицы.
				continue
			}
			if filter != nil && !filter(id) {
				continue
			}
			res.Trace = append(res.Trace, id)
			if char, team, occupied := b.OccupantAt(id); occupied && team == target {
				res.Found = true
				res.HexID = id
				res.Character = char
				return res
			}
		}
	}
	return res
}
