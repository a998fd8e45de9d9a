package hexmap

// Rotation — направление обхода кольца.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// cwCorners — углы кольца в порядке обхода по часовой стрелке
// (экранная ось Y направлена вниз, как в слое отрисовки).
var cwCorners = [6]Direction{DirNE, DirE, DirSE, DirSW, DirW, DirNW}

// cornerIndex возвращает позицию угла в cwCorners.
func cornerIndex(corner Direction) int {
	for i, c := range cwCorners {
		if c == corner {
			return i
		}
	}
	return 0
}

// Ring возвращает все ячейки на расстоянии ровно radius от center.
//
// Обход начинается в углу center + corner*radius и идет в указанном
// направлении вращения. Порядок результата полностью детерминирован:
// именно на нем держится спиральный поиск целей, поэтому алгоритм
// не должен зависеть ни от чего, кроме аргументов.
//
// Для radius <= 0 возвращается срез из одной ячейки center: вызывающему
// коду так удобнее обрабатывать вырожденный случай.
func Ring(center Hex, radius int, corner Direction, rot Rotation) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}

	out := make([]Hex, 0, 6*radius)
	k := cornerIndex(corner)
	h := center.Add(corner.Vector().Scale(radius))

	for side := 0; side < 6; side++ {
		// Направление движения вдоль стороны: угол через два шага
		// в порядке обхода. Для CCW порядок углов зеркален.
		var travel Direction
		if rot == Clockwise {
			travel = cwCorners[(k+side+2)%6]
		} else {
			travel = cwCorners[((k-side-2)%6+6)%6]
		}
		for step := 0; step < radius; step++ {
			out = append(out, h)
			h = h.Neighbor(travel)
		}
	}
	return out
}

// ReflectRing возвращает тот же обход, повернутый на 180° вокруг center.
// Поворот сохраняет порядок следования, поэтому i-й элемент результата —
// всегда зеркальный образ i-го элемента исходного обхода.
func ReflectRing(center Hex, walk []Hex) []Hex {
	out := make([]Hex, len(walk))
	for i, h := range walk {
		out[i] = h.ReflectThrough(center)
	}
	return out
}
