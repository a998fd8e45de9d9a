package hexmap

import "fmt"

// Hex — кубические координаты ячейки (q + r + s == 0).
//
// Hex является value-type: дешёвое копирование, сравнение через ==,
// пригоден как ключ map. Конструируется только через New, чтобы
// инвариант суммы координат держался всегда.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// New создает Hex по аксиальным координатам (q, r).
// Третья координата s выводится из инварианта q + r + s == 0.
func New(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// String реализует интерфейс Stringer (для fmt.Printf и логов).
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S)
}

// Add возвращает покомпонентную сумму координат.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R, S: h.S + o.S}
}

// Sub возвращает покомпонентную разность координат.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R, S: h.S - o.S}
}

// Scale умножает вектор на целый коэффициент.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k, S: h.S * k}
}

// ReflectThrough возвращает точечное отражение h относительно center
// (поворот на 180°). Базовая операция зеркального инварианта:
// обход кольца вражеской командой — это отражённый обход союзной.
func (h Hex) ReflectThrough(center Hex) Hex {
	return center.Add(center.Sub(h))
}

// Distance возвращает гексагональное расстояние между ячейками:
// max(|Δq|, |Δr|, |Δs|).
func Distance(a, b Hex) int {
	d := a.Sub(b)
	dq, dr, ds := abs(d.Q), abs(d.R), abs(d.S)
	m := dq
	if dr > m {
		m = dr
	}
	if ds > m {
		m = ds
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction — индекс одного из шести направлений.
// Канонический порядок фиксирован: от него зависит детерминизм
// спирального поиска, менять нельзя.
type Direction int

const (
	DirE Direction = iota
	DirNE
	DirNW
	DirW
	DirSW
	DirSE
)

// directions — единичные векторы направлений в каноническом порядке.
var directions = [6]Hex{
	{Q: 1, R: 0, S: -1},  // E
	{Q: 1, R: -1, S: 0},  // NE
	{Q: 0, R: -1, S: 1},  // NW
	{Q: -1, R: 0, S: 1},  // W
	{Q: -1, R: 1, S: 0},  // SW
	{Q: 0, R: 1, S: -1},  // SE
}

var directionNames = [6]string{"E", "NE", "NW", "W", "SW", "SE"}

// String возвращает имя направления для логов и инструментов.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

// Vector возвращает единичный вектор направления.
func (d Direction) Vector() Hex {
	return directions[d]
}

// Neighbor возвращает соседнюю ячейку в направлении d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(directions[d])
}

// Neighbors возвращает всех шестерых соседей в каноническом порядке.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, v := range directions {
		out[i] = h.Add(v)
	}
	return out
}
