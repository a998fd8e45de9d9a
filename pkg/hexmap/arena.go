package hexmap

import (
	"fmt"
	"sort"
)

// RowSpec описывает один диагональный ряд раскладки: стартовая ячейка
// и длина. Ряд тянется в направлении +q от стартовой ячейки.
type RowSpec struct {
	Q   int
	R   int
	Len int
}

// Preset — статическое описание арены, приходящее от внешнего слоя.
// Идентификаторы ячеек назначаются последовательно, ряд за рядом,
// начиная с 1. Preset — чистые данные: интерпретация зон расстановки
// и заблокированных ячеек лежит на слое сетки.
type Preset struct {
	Name string
	Rows []RowSpec

	// EnemyRows и AllyRows — количество крайних рядов, отведенных под
	// расстановку соответствующей команды (вражеские — первые ряды,
	// союзные — последние).
	EnemyRows int
	AllyRows  int

	// Blocked — идентификаторы ячеек, закрытых для расстановки.
	Blocked []int
}

// Arena — неизменяемые таблицы одной арены: id ↔ координата,
// принадлежность рядам, максимальный радиус поиска.
// Строится один раз при выборе арены и дальше только читается.
type Arena struct {
	name      string
	rows      [][]int
	hexByID   map[int]Hex
	idByHex   map[Hex]int
	rowByID   map[int]int
	posByID   map[int]int
	centerRow int
	maxRadius int
}

// NewArena валидирует пресет и строит таблицы.
//
// Требования к пресету:
//   - нечетное число рядов (нужен единственный центральный ряд);
//   - зеркальные ряды равной длины (иначе карта симметрии не является
//     инволюцией);
//   - координаты ячеек не повторяются.
func NewArena(p Preset) (*Arena, error) {
	n := len(p.Rows)
	if n == 0 {
		return nil, fmt.Errorf("arena %q: no rows", p.Name)
	}
	if n%2 == 0 {
		return nil, fmt.Errorf("arena %q: even row count %d, center row is ambiguous", p.Name, n)
	}
	center := (n - 1) / 2
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if p.Rows[i].Len != p.Rows[j].Len {
			return nil, fmt.Errorf("arena %q: mirror rows %d and %d differ in length (%d != %d)",
				p.Name, i, j, p.Rows[i].Len, p.Rows[j].Len)
		}
	}

	a := &Arena{
		name:      p.Name,
		rows:      make([][]int, n),
		hexByID:   make(map[int]Hex),
		idByHex:   make(map[Hex]int),
		rowByID:   make(map[int]int),
		posByID:   make(map[int]int),
		centerRow: center,
	}

	id := 1
	for ri, row := range p.Rows {
		if row.Len <= 0 {
			return nil, fmt.Errorf("arena %q: row %d has non-positive length", p.Name, ri)
		}
		ids := make([]int, 0, row.Len)
		for pos := 0; pos < row.Len; pos++ {
			h := New(row.Q+pos, row.R)
			if _, dup := a.idByHex[h]; dup {
				return nil, fmt.Errorf("arena %q: duplicate cell %s in row %d", p.Name, h, ri)
			}
			a.hexByID[id] = h
			a.idByHex[h] = id
			a.rowByID[id] = ri
			a.posByID[id] = pos
			ids = append(ids, id)
			id++
		}
		a.rows[ri] = ids
	}

	// Диаметр арены ограничивает глубину спирального поиска:
	// дальше последнего кольца искать нечего.
	for _, ha := range a.hexByID {
		for _, hb := range a.hexByID {
			if d := Distance(ha, hb); d > a.maxRadius {
				a.maxRadius = d
			}
		}
	}

	return a, nil
}

// Name возвращает имя арены из пресета.
func (a *Arena) Name() string { return a.name }

// Size возвращает общее количество ячеек.
func (a *Arena) Size() int { return len(a.hexByID) }

// RowCount возвращает количество диагональных рядов.
func (a *Arena) RowCount() int { return len(a.rows) }

// CenterRow возвращает индекс центрального ряда.
func (a *Arena) CenterRow() int { return a.centerRow }

// MaxRadius возвращает диаметр арены — верхнюю границу радиуса
// спирального поиска.
func (a *Arena) MaxRadius() int { return a.maxRadius }

// HexOf возвращает координаты ячейки по идентификатору.
// Неизвестный id — не ошибка, просто промах (ok == false).
func (a *Arena) HexOf(id int) (Hex, bool) {
	h, ok := a.hexByID[id]
	return h, ok
}

// IDOf возвращает идентификатор ячейки по координатам.
// Координаты вне арены дают промах (ok == false).
func (a *Arena) IDOf(h Hex) (int, bool) {
	id, ok := a.idByHex[h]
	return id, ok
}

// Contains сообщает, принадлежит ли идентификатор арене.
func (a *Arena) Contains(id int) bool {
	_, ok := a.hexByID[id]
	return ok
}

// RowOf возвращает индекс ряда, которому принадлежит ячейка.
func (a *Arena) RowOf(id int) (int, bool) {
	r, ok := a.rowByID[id]
	return r, ok
}

// PosInRow возвращает позицию ячейки внутри своего ряда (слева направо).
func (a *Arena) PosInRow(id int) (int, bool) {
	p, ok := a.posByID[id]
	return p, ok
}

// Row возвращает идентификаторы ячеек ряда в порядке позиций.
// Возвращаемый срез нельзя изменять.
func (a *Arena) Row(index int) []int {
	if index < 0 || index >= len(a.rows) {
		return nil
	}
	return a.rows[index]
}

// IDs возвращает все идентификаторы ячеек по возрастанию.
func (a *Arena) IDs() []int {
	out := make([]int, 0, len(a.hexByID))
	for id := range a.hexByID {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
