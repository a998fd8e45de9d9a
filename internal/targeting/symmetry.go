package targeting

import (
	"fmt"

	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

// Symmetry — предвычисленная зеркальная карта арены относительно
// центрального ряда.
//
// Ряд r отражается в ряд 2C - r (C — индекс центрального ряда),
// позиция внутри ряда сохраняется: первая ячейка ряда переходит в
// первую ячейку зеркального ряда. Центральный ряд отражается сам в
// себя, ячейка в ячейку. Отсюда автоматически: карта — инволюция.
type Symmetry struct {
	mirror map[int]int
}

// NewSymmetry строит карту по группировке рядов арены.
// Валидация арены уже гарантирует равные длины зеркальных рядов,
// но таблица проверяется еще раз: сломанная карта симметрии молча
// портила бы результаты зеркальных навыков.
func NewSymmetry(a *hexmap.Arena) (*Symmetry, error) {
	n := a.RowCount()
	c := a.CenterRow()
	mirror := make(map[int]int, a.Size())

	for r := 0; r < n; r++ {
		row := a.Row(r)
		mrow := a.Row(2*c - r)
		if len(row) != len(mrow) {
			return nil, fmt.Errorf("symmetry: rows %d and %d differ in length", r, 2*c-r)
		}
		for p, id := range row {
			mirror[id] = mrow[p]
		}
	}

	return &Symmetry{mirror: mirror}, nil
}

// MirrorOf возвращает зеркальную ячейку. Неизвестный идентификатор —
// промах, не ошибка.
func (s *Symmetry) MirrorOf(id int) (int, bool) {
	m, ok := s.mirror[id]
	return m, ok
}
