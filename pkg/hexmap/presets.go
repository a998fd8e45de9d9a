package hexmap

import "fmt"

// Имена встроенных пресетов арен.
const (
	PresetArena    = "arena"    // боевая арена: правильный шестиугольник радиуса 4, 61 ячейка
	PresetSkirmish = "skirmish" // малая арена для быстрых проверок, радиус 2, 19 ячеек
)

// hexagonRows строит ряды правильного шестиугольника заданного радиуса.
// Ряды индексируются координатой r сверху вниз, центральный ряд — самый
// длинный. Зеркальные ряды получаются равной длины по построению.
func hexagonRows(radius int) []RowSpec {
	rows := make([]RowSpec, 0, 2*radius+1)
	for r := -radius; r <= radius; r++ {
		qmin := -radius
		if -r-radius > qmin {
			qmin = -r - radius
		}
		qmax := radius
		if -r+radius < qmax {
			qmax = -r + radius
		}
		rows = append(rows, RowSpec{Q: qmin, R: r, Len: qmax - qmin + 1})
	}
	return rows
}

// builtinPresets — таблица встроенных арен. Внешний слой может передать
// собственный Preset, минуя таблицу: движку важна только структура рядов.
var builtinPresets = map[string]Preset{
	PresetArena: {
		Name:      PresetArena,
		Rows:      hexagonRows(4),
		EnemyRows: 4,
		AllyRows:  4,
	},
	PresetSkirmish: {
		Name:      PresetSkirmish,
		Rows:      hexagonRows(2),
		EnemyRows: 2,
		AllyRows:  2,
	},
}

// LookupPreset возвращает встроенный пресет по имени.
func LookupPreset(name string) (Preset, error) {
	p, ok := builtinPresets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown arena preset %q", name)
	}
	return p, nil
}

// PresetNames возвращает имена встроенных пресетов (для CLI и /version).
func PresetNames() []string {
	return []string{PresetArena, PresetSkirmish}
}
