package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tmdict/stargazer-sub002/internal/domain"
	"github.com/tmdict/stargazer-sub002/internal/targeting"
	"github.com/tmdict/stargazer-sub002/pkg/hexmap"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "rows":
		cmdRows(os.Args[2:])
	case "symmetry":
		cmdSymmetry(os.Args[2:])
	case "ring":
		cmdRing(os.Args[2:])
	default:
		printHelp()
	}
}

func loadArena(name string) *hexmap.Arena {
	preset, err := hexmap.LookupPreset(name)
	if err != nil {
		fmt.Printf("Unknown preset %q (known: %s)\n", name, strings.Join(hexmap.PresetNames(), ", "))
		os.Exit(1)
	}
	arena, err := hexmap.NewArena(preset)
	if err != nil {
		fmt.Printf("Bad preset: %v\n", err)
		os.Exit(1)
	}
	return arena
}

// rows <preset> - печатает ряды арены с идентификаторами ячеек
func cmdRows(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: arenautil rows <preset>")
		return
	}
	arena := loadArena(args[0])
	fmt.Printf("%s: %d cells, %d rows, center row %d\n",
		arena.Name(), arena.Size(), arena.RowCount(), arena.CenterRow())
	for i := 0; i < arena.RowCount(); i++ {
		ids := arena.Row(i)
		cells := make([]string, 0, len(ids))
		for _, id := range ids {
			h, _ := arena.HexOf(id)
			cells = append(cells, fmt.Sprintf("%d%s", id, h))
		}
		fmt.Printf("row %d: %s\n", i, strings.Join(cells, " "))
	}
}

// symmetry <preset> [hexId] - зеркальная пара ячейки или вся карта
func cmdSymmetry(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: arenautil symmetry <preset> [hexId]")
		return
	}
	arena := loadArena(args[0])
	sym, err := targeting.NewSymmetry(arena)
	if err != nil {
		fmt.Printf("No symmetry table: %v\n", err)
		os.Exit(1)
	}

	if len(args) >= 2 {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Invalid hex id: %v\n", err)
			return
		}
		m, ok := sym.MirrorOf(id)
		if !ok {
			fmt.Printf("Hex %d is not on the arena\n", id)
			return
		}
		fmt.Printf("%d <-> %d\n", id, m)
		return
	}

	for _, id := range arena.IDs() {
		if m, ok := sym.MirrorOf(id); ok {
			fmt.Printf("%d <-> %d\n", id, m)
		}
	}
}

// ring <preset> <hexId> <radius> <team> - обход кольца глазами команды
func cmdRing(args []string) {
	if len(args) < 4 {
		fmt.Println("Usage: arenautil ring <preset> <hexId> <radius> <ALLY|ENEMY>")
		return
	}
	arena := loadArena(args[0])
	id, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Invalid hex id: %v\n", err)
		return
	}
	radius, err := strconv.Atoi(args[2])
	if err != nil || radius < 1 {
		fmt.Println("Radius must be a positive integer")
		return
	}
	team, err := domainTeam(args[3])
	if err != nil {
		fmt.Println(err)
		return
	}

	center, ok := arena.HexOf(id)
	if !ok {
		fmt.Printf("Hex %d is not on the arena\n", id)
		return
	}

	walk := targeting.RingWalk(team, center, radius)
	out := make([]string, 0, len(walk))
	for _, h := range walk {
		if hid, onArena := arena.IDOf(h); onArena {
			out = append(out, strconv.Itoa(hid))
		} else {
			out = append(out, "-")
		}
	}
	fmt.Printf("ring %d around %d for %s: %s\n", radius, id, args[3], strings.Join(out, " "))
}

func domainTeam(s string) (domain.Team, error) {
	if t := domain.ParseTeam(s); t != domain.TeamNone {
		return t, nil
	}
	return domain.TeamNone, fmt.Errorf("unknown team %q (want ALLY or ENEMY)", s)
}

func printHelp() {
	fmt.Println(`Arena Utility - осмотр встроенных пресетов арен
Commands:
  rows <preset>                        - ряды арены с идентификаторами и координатами
  symmetry <preset> [hexId]            - зеркальная пара ячейки (или вся карта)
  ring <preset> <hexId> <radius> <team> - порядок обхода кольца глазами команды`)
}
