package storage

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tmdict/stargazer-sub002/internal/domain"
)

// setupFileHeader — точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком: тут нет слайсов и строк,
// только массивы и числа.
type setupFileHeader struct {
	Magic      [4]byte
	Version    uint32
	SavedAt    int64
	ArenaLen   uint16
	StateCount uint16
	UnitCount  uint16
}

// stateEntry — бинарная запись (hexId, state).
type stateEntry struct {
	HexID int32
	State uint8
}

// unitEntry — бинарная запись (hexId, characterId, team).
type unitEntry struct {
	HexID     int32
	Character int32
	Team      uint8
}

func writeBinary(w io.Writer, s *Setup) error {
	header := setupFileHeader{
		Version:    Version1,
		SavedAt:    s.SavedAt,
		ArenaLen:   uint16(len(s.Arena)),
		StateCount: uint16(len(s.States)),
		UnitCount:  uint16(len(s.Units)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write([]byte(s.Arena)); err != nil {
		return fmt.Errorf("failed to write arena name: %w", err)
	}

	for _, rec := range s.States {
		e := stateEntry{HexID: int32(rec.HexID), State: uint8(rec.State)}
		if err := binary.Write(w, binary.LittleEndian, &e); err != nil {
			return fmt.Errorf("failed to write state record: %w", err)
		}
	}
	for _, rec := range s.Units {
		e := unitEntry{HexID: int32(rec.HexID), Character: int32(rec.Character), Team: uint8(rec.Team)}
		if err := binary.Write(w, binary.LittleEndian, &e); err != nil {
			return fmt.Errorf("failed to write unit record: %w", err)
		}
	}
	return nil
}

func readBinary(r io.Reader) (*Setup, error) {
	var header setupFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	arenaBuf := make([]byte, header.ArenaLen)
	if _, err := io.ReadFull(r, arenaBuf); err != nil {
		return nil, fmt.Errorf("failed to read arena name: %w", err)
	}

	setup := &Setup{
		SavedAt: header.SavedAt,
		Arena:   string(arenaBuf),
		States:  make([]domain.StateRecord, header.StateCount),
		Units:   make([]domain.UnitRecord, header.UnitCount),
	}

	for i := range setup.States {
		var e stateEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("failed to read state record: %w", err)
		}
		setup.States[i] = domain.StateRecord{HexID: int(e.HexID), State: domain.TileState(e.State)}
	}
	for i := range setup.Units {
		var e unitEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("failed to read unit record: %w", err)
		}
		setup.Units[i] = domain.UnitRecord{
			HexID:     int(e.HexID),
			Character: domain.CharacterID(e.Character),
			Team:      domain.Team(e.Team),
		}
	}
	return setup, nil
}
