// Package storage сохраняет и восстанавливает расстановки в компактном
// бинарном формате. Файл самодостаточен: заголовок с магией и версией,
// имя арены, список состояний ячеек и список юнитов.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmdict/stargazer-sub002/internal/domain"
)

const (
	// MagicHeader — первые 4 байта каждого файла расстановки.
	MagicHeader string = `SGZS`
	// Version1 — текущая версия формата.
	Version1 uint32 = 1

	fileExt = ".sgzs"
)

// Setup — содержимое одного файла расстановки.
type Setup struct {
	SavedAt int64 // Unix-время записи
	Arena   string
	States  []domain.StateRecord
	Units   []domain.UnitRecord
}

// Store пишет и читает файлы расстановок внутри одного каталога.
// Имена файлов задаются клиентом, поэтому валидируются: никакие
// разделители путей наружу каталога не выпускаются.
type Store struct {
	Dir string
}

// NewStore создает каталог при необходимости.
func NewStore(dir string) *Store {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &Store{Dir: dir}
}

func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid setup name %q", name)
	}
	return filepath.Join(s.Dir, name+fileExt), nil
}

// Save записывает расстановку в файл <dir>/<name>.sgzs.
func (s *Store) Save(name string, setup *Setup) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, setup)
}

// Load читает расстановку из файла <dir>/<name>.sgzs.
func (s *Store) Load(name string) (*Setup, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

// List возвращает имена сохраненных расстановок.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), fileExt))
	}
	return out, nil
}
