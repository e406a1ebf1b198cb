package dal

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
)

// EmbeddedSource serves the pool compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadChampions(context.Context) ([]champion.Champion, error) {
	return champion.ParseYAML(bytes.NewReader(champion.DefaultPool()))
}

type FileSource struct {
	Path string
}

func (s FileSource) LoadChampions(context.Context) ([]champion.Champion, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	champs, err := champion.ParseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return champs, nil
}
