// Package seed carga el catálogo inicial (parents.json / puppies.json) a través de los gateways.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/parents"
	"bordoodles-api/internal/domain/puppies"
	"bordoodles-api/internal/platform/logger"
)

const (
	ParentsFile = "parents.json"
	PuppiesFile = "puppies.json"
)

type Result struct {
	Parents int
	Puppies int
}

type Loader struct {
	parents parents.Repository
	puppies puppies.Repository
	log     logger.Logger
}

func NewLoader(p parents.Repository, pp puppies.Repository, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNop()
	}
	return &Loader{parents: p, puppies: pp, log: log}
}

// LoadDir lee los dos archivos de dir. Un archivo ausente se saltea con warning.
func (l *Loader) LoadDir(ctx context.Context, dir string) (Result, error) {
	var res Result

	n, err := l.loadFile(ctx, filepath.Join(dir, ParentsFile), l.LoadParents)
	if err != nil {
		return res, err
	}
	res.Parents = n

	n, err = l.loadFile(ctx, filepath.Join(dir, PuppiesFile), l.LoadPuppies)
	if err != nil {
		return res, err
	}
	res.Puppies = n

	return res, nil
}

func (l *Loader) loadFile(ctx context.Context, path string, load func(context.Context, io.Reader) (int, error)) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Warn("seed file not found, skipping", map[string]any{"path": path})
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := load(ctx, f)
	if err != nil {
		return n, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	l.log.Info("seeded", map[string]any{"path": path, "count": n})
	return n, nil
}

// LoadParents inserta cada registro del array. Campos desconocidos se ignoran.
func (l *Loader) LoadParents(ctx context.Context, r io.Reader) (int, error) {
	records, err := readRecords(r)
	if err != nil {
		return 0, err
	}
	for i, f := range records {
		patch, err := parents.PatchFromFields(f)
		if err != nil {
			return i, fmt.Errorf("parents[%d]: %w", i, err)
		}
		rec, err := parents.NewParent(patch)
		if err != nil {
			return i, fmt.Errorf("parents[%d]: %w", i, err)
		}
		if _, err := l.parents.Insert(ctx, rec); err != nil {
			return i, fmt.Errorf("parents[%d]: %w", i, err)
		}
	}
	return len(records), nil
}

// LoadPuppies acepta además el formato viejo con un único "image".
func (l *Loader) LoadPuppies(ctx context.Context, r io.Reader) (int, error) {
	records, err := readRecords(r)
	if err != nil {
		return 0, err
	}
	for i, f := range records {
		if err := legacyImage(f); err != nil {
			return i, fmt.Errorf("puppies[%d]: %w", i, err)
		}
		patch, err := puppies.PatchFromFields(f)
		if err != nil {
			return i, fmt.Errorf("puppies[%d]: %w", i, err)
		}
		rec, err := puppies.NewPuppy(patch)
		if err != nil {
			return i, fmt.Errorf("puppies[%d]: %w", i, err)
		}
		if _, err := l.puppies.Insert(ctx, rec); err != nil {
			return i, fmt.Errorf("puppies[%d]: %w", i, err)
		}
	}
	return len(records), nil
}

func readRecords(r io.Reader) ([]catalog.Fields, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, catalog.Invalid("", "invalid json: expected an array of objects")
	}
	out := make([]catalog.Fields, 0, len(raw))
	for i, item := range raw {
		f, err := catalog.ParseFields(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// legacyImage convierte image -> images cuando images no vino.
func legacyImage(f catalog.Fields) error {
	if _, ok := f["images"]; ok {
		return nil
	}
	img, err := f.String("image")
	if err != nil || img == nil {
		return err
	}
	list := []string{}
	if strings.TrimSpace(*img) != "" {
		list = append(list, *img)
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	f["images"] = b
	return nil
}
