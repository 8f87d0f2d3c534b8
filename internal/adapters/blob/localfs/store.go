// Package localfs guarda uploads en un directorio que además se sirve como estático.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bordoodles-api/internal/ports/blob"
)

type Store struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

var _ blob.Store = (*Store)(nil)

// New crea el directorio si no existe. urlPrefix es la ruta pública bajo la que se sirve dir ("/" por defecto).
func New(dir, urlPrefix string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localfs: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfs: create dir: %w", err)
	}

	urlPrefix = "/" + strings.Trim(strings.TrimSpace(urlPrefix), "/")
	if urlPrefix != "/" {
		urlPrefix += "/"
	}

	return &Store{
		dir:       dir,
		urlPrefix: urlPrefix,
		now:       time.Now,
	}, nil
}

func (s *Store) Put(ctx context.Context, obj blob.Object) (string, error) {
	if obj.Body == nil {
		return "", errors.New("localfs: empty body")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := blob.ObjectName(obj.Field, obj.Filename, s.now())
	path := filepath.Join(s.dir, name)

	// O_EXCL: nunca pisamos un archivo existente.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("localfs: create %s: %w", name, err)
	}
	if _, err := io.Copy(f, obj.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("localfs: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("localfs: close %s: %w", name, err)
	}

	return s.urlPrefix + name, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Handler sirve los archivos guardados (sin listado de directorio).
func (s *Store) Handler() http.Handler {
	return http.FileServer(noListingFS{http.Dir(s.dir)})
}

type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
