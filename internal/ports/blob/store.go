package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object es un archivo subido pendiente de persistir.
type Object struct {
	Field       string // nombre del campo multipart, ej. "image"
	Filename    string // nombre original (sólo se usa su extensión)
	ContentType string
	Body        io.Reader
}

// Store persiste un binario y devuelve una referencia resoluble desde la web.
// La referencia no queda ligada a ningún registro: el cliente la manda luego en image/images.
type Store interface {
	Put(ctx context.Context, obj Object) (string, error)
}

// ObjectName arma {field}-{timestamp}-{random}{.ext}.
func ObjectName(field, filename string, now time.Time) string {
	field = strings.TrimSpace(field)
	if field == "" {
		field = "file"
	}
	return fmt.Sprintf("%s-%d-%d%s", field, now.UnixMilli(), uuid.New().ID(), Ext(filename))
}

// Ext conserva la extensión original descartando caracteres fuera de [A-Za-z0-9].
func Ext(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(filename)), ".")
	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "." + b.String()
}
