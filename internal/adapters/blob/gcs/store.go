// Package gcs guarda uploads en un bucket de Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"bordoodles-api/internal/ports/blob"
)

type Config struct {
	Bucket string

	// PublicBaseURL opcional (CDN). Default: https://storage.googleapis.com/<bucket>
	PublicBaseURL string

	// CredentialsFile opcional; si está vacío se usan las Application Default Credentials.
	CredentialsFile string

	Timeout time.Duration
}

type Store struct {
	client  *storage.Client
	bucket  string
	baseURL string
	timeout time.Duration
	now     func() time.Time
}

var _ blob.Store = (*Store)(nil)

func New(ctx context.Context, cfg Config) (*Store, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New("gcs: bucket required")
	}

	var opts []option.ClientOption
	if f := strings.TrimSpace(cfg.CredentialsFile); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com/" + bucket
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: base,
		timeout: timeout,
		now:     time.Now,
	}, nil
}

func (s *Store) Put(ctx context.Context, obj blob.Object) (string, error) {
	if obj.Body == nil {
		return "", errors.New("gcs: empty body")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name := blob.ObjectName(obj.Field, obj.Filename, s.now())

	// DoesNotExist: nunca pisamos un objeto existente.
	w := s.client.Bucket(s.bucket).Object(name).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	if ct := strings.TrimSpace(obj.ContentType); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: close %s: %w", name, err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
