// Package filestore keeps one pretty-printed JSON document per hotel in a
// directory. The directory listing is the table scan.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/domain"
)

const ext = ".json"

type Store struct{ dir string }

func New(dir string) *Store { return &Store{dir: dir} }

func (s *Store) Dir() string { return s.dir }

// path rejects ids that would leave the data directory.
func (s *Store) path(id string) (string, bool) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", false
	}
	return filepath.Join(s.dir, id+ext), true
}

func (s *Store) Exists(ctx context.Context, id string) (ok bool, err error) {
	defer observe("exists", time.Now(), &err, nil)
	p, valid := s.path(id)
	if !valid {
		return false, nil
	}
	return s.exists(p)
}

func (s *Store) exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", p, err)
}

func (s *Store) Get(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("get", time.Now(), &err, domain.ErrNotFound)
	p, valid := s.path(id)
	if !valid {
		return domain.Hotel{}, domain.ErrNotFound
	}
	ok, err := s.exists(p)
	if err != nil {
		return domain.Hotel{}, err
	}
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return readDoc(p)
}

func (s *Store) Put(ctx context.Context, h domain.Hotel) (err error) {
	defer observe("put", time.Now(), &err, nil)
	p, valid := s.path(h.ID)
	if !valid {
		return fmt.Errorf("invalid hotel id %q", h.ID)
	}
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", h.ID, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

// List returns documents in directory order. A missing directory means no
// hotels have been written yet.
func (s *Store) List(ctx context.Context) (out []domain.Hotel, err error) {
	defer observe("list", time.Now(), &err, nil)
	ents, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Hotel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	out = make([]domain.Hotel, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h, err := readDoc(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func readDoc(p string) (domain.Hotel, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("read %s: %w", p, err)
	}
	var h domain.Hotel
	if err := json.Unmarshal(b, &h); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode %s: %w", p, err)
	}
	return h, nil
}

func observe(op string, start time.Time, err *error, notFound error) {
	nf := notFound != nil && errors.Is(*err, notFound)
	observability.ObserveStore("file", op, observability.ResultLabel(*err, nf), time.Since(start))
}
