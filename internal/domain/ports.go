package domain

import (
	"context"
	"io"
)

// HotelStore persists one document per hotel id.
type HotelStore interface {
	// Exists is a presence probe; a missing record is (false, nil).
	Exists(ctx context.Context, id string) (bool, error)
	// Get returns ErrNotFound when no record exists for id.
	Get(ctx context.Context, id string) (Hotel, error)
	// Put overwrites any existing record with the same id.
	Put(ctx context.Context, h Hotel) error
	// List returns every stored record; an empty store is not an error.
	List(ctx context.Context) ([]Hotel, error)
}

// ImageStore writes uploaded image bytes somewhere publicly servable and
// returns the stored file name.
type ImageStore interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
}
