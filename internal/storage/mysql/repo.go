package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/domain"
)

// Repo stores each hotel as a JSON document row keyed by id.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Exists(ctx context.Context, id string) (ok bool, err error) {
	defer observe("exists", time.Now(), &err)
	var one int
	err = r.db.QueryRowContext(ctx, existsHotelSQL, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", id, err)
	}
	return true, nil
}

func (r *Repo) Get(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("get", time.Now(), &err)
	var doc []byte
	if err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, fmt.Errorf("select %s: %w", id, err)
	}
	if err := json.Unmarshal(doc, &h); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return h, nil
}

func (r *Repo) Put(ctx context.Context, h domain.Hotel) (err error) {
	defer observe("put", time.Now(), &err)
	doc, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", h.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, upsertHotelSQL, h.ID, string(doc)); err != nil {
		return fmt.Errorf("upsert %s: %w", h.ID, err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context) (out []domain.Hotel, err error) {
	defer observe("list", time.Now(), &err)
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	out = []domain.Hotel{}
	for rows.Next() {
		var (
			id  string
			doc sql.RawBytes
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		var h domain.Hotel
		if err := json.Unmarshal(doc, &h); err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func observe(op string, start time.Time, err *error) {
	nf := errors.Is(*err, domain.ErrNotFound)
	observability.ObserveStore("mysql", op, observability.ResultLabel(*err, nf), time.Since(start))
}
