package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	"hotel_records/internal/app"
	"hotel_records/internal/domain"
)

// ---- fakes ----

// fakeStore keeps documents as JSON so tests see the same copy semantics as
// a real backend.
type fakeStore struct {
	docs   map[string][]byte
	puts   int
	putErr error
	getErr error
}

func newFakeStore() *fakeStore { return &fakeStore{docs: map[string][]byte{}} }

func (f *fakeStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (domain.Hotel, error) {
	if f.getErr != nil {
		return domain.Hotel{}, f.getErr
	}
	b, ok := f.docs[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	var h domain.Hotel
	err := json.Unmarshal(b, &h)
	return h, err
}

func (f *fakeStore) Put(ctx context.Context, h domain.Hotel) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	f.docs[h.ID] = b
	f.puts++
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Hotel, error) {
	ids := make([]string, 0, len(f.docs))
	for id := range f.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []domain.Hotel
	for _, id := range ids {
		h, _ := f.Get(ctx, id)
		out = append(out, h)
	}
	return out, nil
}

type fakeImages struct {
	saved []string
	n     int
	err   error
}

func (f *fakeImages) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(r)
	f.n++
	name := string(rune('a'+f.n-1)) + ext
	f.saved = append(f.saved, string(b))
	return name, nil
}

func upload(name, contentType, body string) app.Upload {
	return app.Upload{
		Filename:    name,
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

var errDisk = errors.New("disk full")

func ptr[T any](v T) *T { return &v }

func sampleInput() domain.HotelInput {
	return domain.HotelInput{
		Profile: domain.Profile{
			Title:         "Test Hotel",
			Description:   "A beautiful test hotel",
			GuestCount:    4,
			BedroomCount:  2,
			BathroomCount: 2,
			Amenities:     []string{"wifi", "parking"},
			Host:          domain.Host{Name: "John Doe", Email: "john@example.com"},
			Address:       "123 Test Street",
			Location:      domain.Location{Latitude: 40.7128, Longitude: -74.0060},
		},
		Rooms: []domain.RoomInput{
			{RoomTitle: "Deluxe Room", RoomImage: "deluxe-room.jpg", BedroomCount: 1},
		},
	}
}
