package app

import (
	"context"
	"fmt"

	"hotel_records/internal/domain"
)

// HotelService applies the hotel derivation rules (ids, slugs, room
// back-references) on top of a HotelStore.
type HotelService struct {
	store domain.HotelStore
	newID func() string
}

func NewHotelService(s domain.HotelStore) *HotelService {
	return &HotelService{store: s, newID: newHotelID}
}

func (s *HotelService) Create(ctx context.Context, in domain.HotelInput) (domain.Hotel, error) {
	if in.Rooms == nil {
		return domain.Hotel{}, domain.ErrRoomsRequired
	}

	hotelSlug := slugify(in.Title)
	h := domain.Hotel{
		ID:      s.newID(),
		Slug:    hotelSlug,
		Images:  []string{},
		Profile: in.Profile,
		Rooms:   normalizeRooms(hotelSlug, in.Rooms),
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}

	if err := s.store.Put(ctx, h); err != nil {
		return domain.Hotel{}, fmt.Errorf("create hotel %s: %w", h.ID, err)
	}
	return h, nil
}

// Update merges p into the stored record. Rooms are only recomputed when the
// patch carries them; a title-only change leaves the existing rooms'
// hotelSlug as it was.
func (s *HotelService) Update(ctx context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("probe hotel %s: %w", id, err)
	}
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}

	var newSlug *string
	if p.Title != nil && *p.Title != "" {
		v := slugify(*p.Title)
		newSlug = &v
	}

	var rooms []domain.Room
	if p.Rooms != nil {
		hotelSlug := existing.Slug
		if newSlug != nil {
			hotelSlug = *newSlug
		}
		rooms = normalizeRooms(hotelSlug, p.Rooms)
	}

	merged := mergePatch(existing, p, newSlug, rooms)
	if err := s.store.Put(ctx, merged); err != nil {
		return domain.Hotel{}, fmt.Errorf("update hotel %s: %w", id, err)
	}
	return merged, nil
}
