package app

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"hotel_records/internal/domain"
)

const hotelIDPrefix = "hotel-"

func newHotelID() string { return hotelIDPrefix + uuid.NewString() }

// slugify lowercases and hyphenates a display title.
func slugify(title string) string { return slug.Make(title) }

// normalizeRooms derives both slugs for every room. It never returns nil so
// an empty input still serializes as [].
func normalizeRooms(hotelSlug string, in []domain.RoomInput) []domain.Room {
	out := make([]domain.Room, 0, len(in))
	for _, r := range in {
		out = append(out, domain.Room{
			HotelSlug:    hotelSlug,
			RoomSlug:     slugify(r.RoomTitle),
			RoomImage:    r.RoomImage,
			RoomTitle:    r.RoomTitle,
			BedroomCount: r.BedroomCount,
		})
	}
	return out
}

// mergePatch overlays every present patch field on h (shallow). Slug and
// rooms are passed in already derived.
func mergePatch(h domain.Hotel, p domain.HotelPatch, newSlug *string, rooms []domain.Room) domain.Hotel {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if newSlug != nil {
		h.Slug = *newSlug
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.GuestCount != nil {
		h.GuestCount = *p.GuestCount
	}
	if p.BedroomCount != nil {
		h.BedroomCount = *p.BedroomCount
	}
	if p.BathroomCount != nil {
		h.BathroomCount = *p.BathroomCount
	}
	if p.Amenities != nil {
		h.Amenities = append(make([]string, 0, len(p.Amenities)), p.Amenities...)
	}
	if p.Host != nil {
		h.Host = *p.Host
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Location != nil {
		h.Location = *p.Location
	}
	if rooms != nil {
		h.Rooms = rooms
	}
	return h
}
