package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hotel_records/internal/app"
	"hotel_records/internal/domain"
)

func TestCreate_DerivesSlugsAndID(t *testing.T) {
	store := newFakeStore()
	svc := app.NewHotelService(store)

	h, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(h.ID, "hotel-") || len(h.ID) != len("hotel-")+36 {
		t.Fatalf("unexpected id %q", h.ID)
	}
	if h.Slug != "test-hotel" {
		t.Fatalf("slug: %q", h.Slug)
	}
	if h.Images == nil || len(h.Images) != 0 {
		t.Fatalf("images should start empty, got %#v", h.Images)
	}
	if len(h.Rooms) != 1 {
		t.Fatalf("rooms: %+v", h.Rooms)
	}
	r := h.Rooms[0]
	if r.HotelSlug != "test-hotel" || r.RoomSlug != "deluxe-room" || r.RoomImage != "deluxe-room.jpg" || r.BedroomCount != 1 {
		t.Fatalf("unexpected room: %+v", r)
	}
	if _, ok := store.docs[h.ID]; !ok {
		t.Fatalf("record not persisted")
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	a, _ := svc.Create(context.Background(), sampleInput())
	b, _ := svc.Create(context.Background(), sampleInput())
	if a.ID == b.ID {
		t.Fatalf("ids collided: %s", a.ID)
	}
	if a.Slug != b.Slug {
		t.Fatalf("same title should give same slug")
	}
}

func TestCreate_RoomsRequired(t *testing.T) {
	store := newFakeStore()
	svc := app.NewHotelService(store)
	in := sampleInput()
	in.Rooms = nil

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
	if store.puts != 0 {
		t.Fatalf("nothing should be written")
	}
}

func TestCreate_EmptyRoomsAllowed(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	in := sampleInput()
	in.Rooms = []domain.RoomInput{}
	h, err := svc.Create(context.Background(), in)
	if err != nil || h.Rooms == nil || len(h.Rooms) != 0 {
		t.Fatalf("rooms=%#v err=%v", h.Rooms, err)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.putErr = errDisk
	svc := app.NewHotelService(store)
	if _, err := svc.Create(context.Background(), sampleInput()); !errors.Is(err, errDisk) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestUpdate_TitleAndRooms(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.Update(ctx, h.ID, domain.HotelPatch{
		Title: ptr("hotel awesome in dhaka"),
		Rooms: []domain.RoomInput{
			{RoomTitle: "Ocean View Suite", BedroomCount: 1},
			{RoomTitle: "Garden Room", BedroomCount: 2},
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Slug != "hotel-awesome-in-dhaka" || got.Title != "hotel awesome in dhaka" {
		t.Fatalf("title/slug: %q %q", got.Title, got.Slug)
	}
	if len(got.Rooms) != 2 {
		t.Fatalf("rooms: %+v", got.Rooms)
	}
	for _, r := range got.Rooms {
		if r.HotelSlug != "hotel-awesome-in-dhaka" {
			t.Fatalf("stale hotelSlug on %+v", r)
		}
	}
	if got.Rooms[0].RoomSlug != "ocean-view-suite" || got.Rooms[1].RoomSlug != "garden-room" {
		t.Fatalf("room slugs: %+v", got.Rooms)
	}
	if got.ID != h.ID || got.Description != h.Description {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdate_RoomsOnlyUseExistingSlug(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.Update(ctx, h.ID, domain.HotelPatch{
		Rooms: []domain.RoomInput{{RoomTitle: "Twin Room", BedroomCount: 2}},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Rooms[0].HotelSlug != "test-hotel" || got.Rooms[0].RoomSlug != "twin-room" {
		t.Fatalf("unexpected room: %+v", got.Rooms[0])
	}
}

func TestUpdate_TitleOnlyKeepsRoomBackReference(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.Update(ctx, h.ID, domain.HotelPatch{Title: ptr("Renamed Hotel")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Slug != "renamed-hotel" {
		t.Fatalf("slug: %q", got.Slug)
	}
	if got.Rooms[0].HotelSlug != "test-hotel" {
		t.Fatalf("rooms not in the patch keep their hotelSlug, got %q", got.Rooms[0].HotelSlug)
	}
}

func TestUpdate_ShallowMerge(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.Update(ctx, h.ID, domain.HotelPatch{
		Host:       &domain.Host{Email: "new@example.com"},
		GuestCount: ptr(8),
		Amenities:  []string{"pool"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Host.Name != "" || got.Host.Email != "new@example.com" {
		t.Fatalf("host must be replaced as a whole: %+v", got.Host)
	}
	if got.GuestCount != 8 || len(got.Amenities) != 1 || got.Amenities[0] != "pool" {
		t.Fatalf("unexpected merge: %+v", got)
	}
	if got.Slug != "test-hotel" || got.BedroomCount != 2 || got.Location != h.Location {
		t.Fatalf("absent fields must be untouched: %+v", got)
	}

	stored, _ := svc.GetHotel(ctx, h.ID)
	if stored.GuestCount != 8 {
		t.Fatalf("merge not persisted: %+v", stored)
	}
}

func TestUpdate_EmptyAmenities(t *testing.T) {
	store := newFakeStore()
	svc := app.NewHotelService(store)
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.Update(ctx, h.ID, domain.HotelPatch{Amenities: []string{}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Amenities == nil || len(got.Amenities) != 0 {
		t.Fatalf("amenities = %#v, want empty non-nil", got.Amenities)
	}
	if doc := string(store.docs[h.ID]); !strings.Contains(doc, `"amenities":[]`) {
		t.Fatalf("stored document: %s", doc)
	}
}

func TestUpdate_NotFoundCreatesNothing(t *testing.T) {
	store := newFakeStore()
	svc := app.NewHotelService(store)

	_, err := svc.Update(context.Background(), "jljsldkf", domain.HotelPatch{Title: ptr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.puts != 0 || len(store.docs) != 0 {
		t.Fatalf("update must not create records")
	}
}
