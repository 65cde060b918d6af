package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotel_records/internal/app"
	"hotel_records/internal/domain"
)

func TestGetHotel_RoundTrip(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()
	h, _ := svc.Create(ctx, sampleInput())

	got, err := svc.GetHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if got.Title != "Test Hotel" {
		t.Fatalf("title: %q", got.Title)
	}

	// two reads without a write in between encode identically
	again, _ := svc.GetHotel(ctx, h.ID)
	a, _ := json.Marshal(got)
	b, _ := json.Marshal(again)
	if string(a) != string(b) {
		t.Fatalf("reads differ:\n%s\n%s", a, b)
	}
}

func TestGetHotel_NotFound(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	if _, err := svc.GetHotel(context.Background(), "randomid"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListHotels(t *testing.T) {
	svc := app.NewHotelService(newFakeStore())
	ctx := context.Background()

	hs, err := svc.ListHotels(ctx)
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if hs == nil || len(hs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", hs)
	}

	first := sampleInput()
	second := sampleInput()
	second.Description = "Another test hotel for testing"
	a, _ := svc.Create(ctx, first)
	b, _ := svc.Create(ctx, second)

	hs, err = svc.ListHotels(ctx)
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if len(hs) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(hs))
	}
	byID := map[string]domain.Hotel{}
	for _, h := range hs {
		byID[h.ID] = h
	}
	if byID[a.ID].Description != first.Description || byID[b.ID].Description != second.Description {
		t.Fatalf("records not preserved: %+v", byID)
	}
}
