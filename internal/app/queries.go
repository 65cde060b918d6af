package app

import (
	"context"

	"hotel_records/internal/domain"
)

func (s *HotelService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	return s.store.Get(ctx, id)
}

func (s *HotelService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	return hs, nil
}
