package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel_records/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON names (host.email) rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type hostRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type roomRequest struct {
	RoomImage    string `json:"roomImage"`
	RoomTitle    string `json:"roomTitle"`
	BedroomCount int    `json:"bedroomCount"`
}

type createHotelRequest struct {
	Title         string           `json:"title" validate:"required"`
	Description   string           `json:"description" validate:"required"`
	GuestCount    int              `json:"guestCount" validate:"required,min=1"`
	BedroomCount  int              `json:"bedroomCount" validate:"required,min=1"`
	BathroomCount int              `json:"bathroomCount" validate:"required,min=1"`
	Amenities     []string         `json:"amenities" validate:"required"`
	Host          *hostRequest     `json:"host" validate:"required"`
	Address       string           `json:"address" validate:"required"`
	Location      *locationRequest `json:"location" validate:"required"`
	Rooms         []roomRequest    `json:"rooms" validate:"required"`
}

// update: every field is optional, but a present host or location replaces
// the stored one whole and so must be complete.
type updateHotelRequest struct {
	Title         *string          `json:"title" validate:"omitnil,min=1"`
	Description   *string          `json:"description" validate:"omitnil,min=1"`
	GuestCount    *int             `json:"guestCount" validate:"omitnil,min=1"`
	BedroomCount  *int             `json:"bedroomCount" validate:"omitnil,min=1"`
	BathroomCount *int             `json:"bathroomCount" validate:"omitnil,min=1"`
	Amenities     []string         `json:"amenities"`
	Host          *hostRequest     `json:"host"`
	Address       *string          `json:"address" validate:"omitnil,min=1"`
	Location      *locationRequest `json:"location"`
	Rooms         []roomRequest    `json:"rooms"`
}

func (r createHotelRequest) toInput() domain.HotelInput {
	return domain.HotelInput{
		Profile: domain.Profile{
			Title:         r.Title,
			Description:   r.Description,
			GuestCount:    r.GuestCount,
			BedroomCount:  r.BedroomCount,
			BathroomCount: r.BathroomCount,
			Amenities:     r.Amenities,
			Host:          domain.Host{Name: r.Host.Name, Email: r.Host.Email},
			Address:       r.Address,
			Location:      domain.Location{Latitude: *r.Location.Latitude, Longitude: *r.Location.Longitude},
		},
		Rooms: toRoomInputs(r.Rooms),
	}
}

func (r updateHotelRequest) toPatch() domain.HotelPatch {
	p := domain.HotelPatch{
		Title:         r.Title,
		Description:   r.Description,
		GuestCount:    r.GuestCount,
		BedroomCount:  r.BedroomCount,
		BathroomCount: r.BathroomCount,
		Amenities:     r.Amenities,
		Address:       r.Address,
		Rooms:         toRoomInputs(r.Rooms),
	}
	if r.Host != nil {
		p.Host = &domain.Host{Name: r.Host.Name, Email: r.Host.Email}
	}
	if r.Location != nil {
		p.Location = &domain.Location{Latitude: *r.Location.Latitude, Longitude: *r.Location.Longitude}
	}
	return p
}

// toRoomInputs keeps nil as nil: absent rooms must stay absent.
func toRoomInputs(in []roomRequest) []domain.RoomInput {
	if in == nil {
		return nil
	}
	out := make([]domain.RoomInput, len(in))
	for i, r := range in {
		out[i] = domain.RoomInput{RoomImage: r.RoomImage, RoomTitle: r.RoomTitle, BedroomCount: r.BedroomCount}
	}
	return out
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldErrors flattens validator output; ok is false for non-validation errors.
func fieldErrors(err error) ([]fieldError, bool) {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, false
	}
	out := make([]fieldError, 0, len(ves))
	for _, fe := range ves {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, fieldError{Field: field, Message: message(fe)})
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
