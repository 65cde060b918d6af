package domain

// Hotel is the persisted root record. Field order is the JSON key order.
type Hotel struct {
	ID     string   `json:"id"`
	Slug   string   `json:"slug"`
	Images []string `json:"images"`
	Profile
	Rooms []Room `json:"rooms"`
}

// Profile holds the caller-supplied descriptive fields of a hotel.
type Profile struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	GuestCount    int      `json:"guestCount"`
	BedroomCount  int      `json:"bedroomCount"`
	BathroomCount int      `json:"bathroomCount"`
	Amenities     []string `json:"amenities"`
	Host          Host     `json:"host"`
	Address       string   `json:"address"`
	Location      Location `json:"location"`
}

type Host struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Room is embedded in a Hotel; HotelSlug is a copy of the parent slug taken
// when the room list was last recomputed.
type Room struct {
	HotelSlug    string `json:"hotelSlug"`
	RoomSlug     string `json:"roomSlug"`
	RoomImage    string `json:"roomImage"`
	RoomTitle    string `json:"roomTitle"`
	BedroomCount int    `json:"bedroomCount"`
}

// RoomInput is a room as supplied by a caller, before slugs are derived.
type RoomInput struct {
	RoomImage    string `json:"roomImage"`
	RoomTitle    string `json:"roomTitle"`
	BedroomCount int    `json:"bedroomCount"`
}

// HotelInput is the payload for creating a hotel. A nil Rooms means the
// field was absent.
type HotelInput struct {
	Profile
	Rooms []RoomInput `json:"rooms"`
}

// HotelPatch is a partial update. Nil pointers and nil slices are absent
// fields; anything present replaces the stored value as a whole.
type HotelPatch struct {
	Title         *string
	Description   *string
	GuestCount    *int
	BedroomCount  *int
	BathroomCount *int
	Amenities     []string
	Host          *Host
	Address       *string
	Location      *Location
	Rooms         []RoomInput
}
