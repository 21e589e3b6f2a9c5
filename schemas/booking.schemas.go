package schemas

// Booking is a confirmed hotel booking (booking:<id>); append-only, no
// cancellation path
type Booking struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	HotelID   string  `json:"hotelId"`
	HotelName string  `json:"hotelName"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  string  `json:"checkOut"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	BookedAt  string  `json:"bookedAt"`
}

// BookHotelSchema struct
type BookHotelSchema struct {
	HotelID   string  `json:"hotelId" validate:"required"`
	HotelName string  `json:"hotelName" validate:"required,max=200"`
	CheckIn   string  `json:"checkIn" validate:"required"`
	CheckOut  string  `json:"checkOut" validate:"required"`
	Price     float64 `json:"price"`
}

// BookingResponse struct
type BookingResponse struct {
	Booking Booking `json:"booking"`
}

// Rsvp is an event RSVP (rsvp:<id>); append-only
type Rsvp struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
	Status    string `json:"status"`
	RsvpAt    string `json:"rsvpAt"`
}

// RsvpEventSchema struct
type RsvpEventSchema struct {
	EventID   string `json:"eventId" validate:"required"`
	EventName string `json:"eventName" validate:"required,max=200"`
}

// RsvpResponse struct
type RsvpResponse struct {
	Rsvp Rsvp `json:"rsvp"`
}
