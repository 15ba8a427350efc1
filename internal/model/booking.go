package model

type Booking struct {
	BookingID     string `json:"booking_id"`
	PropertyID    string `json:"property_id"`
	PropertyType  string `json:"property_type"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	PhoneNumber   string `json:"phone_number"`
	Status        string `json:"status"`
	BookedAt      string `json:"booked_at"`
}

// BookedPropertyDetail is the expanded view an agent sees for one booking.
type BookedPropertyDetail struct {
	Booking  Booking  `json:"booking"`
	Location Location `json:"location"`
	Images   []string `json:"images"`
	Price    string   `json:"price"`
	Category string   `json:"category"`
}
