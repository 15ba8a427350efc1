package model

type Room struct {
	PropertyID           string           `json:"property_id"`
	Location             Location         `json:"location"`
	Images               []string         `json:"images"`
	RoomCategory         RoomCategory     `json:"room_category"`
	Price                string           `json:"price"`
	RentalDuration       string           `json:"rental_duration"`
	Status               PropertyStatus   `json:"status"`
	Description          string           `json:"description"`
	Condition            Condition        `json:"condition"`
	NearbyFacilities     string           `json:"nearby_facilities"`
	Utilities            string           `json:"utilities"`
	SecurityFeatures     string           `json:"security_features"`
	HeatingCoolingSystem string           `json:"heating_cooling_system"`
	FurnishingStatus     FurnishingStatus `json:"furnishing_status"`
	IsDeleted            bool             `json:"is_deleted"`
	ListingDate          string           `json:"listing_date"`
	UpdatedAt            string           `json:"updated_at"`
}
