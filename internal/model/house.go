package model

type House struct {
	PropertyID           string           `json:"property_id"`
	Location             Location         `json:"location"`
	Images               []string         `json:"images"`
	Category             Category         `json:"category"`
	Price                string           `json:"price"`
	RentalDuration       string           `json:"rental_duration"`
	Description          string           `json:"description"`
	Condition            Condition        `json:"condition"`
	NearbyFacilities     string           `json:"nearby_facilities"`
	Utilities            string           `json:"utilities"`
	SecurityFeatures     string           `json:"security_features"`
	HeatingCoolingSystem string           `json:"heating_cooling_system"`
	FurnishingStatus     FurnishingStatus `json:"furnishing_status"`
	TotalBedRoom         int              `json:"total_bed_room"`
	TotalDiningRoom      int              `json:"total_dining_room"`
	TotalBathRoom        int              `json:"total_bath_room"`
	Status               PropertyStatus   `json:"status"`
	IsDeleted            bool             `json:"is_deleted"`
	ListingDate          string           `json:"listing_date"`
	UpdatedAt            string           `json:"updated_at"`
}
