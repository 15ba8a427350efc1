package model

type Land struct {
	LandID          string         `json:"land_id"`
	Category        LandType       `json:"category"`
	LandSize        string         `json:"land_size"`
	LandSizeUnit    string         `json:"land_size_unit"`
	Price           string         `json:"price"`
	AccessRoadType  string         `json:"access_road_type"`
	ZoningType      string         `json:"zoning_type"`
	Utilities       string         `json:"utilities"`
	Description     string         `json:"description"`
	IsActiveAccount bool           `json:"is_active_account"`
	Status          PropertyStatus `json:"status"`
	IsDeleted       bool           `json:"is_deleted"`
	ListingDate     string         `json:"listing_date"`
	Location        Location       `json:"location"`
	Images          []string       `json:"images"`
}
