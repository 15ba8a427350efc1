package model

type Region struct {
	RegionID string `json:"region_id"`
	Name     string `json:"name"`
}

type District struct {
	DistrictID string `json:"district_id"`
	Name       string `json:"name"`
	Region     string `json:"region"`
}

type Ward struct {
	WardID   string `json:"ward_id"`
	Name     string `json:"name"`
	District string `json:"district"`
}

type Street struct {
	StreetID string `json:"street_id"`
	Name     string `json:"name"`
	Ward     string `json:"ward"`
}

// Location is the denormalized location block attached to listings.
type Location struct {
	Region    string `json:"region"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
