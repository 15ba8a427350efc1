package model

type CompanyInformation struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	AboutUs     string `json:"about_us"`
}

// DemoProperty is the teaser listing shown to anonymous visitors.
type DemoProperty struct {
	PropertyID   string         `json:"property_id"`
	PropertyType string         `json:"property_type"`
	Price        string         `json:"price"`
	Location     Location       `json:"location"`
	Images       []string       `json:"images"`
	Status       PropertyStatus `json:"status"`
}
