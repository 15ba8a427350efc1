package form

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/model"
)

// HouseSubmission carries the add-house form. Field names below are the
// exact wire names the backend expects; note district_id vs the plain ward
// and street names.
type HouseSubmission struct {
	RentalDuration       string
	Category             model.Category
	Description          string
	Price                string
	Condition            model.Condition
	NearbyFacilities     string
	Utilities            string
	SecurityFeatures     string
	HeatingCoolingSystem string
	FurnishingStatus     model.FurnishingStatus
	TotalBedRoom         int
	TotalDiningRoom      int
	TotalBathRoom        int
	DistrictID           string
	Ward                 string
	Street               string
	Latitude             float64
	Longitude            float64
	Images               []File
}

func (s HouseSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	if len(s.Images) == 0 {
		return "", nil, ErrNoImages
	}

	b := NewBuilder(logger)
	b.Field("rental_duration", s.RentalDuration)
	b.Field("category", string(s.Category))
	b.Field("description", s.Description)
	b.Field("price", s.Price)
	b.Field("condition", string(s.Condition))
	b.Field("nearby_facilities", s.NearbyFacilities)
	b.Field("utilities", s.Utilities)
	b.Field("security_features", s.SecurityFeatures)
	b.Field("heating_cooling_system", s.HeatingCoolingSystem)
	b.Field("furnishing_status", string(s.FurnishingStatus))
	b.Int("total_bed_room", s.TotalBedRoom)
	b.Int("total_dining_room", s.TotalDiningRoom)
	b.Int("total_bath_room", s.TotalBathRoom)
	b.Field("district_id", s.DistrictID)
	b.Field("ward", s.Ward)
	b.Field("street", s.Street)
	b.Coordinate("latitude", s.Latitude)
	b.Coordinate("longitude", s.Longitude)
	for _, img := range s.Images {
		b.File("images", img)
	}
	return b.Close()
}

// RoomSubmission carries the add-room form.
type RoomSubmission struct {
	RentalDuration       string
	RoomCategory         model.RoomCategory
	Description          string
	Price                string
	Condition            model.Condition
	NearbyFacilities     string
	Utilities            string
	SecurityFeatures     string
	HeatingCoolingSystem string
	FurnishingStatus     model.FurnishingStatus
	DistrictID           string
	Ward                 string
	Street               string
	Latitude             float64
	Longitude            float64
	Images               []File
}

func (s RoomSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	if len(s.Images) == 0 {
		return "", nil, ErrNoImages
	}

	b := NewBuilder(logger)
	b.Field("rental_duration", s.RentalDuration)
	b.Field("room_category", string(s.RoomCategory))
	b.Field("description", s.Description)
	b.Field("price", s.Price)
	b.Field("condition", string(s.Condition))
	b.Field("nearby_facilities", s.NearbyFacilities)
	b.Field("utilities", s.Utilities)
	b.Field("security_features", s.SecurityFeatures)
	b.Field("heating_cooling_system", s.HeatingCoolingSystem)
	b.Field("furnishing_status", string(s.FurnishingStatus))
	b.Field("district_id", s.DistrictID)
	b.Field("ward", s.Ward)
	b.Field("street", s.Street)
	b.Coordinate("latitude", s.Latitude)
	b.Coordinate("longitude", s.Longitude)
	for _, img := range s.Images {
		b.File("images", img)
	}
	return b.Close()
}

// LandSubmission carries the add-land form.
type LandSubmission struct {
	Description    string
	Price          string
	LandSizeUnit   string
	Category       model.LandType
	LandSize       string
	AccessRoadType string
	ZoningType     string
	Utilities      string
	DistrictID     string
	Ward           string
	Street         string
	Latitude       float64
	Longitude      float64
	Images         []File
}

func (s LandSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	if len(s.Images) == 0 {
		return "", nil, ErrNoImages
	}

	b := NewBuilder(logger)
	b.Field("description", s.Description)
	b.Field("price", s.Price)
	b.Field("land_size_unit", s.LandSizeUnit)
	b.Field("category", string(s.Category))
	b.Field("land_size", s.LandSize)
	b.Field("access_road_type", s.AccessRoadType)
	b.Field("zoning_type", s.ZoningType)
	b.Field("utilities", s.Utilities)
	b.Field("district_id", s.DistrictID)
	b.Field("ward", s.Ward)
	b.Field("street", s.Street)
	b.Coordinate("latitude", s.Latitude)
	b.Coordinate("longitude", s.Longitude)
	for _, img := range s.Images {
		b.File("images", img)
	}
	return b.Close()
}

// RegistrationSubmission carries the agent registration form. The avatar is
// optional; everything else is validated upstream by the form layer.
type RegistrationSubmission struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Gender      model.Gender
	PhoneNumber string
	Email       string
	Password    string
	Avatar      *File
}

func (s RegistrationSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	b := NewBuilder(logger)
	b.Field("first_name", s.FirstName)
	b.Field("middle_name", s.MiddleName)
	b.Field("last_name", s.LastName)
	b.Field("gender", string(s.Gender))
	b.Field("phone_number", s.PhoneNumber)
	b.Field("email", s.Email)
	b.Field("password", s.Password)
	if s.Avatar != nil {
		b.File("avatar", *s.Avatar)
	}
	return b.Close()
}

// ImageUploadSubmission attaches more images to an existing property.
type ImageUploadSubmission struct {
	PropertyID string
	Images     []File
}

func (s ImageUploadSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	if len(s.Images) == 0 {
		return "", nil, ErrNoImages
	}

	b := NewBuilder(logger)
	b.Field("property_id", s.PropertyID)
	for _, img := range s.Images {
		b.File("images", img)
	}
	return b.Close()
}

// SubscribeSubmission starts a plan subscription payment.
type SubscribeSubmission struct {
	PlanID      string
	PhoneNumber string
}

func (s SubscribeSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	b := NewBuilder(logger)
	b.Field("plan_id", s.PlanID)
	b.Field("phone_number", s.PhoneNumber)
	return b.Close()
}

// BookingSubmission requests the listing agent's contact details.
type BookingSubmission struct {
	PropertyID    string
	CustomerName  string
	CustomerEmail string
	PhoneNumber   string
}

func (s BookingSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	b := NewBuilder(logger)
	b.Field("property_id", s.PropertyID)
	b.Field("customer_name", s.CustomerName)
	b.Field("customer_email", s.CustomerEmail)
	b.Field("phone_number", s.PhoneNumber)
	return b.Close()
}

// SignOutSubmission posts the refresh token being revoked.
type SignOutSubmission struct {
	Refresh string
}

func (s SignOutSubmission) Encode(logger zerolog.Logger) (string, io.Reader, error) {
	b := NewBuilder(logger)
	b.Field("refresh", s.Refresh)
	return b.Close()
}
