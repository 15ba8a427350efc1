// Package apitest is an in-process stand-in for the marketplace backend.
// It speaks the same routes and envelopes the production API does, enough
// for the SDK's integration tests to run against a real HTTP round trip.
package apitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/seranise/kedesh-go/internal/model"
)

// Credentials the fake backend accepts.
const (
	Username = "agent@kedesh.example"
	Password = "kedesh-agent-pass"
)

var signingKey = []byte("apitest-signing-key")

// AccessToken mints a signed token carrying the claims the session layer
// decodes. The SDK never verifies the signature, but a real one keeps the
// token well-formed.
func AccessToken(fullName, email string, superuser bool, expiresAt time.Time) string {
	claims := jwt.MapClaims{
		"full_name":    fullName,
		"email":        email,
		"is_superuser": superuser,
		"exp":          expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return signed
}

// Server holds the canned data and per-test switches. Mount Router in an
// httptest.Server and point the SDK's base URL at it.
type Server struct {
	Router *chi.Mux

	mu sync.Mutex

	// LoginStatus forces the sign-in outcome: 0 means succeed, 400 and
	// 500 force the corresponding failure envelope.
	LoginStatus int

	// Superuser controls the is_superuser claim in issued tokens.
	Superuser bool

	// lastFilterQuery records the raw query string of the most recent
	// filter call, per listing type.
	lastFilterQuery map[string]string

	houses map[string]model.House
	rooms  map[string]model.Room
	lands  map[string]model.Land
}

func New() *Server {
	s := &Server{
		Router:          chi.NewRouter(),
		lastFilterQuery: map[string]string{},
		houses:          map[string]model.House{},
		rooms:           map[string]model.Room{},
		lands:           map[string]model.Land{},
	}
	s.routes()
	return s
}

// SeedHouse registers a house and returns its id.
func (s *Server) SeedHouse(h model.House) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.PropertyID == "" {
		h.PropertyID = uuid.NewString()
	}
	s.houses[h.PropertyID] = h
	return h.PropertyID
}

func (s *Server) SeedRoom(r model.Room) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.PropertyID == "" {
		r.PropertyID = uuid.NewString()
	}
	s.rooms[r.PropertyID] = r
	return r.PropertyID
}

func (s *Server) SeedLand(l model.Land) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.LandID == "" {
		l.LandID = uuid.NewString()
	}
	s.lands[l.LandID] = l
	return l.LandID
}

// HouseCount reports how many houses remain seeded.
func (s *Server) HouseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.houses)
}

func (s *Server) routes() {
	r := s.Router

	r.Post("/auth/sign-in", s.signIn)
	r.Post("/auth/sign-out", s.signOut)

	r.Get("/location/regions/list_regions/", s.listRegions)
	r.Get("/location/districts/{regionID}/retrieve_region_districts/", s.listDistricts)
	r.Get("/location/wards/{districtID}/retrieve_district_wards/", s.listWards)
	r.Get("/location/streets/{wardID}/retrieve_ward_streets/", s.listStreets)

	r.Get("/house/houses/list_houses/", s.requireBearer(s.listHouses))
	r.Get("/house/houses/{propertyID}/retrieve_house/", s.requireBearer(s.houseDetail))
	r.Get("/house/houses/{propertyID}/house_detail/", s.houseDetail)
	r.Get("/house/houses/filter_houses/", s.filter("house", s.listHousesPublic))
	r.Post("/house/houses/add_house/", s.requireBearer(s.addHouse))
	r.Delete("/house/houses/{propertyID}/soft_delete_house/", s.requireBearer(s.deleteHouse))
	r.Post("/house/images/upload_images/", s.requireBearer(s.uploadImages))

	r.Get("/room/rooms/room_list/", s.requireBearer(s.listRooms))
	r.Get("/room/rooms/{propertyID}/retrieve_room/", s.requireBearer(s.roomDetail))
	r.Get("/room/rooms/{propertyID}/room_detail/", s.roomDetail)
	r.Get("/room/rooms/room_filter/", s.filter("room", s.listRoomsPublic))
	r.Post("/room/rooms/add_room/", s.requireBearer(s.addRoom))
	r.Delete("/room/rooms/{propertyID}/soft_delete_room/", s.requireBearer(s.deleteRoom))

	r.Get("/land/lands/land_list/", s.requireBearer(s.listLands))
	r.Get("/land/lands/{landID}/retrieve_land/", s.requireBearer(s.landDetail))
	r.Get("/land/lands/{landID}/retrieve_land_details/", s.landDetail)
	r.Get("/land/lands/land_filter/", s.filter("land", s.listLandsPublic))
	r.Post("/land/lands/add_land/", s.requireBearer(s.addLand))
	r.Delete("/land/lands/{landID}/soft_delete_land/", s.requireBearer(s.deleteLand))
	r.Post("/land/lands/request_agent_info/", s.detailHandler(200, "Agent phone number sent"))

	r.Post("/property/properties/{propertyID}/mark_property_rented/", s.requireBearer(s.detailHandler(200, "Property marked as rented")))
	r.Post("/property/properties/{propertyID}/mark_property_sold/", s.requireBearer(s.detailHandler(200, "Property marked as sold")))
	r.Post("/property/properties/{propertyID}/mark_property_available/", s.requireBearer(s.detailHandler(200, "Property marked as available")))

	r.Get("/account/plans/get_subscription/", s.listPlans)
	r.Get("/account/accounts/account/", s.requireBearer(s.account))
	r.Post("/account/plans/subscribe/", s.requireBearer(s.detailHandler(200, "Subscription payment initiated")))

	r.Post("/user/agents/register/", s.detailHandler(201, "Agent registered successfully"))

	r.Post("/booking/bookings/request_agent_info/", s.detailHandler(201, "Booking received"))
	r.Get("/booking/bookings/agent_booked_properties/", s.requireBearer(s.bookingList))
	r.Get("/booking/bookings/{bookingID}/agent_booked_property/", s.requireBearer(s.bookingDetail))

	r.Get("/company_information/informations/get_information/", s.companyInformation)
	r.Get("/property/properties/demo_property/", s.demoProperties)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (s *Server) detailHandler(status int, msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail(w, status, msg)
	}
}

func (s *Server) requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			detail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		next(w, r)
	}
}

func (s *Server) filter(kind string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastFilterQuery[kind] = r.URL.RawQuery
		s.mu.Unlock()
		next(w, r)
	}
}

// FilterQuery reports the raw query string of the most recent filter call
// for one listing type.
func (s *Server) FilterQuery(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFilterQuery[kind]
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	forced := s.LoginStatus
	superuser := s.Superuser
	s.mu.Unlock()

	switch forced {
	case 400:
		writeJSON(w, 400, map[string][]string{"non_field_errors": {"Invalid credentials"}})
		return
	case 500:
		detail(w, 500, "internal error")
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username != Username || body.Password != Password {
		writeJSON(w, 400, map[string][]string{"non_field_errors": {"Invalid credentials"}})
		return
	}

	access := AccessToken("Asha Mkwawa", Username, superuser, time.Now().Add(time.Hour))
	writeJSON(w, 200, map[string]any{
		"tokens": map[string]string{
			"access":  access,
			"refresh": uuid.NewString(),
		},
	})
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil || r.FormValue("refresh") == "" {
		detail(w, 400, "refresh token is required")
		return
	}
	detail(w, 200, "Signed out successfully")
}

func (s *Server) listRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, []model.Region{
		{RegionID: "reg-1", Name: "Dar es Salaam"},
		{RegionID: "reg-2", Name: "Dodoma"},
	})
}

func (s *Server) listDistricts(w http.ResponseWriter, r *http.Request) {
	regionID := chi.URLParam(r, "regionID")
	writeJSON(w, 200, []model.District{
		{DistrictID: "dis-1", Name: "Kinondoni", Region: regionID},
	})
}

func (s *Server) listWards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, []model.Ward{
		{WardID: "ward-1", Name: "Mikocheni", District: chi.URLParam(r, "districtID")},
	})
}

func (s *Server) listStreets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, []model.Street{
		{StreetID: "str-1", Name: "Mwai Kibaki Road", Ward: chi.URLParam(r, "wardID")},
	})
}

func (s *Server) housePage() model.Page[model.House] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := model.Page[model.House]{Count: len(s.houses), Results: []model.House{}}
	for _, h := range s.houses {
		page.Results = append(page.Results, h)
	}
	return page
}

func (s *Server) listHouses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.housePage())
}

func (s *Server) listHousesPublic(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.housePage())
}

func (s *Server) houseDetail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	h, ok := s.houses[chi.URLParam(r, "propertyID")]
	s.mu.Unlock()
	if !ok {
		detail(w, 404, "house not found")
		return
	}
	writeJSON(w, 200, h)
}

func (s *Server) addHouse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		detail(w, 400, "invalid form")
		return
	}
	if len(r.MultipartForm.File["images"]) == 0 {
		detail(w, 400, "No images provided")
		return
	}
	s.SeedHouse(model.House{
		PropertyID:  uuid.NewString(),
		Category:    model.Category(r.FormValue("category")),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
	})
	detail(w, 201, "House added successfully")
}

func (s *Server) deleteHouse(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.houses, chi.URLParam(r, "propertyID"))
	s.mu.Unlock()
	detail(w, 200, "House deleted successfully")
}

func (s *Server) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil || len(r.MultipartForm.File["images"]) == 0 {
		detail(w, 400, "No images provided")
		return
	}
	detail(w, 200, "Images uploaded successfully")
}

func (s *Server) roomPage() model.Page[model.Room] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := model.Page[model.Room]{Count: len(s.rooms), Results: []model.Room{}}
	for _, room := range s.rooms {
		page.Results = append(page.Results, room)
	}
	return page
}

func (s *Server) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.roomPage())
}

func (s *Server) listRoomsPublic(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.roomPage())
}

func (s *Server) roomDetail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	room, ok := s.rooms[chi.URLParam(r, "propertyID")]
	s.mu.Unlock()
	if !ok {
		detail(w, 404, "room not found")
		return
	}
	writeJSON(w, 200, room)
}

func (s *Server) addRoom(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		detail(w, 400, "invalid form")
		return
	}
	if len(r.MultipartForm.File["images"]) == 0 {
		detail(w, 400, "No images provided")
		return
	}
	s.SeedRoom(model.Room{
		PropertyID:   uuid.NewString(),
		RoomCategory: model.RoomCategory(r.FormValue("room_category")),
		Price:        r.FormValue("price"),
	})
	detail(w, 201, "Room added successfully")
}

func (s *Server) deleteRoom(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.rooms, chi.URLParam(r, "propertyID"))
	s.mu.Unlock()
	detail(w, 200, "Room deleted successfully")
}

func (s *Server) landPage() model.Page[model.Land] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := model.Page[model.Land]{Count: len(s.lands), Results: []model.Land{}}
	for _, land := range s.lands {
		page.Results = append(page.Results, land)
	}
	return page
}

func (s *Server) listLands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.landPage())
}

func (s *Server) listLandsPublic(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, s.landPage())
}

func (s *Server) landDetail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	land, ok := s.lands[chi.URLParam(r, "landID")]
	s.mu.Unlock()
	if !ok {
		detail(w, 404, "land not found")
		return
	}
	writeJSON(w, 200, land)
}

func (s *Server) addLand(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		detail(w, 400, "invalid form")
		return
	}
	if len(r.MultipartForm.File["images"]) == 0 {
		detail(w, 400, "No images provided")
		return
	}
	s.SeedLand(model.Land{
		LandID:   uuid.NewString(),
		Category: model.LandType(r.FormValue("category")),
		Price:    r.FormValue("price"),
	})
	detail(w, 201, "Land added successfully")
}

func (s *Server) deleteLand(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.lands, chi.URLParam(r, "landID"))
	s.mu.Unlock()
	detail(w, 200, "Land deleted successfully")
}

func (s *Server) listPlans(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, []model.Plan{
		{SubscriptionPlanID: "plan-free", Name: "Free", Price: "0.00", MaxHouses: 3, DurationDays: 30},
		{SubscriptionPlanID: "plan-pro", Name: "Pro", Price: "25000.00", MaxHouses: 50, DurationDays: 30},
	})
}

func (s *Server) account(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, model.Account{
		AccountID: "acc-1",
		Plan:      model.Plan{SubscriptionPlanID: "plan-free", Name: "Free", Price: "0.00", MaxHouses: 3, DurationDays: 30},
		IsActive:  true,
		Agent:     Username,
	})
}

func (s *Server) bookingList(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("customer_name")
	bookings := []model.Booking{
		{BookingID: "book-1", PropertyID: "prop-1", PropertyType: "house", CustomerName: "Neema", PhoneNumber: "+255700000001"},
		{BookingID: "book-2", PropertyID: "prop-2", PropertyType: "room", CustomerName: "Juma", PhoneNumber: "+255700000002"},
	}
	page := model.Page[model.Booking]{Results: []model.Booking{}}
	for _, b := range bookings {
		if name == "" || strings.Contains(strings.ToLower(b.CustomerName), strings.ToLower(name)) {
			page.Results = append(page.Results, b)
		}
	}
	page.Count = len(page.Results)
	writeJSON(w, 200, page)
}

func (s *Server) bookingDetail(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, model.BookedPropertyDetail{
		Booking:  model.Booking{BookingID: chi.URLParam(r, "bookingID"), CustomerName: "Neema"},
		Price:    "450000.00",
		Category: "rental",
	})
}

func (s *Server) companyInformation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, model.CompanyInformation{
		CompanyName: "Kedesh",
		Email:       "info@kedesh.example",
		PhoneNumber: "+255700000000",
		Address:     "Dar es Salaam",
	})
}

func (s *Server) demoProperties(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, []model.DemoProperty{
		{PropertyID: "demo-1", PropertyType: "house", Price: "300000.00", Status: model.StatusAvailable},
	})
}
