package service

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seranise/kedesh-go/internal/apitest"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/query"
	"github.com/seranise/kedesh-go/internal/transport"
)

// staticTokens satisfies TokenSource without a session.
type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, api *apitest.Server) *transport.Client {
	t.Helper()

	srv := httptest.NewServer(api.Router)
	t.Cleanup(srv.Close)
	return transport.New(srv.URL)
}

func oneImage() []form.File {
	return []form.File{{Name: "img.jpg", Reader: strings.NewReader("jpeg")}}
}

func TestLocations(t *testing.T) {
	api := apitest.New()
	s := NewLocations(newTestClient(t, api))
	ctx := context.Background()

	require.NoError(t, s.FetchRegions(ctx))
	regions := s.Regions()
	assert.Len(t, regions.Data, 2)
	assert.Equal(t, "Dar es Salaam", regions.Data[0].Name)

	require.NoError(t, s.FetchRegionDistricts(ctx, regions.Data[0].RegionID))
	districts := s.Districts()
	require.Len(t, districts.Data, 1)
	assert.Equal(t, regions.Data[0].RegionID, districts.Data[0].Region)

	require.NoError(t, s.FetchDistrictWards(ctx, districts.Data[0].DistrictID))
	require.Len(t, s.Wards().Data, 1)

	require.NoError(t, s.FetchWardStreets(ctx, s.Wards().Data[0].WardID))
	assert.Len(t, s.Streets().Data, 1)

	s.ResetDistricts()
	assert.Nil(t, s.Districts().Data)
}

func TestHousesFiltered(t *testing.T) {
	t.Run("sends the encoded filter query", func(t *testing.T) {
		api := apitest.New()
		s := NewHouses(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		s.Filter.SetCategory(query.S("Rental"))
		s.Filter.SetRegion(query.S("Dodoma"))
		require.NoError(t, s.FetchFiltered(context.Background()))

		assert.Equal(t, "category=Rental&region=Dodoma", api.FilterQuery("house"))
	})

	t.Run("an empty filter sends no query string", func(t *testing.T) {
		api := apitest.New()
		s := NewHouses(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		require.NoError(t, s.FetchFiltered(context.Background()))

		assert.Equal(t, "", api.FilterQuery("house"))
	})

	t.Run("changing the page discards stale results", func(t *testing.T) {
		api := apitest.New()
		api.SeedHouse(model.House{Category: "Rental"})
		s := NewHouses(newTestClient(t, api), staticTokens(""), zerolog.Nop())
		require.NoError(t, s.FetchFiltered(context.Background()))
		require.Len(t, s.Filtered().Data.Results, 1)

		s.SetPage(query.S("2"))

		assert.Empty(t, s.Filtered().Data.Results)
		assert.Equal(t, "2", *s.Filter.Params().Page)
	})
}

func TestHousesMutations(t *testing.T) {
	t.Run("add stores the server detail and status", func(t *testing.T) {
		api := apitest.New()
		s := NewHouses(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		err := s.Add(context.Background(), form.HouseSubmission{
			Category: "Rental",
			Price:    "450000",
			Images:   oneImage(),
		})

		require.NoError(t, err)
		snap := s.AddResult()
		assert.Equal(t, "House added successfully", snap.Data)
		assert.Equal(t, 201, snap.StatusCode)
		assert.Equal(t, 1, api.HouseCount())
	})

	t.Run("add with no images is rejected before the wire", func(t *testing.T) {
		api := apitest.New()
		s := NewHouses(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		err := s.Add(context.Background(), form.HouseSubmission{Price: "450000"})

		assert.ErrorIs(t, err, form.ErrNoImages)
		snap := s.AddResult()
		assert.Equal(t, "No images provided", snap.Error)
		assert.Equal(t, 400, snap.StatusCode)
		assert.Equal(t, 0, api.HouseCount())
	})

	t.Run("delete refetches the agent list", func(t *testing.T) {
		api := apitest.New()
		id := api.SeedHouse(model.House{Category: "Rental"})
		api.SeedHouse(model.House{Category: "Sale"})
		s := NewHouses(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.Delete(context.Background(), id))

		assert.Equal(t, "House deleted successfully", s.DeleteResult().Data)
		// The post-delete refetch already ran; the list reflects the removal.
		assert.Equal(t, 1, s.List().Data.Count)
	})

	t.Run("image upload refetches the agent list", func(t *testing.T) {
		api := apitest.New()
		id := api.SeedHouse(model.House{Category: "Rental"})
		s := NewHouses(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		err := s.UploadImages(context.Background(), form.ImageUploadSubmission{
			PropertyID: id,
			Images:     oneImage(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Images uploaded successfully", s.ImageUploadResult().Data)
		assert.Equal(t, 1, s.List().Data.Count)
	})

	t.Run("a protected call without a bearer fails with the fallback", func(t *testing.T) {
		api := apitest.New()
		s := NewHouses(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		err := s.FetchList(context.Background())

		require.Error(t, err)
		assert.Equal(t, "Authentication credentials were not provided.", s.List().Error)
	})
}

func TestRoomsDelete(t *testing.T) {
	api := apitest.New()
	id := api.SeedRoom(model.Room{RoomCategory: "Self-contained"})
	s := NewRooms(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

	require.NoError(t, s.Delete(context.Background(), id))

	snap := s.DeleteResult()
	assert.Equal(t, "Room deleted successfully", snap.Data)
	assert.Equal(t, 200, snap.StatusCode)
	assert.Equal(t, 0, s.List().Data.Count)
}

func TestRoomsFiltered(t *testing.T) {
	api := apitest.New()
	s := NewRooms(newTestClient(t, api), staticTokens(""), zerolog.Nop())

	s.Filter.SetRoomCategory(query.S("Shared"))
	require.NoError(t, s.FetchFiltered(context.Background()))

	assert.Equal(t, "roomCategory=Shared", api.FilterQuery("room"))
}

func TestLands(t *testing.T) {
	t.Run("public details need no bearer", func(t *testing.T) {
		api := apitest.New()
		id := api.SeedLand(model.Land{Category: "Residential", Price: "12000000"})
		s := NewLands(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		require.NoError(t, s.FetchDetails(context.Background(), id))

		assert.Equal(t, model.LandResidential, s.Details().Data.Category)
	})

	t.Run("delete refetches the agent list", func(t *testing.T) {
		api := apitest.New()
		id := api.SeedLand(model.Land{Category: "Commercial"})
		s := NewLands(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.Delete(context.Background(), id))

		assert.Equal(t, "Land deleted successfully", s.DeleteResult().Data)
		assert.Equal(t, 0, s.List().Data.Count)
	})

	t.Run("agent info request is public and multipart", func(t *testing.T) {
		api := apitest.New()
		s := NewLands(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		err := s.RequestAgentInfo(context.Background(), form.BookingSubmission{
			PropertyID:   "land-1",
			CustomerName: "Neema",
			PhoneNumber:  "+255700000001",
		})

		require.NoError(t, err)
		assert.Equal(t, "Agent phone number sent", s.AgentInfo().Data)
	})

	t.Run("filtered search sends the encoded query", func(t *testing.T) {
		api := apitest.New()
		s := NewLands(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		s.Filter.SetCategory(query.S("Residential"))
		s.Filter.SetRegion(query.S("Dodoma"))
		require.NoError(t, s.FetchFiltered(context.Background()))

		assert.Equal(t, "category=Residential&region=Dodoma", api.FilterQuery("land"))
	})
}

func TestProperties(t *testing.T) {
	t.Run("mark transitions store the server detail", func(t *testing.T) {
		api := apitest.New()
		s := NewProperties(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())
		ctx := context.Background()

		require.NoError(t, s.MarkRented(ctx, "prop-1"))
		require.NoError(t, s.MarkSold(ctx, "prop-2"))
		require.NoError(t, s.MarkAvailable(ctx, "prop-3"))

		assert.Equal(t, "Property marked as rented", s.RentedResult().Data)
		assert.Equal(t, "Property marked as sold", s.SoldResult().Data)
		assert.Equal(t, "Property marked as available", s.AvailableResult().Data)
	})

	t.Run("each transition keeps its own slot", func(t *testing.T) {
		api := apitest.New()
		s := NewProperties(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.MarkRented(context.Background(), "prop-1"))

		assert.Empty(t, s.SoldResult().Data)
		assert.Empty(t, s.AvailableResult().Data)
	})

	t.Run("an unauthenticated mark keeps the http status", func(t *testing.T) {
		api := apitest.New()
		s := NewProperties(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		err := s.MarkSold(context.Background(), "prop-1")

		require.Error(t, err)
		snap := s.SoldResult()
		assert.Equal(t, 401, snap.StatusCode)
		assert.Equal(t, "Authentication credentials were not provided.", snap.Error)
	})
}

func TestAccount(t *testing.T) {
	t.Run("a zero-price plan raises the upgrade message", func(t *testing.T) {
		api := apitest.New()
		s := NewAccount(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.FetchAccount(context.Background()))

		assert.True(t, s.ShowUpgradeMessage())
		assert.Equal(t, "Free", s.Current().Data.Plan.Name)

		s.HideUpgradeMessage()
		assert.False(t, s.ShowUpgradeMessage())
	})

	t.Run("plans load without a bearer", func(t *testing.T) {
		api := apitest.New()
		s := NewAccount(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		require.NoError(t, s.FetchPlans(context.Background()))

		assert.Len(t, s.Plans().Data, 2)
	})

	t.Run("subscribe stores the server detail", func(t *testing.T) {
		api := apitest.New()
		s := NewAccount(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		err := s.Subscribe(context.Background(), form.SubscribeSubmission{
			PlanID:      "plan-pro",
			PhoneNumber: "+255700000000",
		})

		require.NoError(t, err)
		assert.Equal(t, "Subscription payment initiated", s.SubscribeResult().Data)
	})
}

func TestBooking(t *testing.T) {
	t.Run("book posts the visitor request", func(t *testing.T) {
		api := apitest.New()
		s := NewBooking(newTestClient(t, api), staticTokens(""), zerolog.Nop())

		err := s.Book(context.Background(), form.BookingSubmission{
			PropertyID:   "prop-1",
			CustomerName: "Neema",
			PhoneNumber:  "+255700000001",
		})

		require.NoError(t, err)
		snap := s.BookResult()
		assert.Equal(t, "Booking received", snap.Data)
		assert.Equal(t, 201, snap.StatusCode)
	})

	t.Run("the agent list filters by customer name", func(t *testing.T) {
		api := apitest.New()
		s := NewBooking(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.FetchList(context.Background(), "neema"))

		list := s.List()
		require.Equal(t, 1, list.Data.Count)
		assert.Equal(t, "Neema", list.Data.Results[0].CustomerName)
	})

	t.Run("an empty name lists everything", func(t *testing.T) {
		api := apitest.New()
		s := NewBooking(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.FetchList(context.Background(), ""))

		assert.Equal(t, 2, s.List().Data.Count)
	})

	t.Run("detail loads one booked property", func(t *testing.T) {
		api := apitest.New()
		s := NewBooking(newTestClient(t, api), staticTokens("tok"), zerolog.Nop())

		require.NoError(t, s.FetchDetail(context.Background(), "book-1"))

		assert.Equal(t, "book-1", s.Detail().Data.Booking.BookingID)
	})
}

func TestRegistration(t *testing.T) {
	api := apitest.New()
	s := NewRegistration(newTestClient(t, api), zerolog.Nop())

	err := s.Register(context.Background(), form.RegistrationSubmission{
		FirstName:   "Asha",
		LastName:    "Mkwawa",
		Gender:      "Female",
		PhoneNumber: "+255700000000",
		Email:       "asha@kedesh.example",
		Password:    "secret",
	})

	require.NoError(t, err)
	snap := s.Result()
	assert.Equal(t, "Agent registered successfully", snap.Data)
	assert.Equal(t, 201, snap.StatusCode)
}

func TestCompany(t *testing.T) {
	api := apitest.New()
	s := NewCompany(newTestClient(t, api))
	ctx := context.Background()

	require.NoError(t, s.FetchInformation(ctx))
	assert.Equal(t, "Kedesh", s.Information().Data.CompanyName)

	require.NoError(t, s.FetchDemoProperties(ctx))
	assert.Len(t, s.DemoProperties().Data, 1)
}
