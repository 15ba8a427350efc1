// Package endpoints is the registry of API paths, one entry per remote
// operation. It is a pure lookup table: callers supply well-formed ids and
// no validation happens here.
package endpoints

import (
	"fmt"
	"net/url"
)

const (
	Login             = "/auth/sign-in"
	SignOut           = "/auth/sign-out"
	Plans             = "/account/plans/get_subscription/"
	Account           = "/account/accounts/account/"
	Subscribe         = "/account/plans/subscribe/"
	AgentRegistration = "/user/agents/register/"
	// Avatar has no caller here; avatar URLs come back inside listing
	// payloads and browsers fetch them directly.
	Avatar            = "/user/users/serve_avatar/"
	Regions           = "/location/regions/list_regions/"
	Districts         = "/location/districts/list_districts/"
	AddHouse          = "/house/houses/add_house/"
	AddRoom           = "/room/rooms/add_room/"
	AddLand           = "/land/lands/add_land/"
	RoomList          = "/room/rooms/room_list/"
	HouseList         = "/house/houses/list_houses/"
	LandList          = "/land/lands/land_list/"
	UploadHouseImages = "/house/images/upload_images/"
	FilterHouses      = "/house/houses/filter_houses/"
	FilterRooms       = "/room/rooms/room_filter/"
	FilterLands       = "/land/lands/land_filter/"
	// MakeBooking is registered but unused; the web client records
	// bookings through RequestAgentInfo instead.
	MakeBooking        = "/booking/bookings/make_booking/"
	RequestAgentInfo   = "/booking/bookings/request_agent_info/"
	RequestLandInfo    = "/land/lands/request_agent_info/"
	CompanyInformation = "/company_information/informations/get_information/"
	DemoProperties     = "/property/properties/demo_property/"
)

func ClientHouseDetail(propertyID string) string {
	return fmt.Sprintf("/house/houses/%s/house_detail/", propertyID)
}

func ClientRoomDetail(propertyID string) string {
	return fmt.Sprintf("/room/rooms/%s/room_detail/", propertyID)
}

func RetrieveHouse(propertyID string) string {
	return fmt.Sprintf("/house/houses/%s/retrieve_house/", propertyID)
}

func RetrieveRoom(propertyID string) string {
	return fmt.Sprintf("/room/rooms/%s/retrieve_room/", propertyID)
}

func RetrieveLand(landID string) string {
	return fmt.Sprintf("/land/lands/%s/retrieve_land/", landID)
}

func LandDetails(landID string) string {
	return fmt.Sprintf("/land/lands/%s/retrieve_land_details/", landID)
}

func DistrictsByRegion(regionID string) string {
	return fmt.Sprintf("/location/districts/%s/retrieve_region_districts/", regionID)
}

func WardsByDistrict(districtID string) string {
	return fmt.Sprintf("/location/wards/%s/retrieve_district_wards/", districtID)
}

func StreetsByWard(wardID string) string {
	return fmt.Sprintf("/location/streets/%s/retrieve_ward_streets/", wardID)
}

func AgentBookingList(customerName string) string {
	return "/booking/bookings/agent_booked_properties/?customer_name=" + url.QueryEscape(customerName)
}

func AgentBookedPropertyDetail(bookingID string) string {
	return fmt.Sprintf("/booking/bookings/%s/agent_booked_property/", bookingID)
}

func MarkPropertyRented(propertyID string) string {
	return fmt.Sprintf("/property/properties/%s/mark_property_rented/", propertyID)
}

func MarkPropertySold(propertyID string) string {
	return fmt.Sprintf("/property/properties/%s/mark_property_sold/", propertyID)
}

func MarkPropertyAvailable(propertyID string) string {
	return fmt.Sprintf("/property/properties/%s/mark_property_available/", propertyID)
}

func SoftDeleteHouse(propertyID string) string {
	return fmt.Sprintf("/house/houses/%s/soft_delete_house/", propertyID)
}

func SoftDeleteRoom(propertyID string) string {
	return fmt.Sprintf("/room/rooms/%s/soft_delete_room/", propertyID)
}

func SoftDeleteLand(landID string) string {
	return fmt.Sprintf("/land/lands/%s/soft_delete_land/", landID)
}
