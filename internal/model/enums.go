package model

type Category string

const (
	CategoryRental Category = "Rental"
	CategorySale   Category = "Sale"
)

type RoomCategory string

const (
	RoomSelfContained RoomCategory = "Self-contained"
	RoomShared        RoomCategory = "Shared"
	RoomSingle        RoomCategory = "Single Room"
	RoomDouble        RoomCategory = "Double Room"
)

type LandType string

const (
	LandResidential  LandType = "Residential"
	LandCommercial   LandType = "Commercial"
	LandAgricultural LandType = "Agricultural"
	LandMixedUse     LandType = "Mixed-use"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "Available"
	StatusBooked    PropertyStatus = "Booked"
	StatusRented    PropertyStatus = "Rented"
	StatusSold      PropertyStatus = "Sold"
)

type Condition string

const (
	ConditionUsed              Condition = "Used"
	ConditionNew               Condition = "New"
	ConditionRenovated         Condition = "Renovated"
	ConditionUnderConstruction Condition = "Under Construction"
)

type FurnishingStatus string

const (
	FullyFurnished     FurnishingStatus = "Fully Furnished"
	PartiallyFurnished FurnishingStatus = "Partially Furnished"
	Unfurnished        FurnishingStatus = "Unfurnished"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)
