package model

type Plan struct {
	SubscriptionPlanID string `json:"subscription_plan_id"`
	Name               string `json:"name"`
	Price              string `json:"price"`
	MaxHouses          int    `json:"max_houses"`
	DurationDays       int    `json:"duration_days"`
}

type Account struct {
	AccountID string `json:"account_id"`
	Plan      Plan   `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
	Agent     string `json:"agent"`
}
