package models

// FoodStats is the aggregate view over the whole foods collection.
// Safe is derived by subtraction; expired and nearly-expired windows are
// disjoint so the three buckets partition the total.
type FoodStats struct {
	Total         int64 `json:"total"`
	Expired       int64 `json:"expired"`
	NearlyExpired int64 `json:"nearlyExpired"`
	Safe          int64 `json:"safe"`
}
