// Package models defines the restaurant records and related value types
// shared by the state, API, and presentation layers.
package models

// Category classifies a restaurant. The wire field stays freeform text, so
// unknown server-side values survive a round trip unchanged.
type Category string

const (
	CategorySnack        Category = "snack"
	CategoryGeneralStore Category = "general-store"
	CategoryRestaurant   Category = "restaurant"
	CategoryBar          Category = "bar"
	CategoryFastFood     Category = "fast-food"

	// CategoryAll is the filter sentinel matching every record.
	CategoryAll Category = "all"
)

// Categories lists the selectable categories, without the sentinel.
var Categories = []Category{
	CategorySnack,
	CategoryGeneralStore,
	CategoryRestaurant,
	CategoryBar,
	CategoryFastFood,
}

// Restaurant is a server-persisted record. JSON field names follow the
// backend contract (id_restaurant, restaurant_name, ...).
type Restaurant struct {
	ID        int64    `json:"id_restaurant,omitempty"`
	Name      string   `json:"restaurant_name"`
	Category  string   `json:"description,omitempty"`
	MenuLink  string   `json:"menu_link"`
	Address   string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Draft is a restaurant composed client-side before it has a server-assigned
// id. Latitude/Longitude stay nil when location permission was denied or
// unavailable at capture time.
type Draft struct {
	Name      string   `json:"restaurant_name" validate:"required"`
	Category  string   `json:"description,omitempty" validate:"omitempty,category"`
	MenuLink  string   `json:"menu_link" validate:"required,url"`
	Address   string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// HasCoordinates reports whether both coordinates are present.
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
