package models

// RecordKind distinguishes the two itinerary record variants. Stored as a
// string so documents stay readable in Mongo.
type RecordKind string

const (
	KindActivity RecordKind = "activity"
	KindFlight   RecordKind = "flight"
)

// Activity categories. Lodging is the only one with multi-day semantics.
const (
	CategorySightseeing   = "sightseeing"
	CategoryFood          = "food"
	CategoryLodging       = "lodging"
	CategoryNature        = "nature"
	CategoryShopping      = "shopping"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
)

var ValidCategories = map[string]bool{
	CategorySightseeing:   true,
	CategoryFood:          true,
	CategoryLodging:       true,
	CategoryNature:        true,
	CategoryShopping:      true,
	CategoryTransport:     true,
	CategoryEntertainment: true,
}

// ItineraryRecord is a single planned item belonging to a trip. Dates are
// ISO "2006-01-02" strings, clock times are zero-padded "HH:MM" strings;
// both are compared lexically throughout and never parsed into time.Time
// except for calendar arithmetic.
type ItineraryRecord struct {
	RecordID string     `json:"recordid" bson:"recordid"`
	TripID   string     `json:"tripid" bson:"tripid"`
	UserID   string     `json:"user_id" bson:"user_id"`
	Kind     RecordKind `json:"kind" bson:"kind"`
	// Category is set for activities only.
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Title    string `json:"title" bson:"title"`
	StartDay string `json:"start_day" bson:"start_day"`
	// EndDay is set only on lodging; empty or equal to StartDay means a
	// single-day stay.
	EndDay      string `json:"end_day,omitempty" bson:"end_day,omitempty"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	ArrivalTime string `json:"arrival_time,omitempty" bson:"arrival_time,omitempty"`
	Completed   bool   `json:"completed" bson:"completed"`

	// Passthrough fields, opaque to the projector.
	Location   string     `json:"location,omitempty" bson:"location,omitempty"`
	Arrival    string     `json:"arrival,omitempty" bson:"arrival,omitempty"`
	Notes      string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Lat        float64    `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon        float64    `json:"lon,omitempty" bson:"lon,omitempty"`
	Enrichment Enrichment `json:"enrichment,omitempty" bson:"enrichment,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Enrichment holds place-lookup data attached by the places collaborator.
type Enrichment struct {
	PlaceID     string  `json:"place_id,omitempty" bson:"place_id,omitempty"`
	DisplayName string  `json:"display_name,omitempty" bson:"display_name,omitempty"`
	Lat         float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty" bson:"lon,omitempty"`
}

// IsLodging reports whether the record is a lodging activity.
func (r *ItineraryRecord) IsLodging() bool {
	return r.Kind == KindActivity && r.Category == CategoryLodging
}
