package models

// LodgingPhase is the role a calendar day plays within a multi-day stay.
// It exists only on expanded DisplayItems, never on the base record.
type LodgingPhase string

const (
	PhaseNone     LodgingPhase = ""
	PhaseCheckIn  LodgingPhase = "checkin"
	PhaseStaying  LodgingPhase = "staying"
	PhaseCheckOut LodgingPhase = "checkout"
)

// DisplayItem is one projection instance of a record under one calendar day.
// Derived and ephemeral: recomputed on every change, identified only by
// (record ID, DisplayDay), never persisted or mutated.
type DisplayItem struct {
	Record       ItineraryRecord `json:"record"`
	DisplayDay   string          `json:"display_day"`
	LodgingPhase LodgingPhase    `json:"lodging_phase,omitempty"`
	// Virtual is true for every instance except the one anchored on the
	// record's start day.
	Virtual bool `json:"virtual"`
}

// DayView is the full display projection handed to the UI: the ascending
// list of calendar dates present, and the ordered items under each.
type DayView struct {
	Days  []string                 `json:"days"`
	Items map[string][]DisplayItem `json:"items"`
}
