package planner

import (
	"testing"

	"wayfare/models"
)

func TestGeneratePlanCoversRange(t *testing.T) {
	trip := models.Trip{
		TripID:      "t1",
		Destination: "Lisbon",
		StartDate:   "2024-03-10",
		EndDate:     "2024-03-13",
	}
	records := GeneratePlan(trip, "u1")
	if len(records) == 0 {
		t.Fatal("expected generated records")
	}

	// Exactly one lodging stay, spanning the whole range.
	var lodgings []models.ItineraryRecord
	for _, rec := range records {
		if rec.IsLodging() {
			lodgings = append(lodgings, rec)
		}
	}
	if len(lodgings) != 1 {
		t.Fatalf("expected one lodging record, got %d", len(lodgings))
	}
	if lodgings[0].StartDay != "2024-03-10" || lodgings[0].EndDay != "2024-03-13" {
		t.Fatalf("lodging range %s..%s, want full trip range", lodgings[0].StartDay, lodgings[0].EndDay)
	}

	// Every record lands inside the trip range and is attributed.
	for _, rec := range records {
		if rec.StartDay < "2024-03-10" || rec.StartDay > "2024-03-13" {
			t.Errorf("record %q on %s is outside the trip range", rec.Title, rec.StartDay)
		}
		if rec.TripID != "t1" || rec.UserID != "u1" {
			t.Errorf("record %q not attributed to trip/user", rec.Title)
		}
	}
}

func TestGeneratePlanSingleDayTrip(t *testing.T) {
	trip := models.Trip{TripID: "t1", StartDate: "2024-03-10", EndDate: "2024-03-10"}
	records := GeneratePlan(trip, "u1")
	for _, rec := range records {
		if rec.IsLodging() && rec.EndDay != "" {
			t.Fatalf("single-day trip must not produce a multi-day stay, got end day %s", rec.EndDay)
		}
	}
}

func TestGeneratePlanInvalidRange(t *testing.T) {
	trip := models.Trip{TripID: "t1", StartDate: "2024-03-13", EndDate: "2024-03-10"}
	if records := GeneratePlan(trip, "u1"); records != nil {
		t.Fatalf("inverted trip range should yield no records, got %d", len(records))
	}
}
