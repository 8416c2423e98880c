package itinerary

import (
	"testing"

	"wayfare/models"
)

func TestValidateRecord(t *testing.T) {
	cases := []struct {
		name   string
		rec    models.ItineraryRecord
		wantOK bool
	}{
		{"valid activity", models.ItineraryRecord{Kind: models.KindActivity, Category: models.CategoryFood, StartDay: "2024-03-10"}, true},
		{"valid flight", models.ItineraryRecord{Kind: models.KindFlight, StartDay: "2024-03-10", Time: "06:00", ArrivalTime: "08:00"}, true},
		{"valid lodging with end day", models.ItineraryRecord{Kind: models.KindActivity, Category: models.CategoryLodging, StartDay: "2024-03-10", EndDay: "2024-03-13"}, true},
		{"missing kind", models.ItineraryRecord{StartDay: "2024-03-10"}, false},
		{"activity without category", models.ItineraryRecord{Kind: models.KindActivity, StartDay: "2024-03-10"}, false},
		{"unknown category", models.ItineraryRecord{Kind: models.KindActivity, Category: "karaoke", StartDay: "2024-03-10"}, false},
		{"flight with category", models.ItineraryRecord{Kind: models.KindFlight, Category: models.CategoryFood, StartDay: "2024-03-10"}, false},
		{"bad start day", models.ItineraryRecord{Kind: models.KindActivity, Category: models.CategoryFood, StartDay: "10/03/2024"}, false},
		{"end day on non-lodging", models.ItineraryRecord{Kind: models.KindActivity, Category: models.CategoryFood, StartDay: "2024-03-10", EndDay: "2024-03-12"}, false},
		{"bad end day", models.ItineraryRecord{Kind: models.KindActivity, Category: models.CategoryLodging, StartDay: "2024-03-10", EndDay: "soon"}, false},
	}
	for _, tc := range cases {
		msg := validateRecord(&tc.rec)
		if tc.wantOK && msg != "" {
			t.Errorf("%s: unexpected validation error %q", tc.name, msg)
		}
		if !tc.wantOK && msg == "" {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}
