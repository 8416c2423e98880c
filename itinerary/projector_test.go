package itinerary

import (
	"encoding/json"
	"testing"

	"wayfare/models"
)

func lodging(id, start, end, checkInTime string) models.ItineraryRecord {
	return models.ItineraryRecord{
		RecordID: id,
		Kind:     models.KindActivity,
		Category: models.CategoryLodging,
		StartDay: start,
		EndDay:   end,
		Time:     checkInTime,
	}
}

func activity(id, day, tm string) models.ItineraryRecord {
	return models.ItineraryRecord{
		RecordID: id,
		Kind:     models.KindActivity,
		Category: models.CategorySightseeing,
		StartDay: day,
		Time:     tm,
	}
}

func flight(id, day, dep, arr string) models.ItineraryRecord {
	return models.ItineraryRecord{
		RecordID:    id,
		Kind:        models.KindFlight,
		StartDay:    day,
		Time:        dep,
		ArrivalTime: arr,
	}
}

func TestExpandSingleItems(t *testing.T) {
	records := []models.ItineraryRecord{
		activity("a1", "2024-03-10", "14:00"),
		flight("f1", "2024-03-10", "06:00", "08:00"),
		lodging("l1", "2024-03-10", "", "15:00"),           // no end day
		lodging("l2", "2024-03-10", "2024-03-10", "15:00"), // end == start
	}
	items := Expand(records)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Virtual {
			t.Errorf("record %s: single item must not be virtual", it.Record.RecordID)
		}
		if it.LodgingPhase != models.PhaseNone {
			t.Errorf("record %s: expected phase None, got %s", it.Record.RecordID, it.LodgingPhase)
		}
		if it.DisplayDay != it.Record.StartDay {
			t.Errorf("record %s: display day %s != start day %s", it.Record.RecordID, it.DisplayDay, it.Record.StartDay)
		}
	}
}

func TestExpandMultiDayLodging(t *testing.T) {
	items := Expand([]models.ItineraryRecord{lodging("l1", "2024-03-10", "2024-03-13", "15:00")})
	if len(items) != 4 {
		t.Fatalf("expected 4 items for a 4-day stay, got %d", len(items))
	}
	wantDays := []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13"}
	wantPhases := []models.LodgingPhase{
		models.PhaseCheckIn, models.PhaseStaying, models.PhaseStaying, models.PhaseCheckOut,
	}
	for i, it := range items {
		if it.DisplayDay != wantDays[i] {
			t.Errorf("item %d: day %s, want %s", i, it.DisplayDay, wantDays[i])
		}
		if it.LodgingPhase != wantPhases[i] {
			t.Errorf("item %d: phase %s, want %s", i, it.LodgingPhase, wantPhases[i])
		}
		if it.Virtual != (i != 0) {
			t.Errorf("item %d: virtual=%v", i, it.Virtual)
		}
	}
}

func TestExpandTwoDayStayHasNoStaying(t *testing.T) {
	items := Expand([]models.ItineraryRecord{lodging("l1", "2024-03-10", "2024-03-11", "15:00")})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].LodgingPhase != models.PhaseCheckIn || items[1].LodgingPhase != models.PhaseCheckOut {
		t.Fatalf("expected CheckIn then CheckOut, got %s then %s", items[0].LodgingPhase, items[1].LodgingPhase)
	}
	if !items[1].Virtual {
		t.Fatal("checkout of a two-day stay must be virtual")
	}
}

func TestExpandInvertedRangeFallsBackToSingleDay(t *testing.T) {
	items := Expand([]models.ItineraryRecord{lodging("l1", "2024-03-13", "2024-03-10", "15:00")})
	if len(items) != 1 {
		t.Fatalf("expected single-day fallback, got %d items", len(items))
	}
	if items[0].DisplayDay != "2024-03-13" || items[0].Virtual || items[0].LodgingPhase != models.PhaseNone {
		t.Fatalf("unexpected fallback item: %+v", items[0])
	}
}

func TestGroupingIsAPartition(t *testing.T) {
	records := []models.ItineraryRecord{
		lodging("l1", "2024-03-10", "2024-03-13", "15:00"),
		activity("a1", "2024-03-11", "09:00"),
		flight("f1", "2024-03-10", "06:00", "08:00"),
	}
	view := Project(records)
	total := 0
	for _, day := range view.Days {
		total += len(view.Items[day])
	}
	if want := len(Expand(records)); total != want {
		t.Fatalf("partition lost items: %d grouped vs %d expanded", total, want)
	}
	for i := 1; i < len(view.Days); i++ {
		if view.Days[i-1] >= view.Days[i] {
			t.Fatalf("days not strictly ascending: %v", view.Days)
		}
	}
	for day, items := range view.Items {
		for _, it := range items {
			if it.DisplayDay != day {
				t.Errorf("item for %s filed under %s", it.DisplayDay, day)
			}
		}
	}
}

func TestDayOrderingScenario(t *testing.T) {
	// The §8-style scenario: checkout first, early flight before check-in,
	// then check-in, then the afternoon activity.
	records := []models.ItineraryRecord{
		activity("act", "2024-03-12", "14:00"),
		lodging("old", "2024-03-10", "2024-03-12", "12:00"), // checks out on the 12th
		flight("fly", "2024-03-12", "06:00", "08:00"),
		lodging("new", "2024-03-12", "2024-03-14", "15:00"), // checks in on the 12th
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	if len(items) != 4 {
		t.Fatalf("expected 4 items on 2024-03-12, got %d", len(items))
	}
	wantOrder := []string{"old", "fly", "new", "act"}
	for i, id := range wantOrder {
		if items[i].Record.RecordID != id {
			t.Fatalf("position %d: got %s, want %s (full order: %v)", i, items[i].Record.RecordID, id, orderOf(items))
		}
	}
	if items[0].LodgingPhase != models.PhaseCheckOut {
		t.Errorf("first item should be the checkout, got phase %s", items[0].LodgingPhase)
	}
}

func TestFlightLandingAfterCheckInSortsAfterIt(t *testing.T) {
	records := []models.ItineraryRecord{
		flight("fly", "2024-03-12", "14:00", "16:00"),
		lodging("new", "2024-03-12", "2024-03-14", "15:00"),
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	if items[0].Record.RecordID != "new" || items[1].Record.RecordID != "fly" {
		t.Fatalf("16:00 flight must sort after 15:00 check-in, got %v", orderOf(items))
	}
}

func TestFlightWithoutArrivalUsesDepartureTime(t *testing.T) {
	records := []models.ItineraryRecord{
		flight("fly", "2024-03-12", "08:00", ""),
		lodging("new", "2024-03-12", "2024-03-14", "15:00"),
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	if items[0].Record.RecordID != "fly" {
		t.Fatalf("08:00 departure with no arrival should count as landing before 15:00, got %v", orderOf(items))
	}
}

func TestCheckOutBeforeCheckInBeforeStayingRegardlessOfTimes(t *testing.T) {
	records := []models.ItineraryRecord{
		lodging("stay", "2024-03-11", "2024-03-13", "01:00"), // staying on the 12th
		lodging("out", "2024-03-10", "2024-03-12", "23:00"),  // checkout on the 12th
		lodging("in", "2024-03-12", "2024-03-14", "02:00"),   // check-in on the 12th
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	phases := make([]models.LodgingPhase, len(items))
	for i, it := range items {
		phases[i] = it.LodgingPhase
	}
	want := []models.LodgingPhase{models.PhaseCheckOut, models.PhaseCheckIn, models.PhaseStaying}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phase order %v, want %v", phases, want)
		}
	}
}

func TestMissingTimeSortsFirstWithinBucket(t *testing.T) {
	records := []models.ItineraryRecord{
		activity("timed", "2024-03-12", "09:00"),
		activity("untimed", "2024-03-12", ""),
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	if items[0].Record.RecordID != "untimed" {
		t.Fatalf("empty time must sort before timed items, got %v", orderOf(items))
	}
}

func TestStableOrderForEqualKeys(t *testing.T) {
	records := []models.ItineraryRecord{
		activity("first", "2024-03-12", "10:00"),
		activity("second", "2024-03-12", "10:00"),
		activity("third", "2024-03-12", "10:00"),
	}
	view := Project(records)
	if got := orderOf(view.Items["2024-03-12"]); got[0] != "first" || got[1] != "second" || got[2] != "third" {
		t.Fatalf("equal keys must keep input order, got %v", got)
	}
}

func TestFlightSortsEarlyUnderSentinelCheckIn(t *testing.T) {
	records := []models.ItineraryRecord{
		activity("act", "2024-03-12", "07:00"),
		flight("fly", "2024-03-12", "06:00", "09:00"),
	}
	view := Project(records)
	items := view.Items["2024-03-12"]
	// Without a check-in item the sentinel 23:59 still puts the flight in
	// the early bucket, ahead of same-day activities.
	if items[0].Record.RecordID != "fly" {
		t.Fatalf("expected flight first under sentinel check-in, got %v", orderOf(items))
	}
}

func TestProjectionIsIdempotent(t *testing.T) {
	records := []models.ItineraryRecord{
		lodging("l1", "2024-03-10", "2024-03-13", "15:00"),
		activity("a1", "2024-03-11", "09:00"),
		activity("a2", "2024-03-11", ""),
		flight("f1", "2024-03-10", "06:00", "08:00"),
	}
	first, err := json.Marshal(Project(records))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Project(records))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatal("re-running the projection changed the output")
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	records := []models.ItineraryRecord{
		lodging("l1", "2024-03-10", "2024-03-13", "15:00"),
		activity("a1", "2024-03-11", "09:00"),
	}
	before, _ := json.Marshal(records)
	Project(records)
	after, _ := json.Marshal(records)
	if string(before) != string(after) {
		t.Fatal("projection mutated its input records")
	}
}

func orderOf(items []models.DisplayItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.Record.RecordID
	}
	return ids
}
