package itinerary

import (
	"sort"

	"wayfare/dates"
	"wayfare/models"
)

// The day-view projector turns a trip's flat record set into the per-day,
// fully ordered projection the client renders. It is pure: records are never
// mutated, every DisplayItem is freshly allocated, and the whole thing is
// recomputed from scratch on every call (cheap at itinerary sizes, and the
// only way to stay correct under live updates).

// noCheckInSentinel makes every flight land "after check-in" on days that
// have no check-in item.
const noCheckInSentinel = "23:59"

// Project runs expansion, grouping and within-day ordering over a full
// record snapshot.
func Project(records []models.ItineraryRecord) models.DayView {
	items := Expand(records)
	grouped := groupByDay(items)
	for day := range grouped.Items {
		sortDay(grouped.Items[day])
	}
	return grouped
}

// Expand materializes every record into its DisplayItems. Multi-day lodging
// becomes one item per covered calendar day; everything else becomes a
// single non-virtual item on its start day.
func Expand(records []models.ItineraryRecord) []models.DisplayItem {
	var items []models.DisplayItem
	for i := range records {
		items = append(items, expandRecord(records[i])...)
	}
	return items
}

func expandRecord(rec models.ItineraryRecord) []models.DisplayItem {
	if rec.IsLodging() && rec.EndDay != "" && rec.EndDay != rec.StartDay {
		days := dates.Enumerate(rec.StartDay, rec.EndDay)
		// Inverted range: treat as a single-day stay rather than dropping
		// the record.
		if len(days) > 1 {
			items := make([]models.DisplayItem, 0, len(days))
			for i, day := range days {
				phase := models.PhaseStaying
				switch i {
				case 0:
					phase = models.PhaseCheckIn
				case len(days) - 1:
					phase = models.PhaseCheckOut
				}
				items = append(items, models.DisplayItem{
					Record:       rec,
					DisplayDay:   day,
					LodgingPhase: phase,
					Virtual:      i != 0,
				})
			}
			return items
		}
	}
	return []models.DisplayItem{{
		Record:       rec,
		DisplayDay:   rec.StartDay,
		LodgingPhase: models.PhaseNone,
	}}
}

// groupByDay partitions items by display day. Days come only from the data;
// the trip's own date range plays no part here.
func groupByDay(items []models.DisplayItem) models.DayView {
	view := models.DayView{Items: make(map[string][]models.DisplayItem)}
	for _, it := range items {
		if _, seen := view.Items[it.DisplayDay]; !seen {
			view.Days = append(view.Days, it.DisplayDay)
		}
		view.Items[it.DisplayDay] = append(view.Items[it.DisplayDay], it)
	}
	sort.Strings(view.Days)
	return view
}

// sortDay orders one day's items in place: checkout first, then flights
// landing before today's check-in, then the check-in itself, then regular
// activities and later flights, with the "staying tonight" reminder last.
// Ties break on raw "HH:MM" string comparison; an empty time sorts first.
func sortDay(items []models.DisplayItem) {
	checkIn := noCheckInSentinel
	for _, it := range items {
		if it.LodgingPhase == models.PhaseCheckIn {
			checkIn = it.Record.Time
			break
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		bi, bj := bucket(items[i], checkIn), bucket(items[j], checkIn)
		if bi != bj {
			return bi < bj
		}
		return effectiveTime(items[i]) < effectiveTime(items[j])
	})
}

func bucket(it models.DisplayItem, checkInTime string) int {
	switch it.LodgingPhase {
	case models.PhaseCheckOut:
		return 0
	case models.PhaseCheckIn:
		return 2
	case models.PhaseStaying:
		return 4
	}
	if it.Record.Kind == models.KindFlight && effectiveTime(it) < checkInTime {
		return 1
	}
	return 3
}

// effectiveTime is what a traveler experiences: for flights the landing
// time when known, otherwise the departure; for everything else the item's
// own time.
func effectiveTime(it models.DisplayItem) string {
	if it.Record.Kind == models.KindFlight && it.Record.ArrivalTime != "" {
		return it.Record.ArrivalTime
	}
	return it.Record.Time
}
