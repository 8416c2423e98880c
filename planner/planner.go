// Package planner seeds a trip's itinerary from its date range. A real
// deployment would swap the canned pools for a generative-AI call; the
// records it writes go through the normal collection so the projector and
// sync path treat them like any user edit.
package planner

import (
	"context"
	"net/http"
	"time"

	"wayfare/dates"
	"wayfare/db"
	"wayfare/models"
	"wayfare/mq"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type pick struct {
	Title    string
	Time     string
	Location string
}

var pools = map[string][]pick{
	models.CategorySightseeing: {
		{"Old town walk", "10:00", "City Center"},
		{"Castle and ramparts", "09:30", "Castle Hill"},
		{"Museum of local history", "11:00", "Museum Quarter"},
		{"Cathedral visit", "10:30", "Old Town"},
		{"Street art tour", "14:00", "Arts District"},
	},
	models.CategoryFood: {
		{"Lunch at the market hall", "12:30", "Market Hall"},
		{"Tasting menu dinner", "19:00", "River Quarter"},
		{"Street food crawl", "18:30", "Night Market"},
		{"Classic local bistro", "13:00", "Old Town"},
	},
	models.CategoryNature: {
		{"Botanical gardens", "15:00", "North Park"},
		{"Riverside cycle loop", "16:00", "River Path"},
		{"Sunset at the viewpoint", "18:00", "East Ridge"},
	},
	models.CategoryEntertainment: {
		{"Evening jazz set", "21:00", "Jazz Cellar"},
		{"Open-air cinema", "20:30", "City Park"},
		{"Theatre night", "19:30", "Grand Theatre"},
	},
}

// order of the daily activity slots
var slotCategories = []string{
	models.CategorySightseeing,
	models.CategoryFood,
	models.CategoryNature,
	models.CategoryEntertainment,
}

// GeneratePlan builds the seed records for a trip: one lodging stay spanning
// the whole range plus a rotating activity per slot per day.
func GeneratePlan(trip models.Trip, userID string) []models.ItineraryRecord {
	days := dates.Enumerate(trip.StartDate, trip.EndDate)
	if len(days) == 0 {
		return nil
	}

	now := time.Now().Unix()
	var records []models.ItineraryRecord

	lodging := models.ItineraryRecord{
		RecordID:  utils.GenerateRandomString(13),
		TripID:    trip.TripID,
		UserID:    userID,
		Kind:      models.KindActivity,
		Category:  models.CategoryLodging,
		Title:     "Stay in " + destinationOr(trip, "town"),
		StartDay:  days[0],
		Time:      "15:00",
		CreatedAt: now,
	}
	if len(days) > 1 {
		lodging.EndDay = days[len(days)-1]
	}
	records = append(records, lodging)

	for di, day := range days {
		for si, category := range slotCategories {
			// Arrival and departure days get a lighter schedule.
			if (di == 0 || di == len(days)-1) && si > 1 {
				continue
			}
			pool := pools[category]
			p := pool[(di+si)%len(pool)]
			records = append(records, models.ItineraryRecord{
				RecordID:  utils.GenerateRandomString(13),
				TripID:    trip.TripID,
				UserID:    userID,
				Kind:      models.KindActivity,
				Category:  category,
				Title:     p.Title,
				StartDay:  day,
				Time:      p.Time,
				Location:  p.Location,
				CreatedAt: now,
			})
		}
	}
	return records
}

func destinationOr(trip models.Trip, fallback string) string {
	if trip.Destination != "" {
		return trip.Destination
	}
	return fallback
}

// POST /api/trips/:tripid/generate
func GenerateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if userID == "" || !trip.HasMember(userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	if !dates.Valid(trip.StartDate) || !dates.Valid(trip.EndDate) {
		utils.RespondWithError(w, http.StatusBadRequest, "Trip has no valid date range")
		return
	}

	records := GeneratePlan(trip, userID)
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Trip date range is empty")
		return
	}

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}
	if _, err := db.RecordsCollection.InsertMany(ctx, docs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting generated records")
		return
	}

	mq.Emit(ctx, models.TripEvent{TripID: tripID, Method: "GENERATE", ActorID: userID})
	utils.RespondWithJSON(w, http.StatusCreated, records)
}
