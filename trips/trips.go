package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip.TripID = utils.GetUUID()
	trip.OwnerID = userID
	trip.InviteCode = utils.GenerateRandomString(8)
	trip.Members = []models.TripMember{{
		UserID:   userID,
		Username: utils.GetUsernameFromRequest(r),
		Role:     "owner",
		JoinedAt: time.Now().Unix(),
	}}
	if trip.Status == "" {
		trip.Status = "Draft"
	}
	trip.Published = false
	trip.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TripsCollection.InsertOne(ctx, trip); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"deleted":         bson.M{"$ne": true},
		"members.user_id": userID,
	}
	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/:tripid
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	// Unpublished trips are visible to members only.
	if !trip.Published && !trip.HasMember(utils.GetUserIDFromRequest(r)) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// PUT /api/trips/:tripid
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&existing)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if existing.OwnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var updated models.Trip
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":        updated.Name,
		"description": updated.Description,
		"destination": updated.Destination,
		"start_date":  updated.StartDate,
		"end_date":    updated.EndDate,
		"status":      updated.Status,
	}}

	if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip updated successfully"})
}

// DELETE /api/trips/:tripid
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if trip.OwnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip deleted successfully"})
}

// POST /api/trips/:tripid/fork
func ForkTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	originalID := ps.ByName("tripid")
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var original models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": originalID, "deleted": bson.M{"$ne": true}}).Decode(&original)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Original trip not found")
		return
	}

	if !original.Published && !original.HasMember(userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	newTrip := models.Trip{
		TripID:      utils.GetUUID(),
		OwnerID:     userID,
		Name:        "Forked - " + original.Name,
		Description: original.Description,
		Destination: original.Destination,
		StartDate:   original.StartDate,
		EndDate:     original.EndDate,
		Status:      "Draft",
		Published:   false,
		ForkedFrom:  &originalID,
		InviteCode:  utils.GenerateRandomString(8),
		Members: []models.TripMember{{
			UserID:   userID,
			Role:     "owner",
			JoinedAt: time.Now().Unix(),
		}},
		CreatedAt: time.Now().Unix(),
	}

	if _, err := db.TripsCollection.InsertOne(ctx, newTrip); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error forking trip")
		return
	}

	// Copy the itinerary records across under fresh IDs.
	records, err := utils.FindAndDecode[models.ItineraryRecord](ctx, db.RecordsCollection, bson.M{"tripid": originalID})
	if err == nil && len(records) > 0 {
		copies := make([]interface{}, 0, len(records))
		for _, rec := range records {
			rec.RecordID = utils.GenerateRandomString(13)
			rec.TripID = newTrip.TripID
			rec.UserID = userID
			rec.Completed = false
			rec.CreatedAt = time.Now().Unix()
			rec.UpdatedAt = 0
			copies = append(copies, rec)
		}
		if _, err := db.RecordsCollection.InsertMany(ctx, copies); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error copying records")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, newTrip)
}

// PUT /api/trips/:tripid/publish
func PublishTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"tripid": tripID, "owner_id": userID}
	update := bson.M{"$set": bson.M{"published": true}}

	result, err := db.TripsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error publishing trip")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip published"})
}

// GET /api/trips/search
func SearchTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := bson.M{"deleted": bson.M{"$ne": true}, "published": true}
	if start := query.Get("start_date"); start != "" {
		filter["start_date"] = start
	}
	if destination := query.Get("destination"); destination != "" {
		filter["destination"] = destination
	}
	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}
