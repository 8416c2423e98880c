package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wayfare/db"
	"wayfare/dates"
	"wayfare/models"
	"wayfare/mq"
	"wayfare/places"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handlers serves the record endpoints. The place enricher is injected so
// its lookup cache is an explicit dependency rather than package state.
type Handlers struct {
	Enricher *places.Handlers
}

func NewHandlers(enricher *places.Handlers) *Handlers {
	return &Handlers{Enricher: enricher}
}

// tripForMember loads the trip and checks the requesting user belongs to it.
func tripForMember(ctx context.Context, tripID, userID string) (*models.Trip, int, string) {
	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		return nil, http.StatusNotFound, "Trip not found"
	}
	if userID == "" || !trip.HasMember(userID) {
		return nil, http.StatusForbidden, "Forbidden"
	}
	return &trip, 0, ""
}

func validateRecord(rec *models.ItineraryRecord) string {
	switch rec.Kind {
	case models.KindActivity:
		if !models.ValidCategories[rec.Category] {
			return "Invalid or missing category"
		}
	case models.KindFlight:
		if rec.Category != "" {
			return "Flights do not take a category"
		}
	default:
		return "Invalid record kind"
	}
	if !dates.Valid(rec.StartDay) {
		return "Invalid start day"
	}
	if rec.EndDay != "" {
		if !rec.IsLodging() {
			return "End day is only valid on lodging"
		}
		if !dates.Valid(rec.EndDay) {
			return "Invalid end day"
		}
	}
	return ""
}

// POST /api/trips/:tripid/records
func (h *Handlers) CreateRecord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	var rec models.ItineraryRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := validateRecord(&rec); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	rec.RecordID = utils.GenerateRandomString(13)
	rec.TripID = tripID
	rec.UserID = userID
	rec.CreatedAt = time.Now().Unix()
	h.Enricher.Enrich(ctx, &rec)

	if _, err := db.RecordsCollection.InsertOne(ctx, rec); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting record")
		return
	}

	mq.Emit(ctx, models.TripEvent{TripID: tripID, RecordID: rec.RecordID, Method: "POST", ActorID: userID})
	utils.RespondWithJSON(w, http.StatusCreated, rec)
}

// GET /api/trips/:tripid/records
func (h *Handlers) GetRecords(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_day", Value: 1}, {Key: "time", Value: 1}})
	records, err := utils.FindAndDecode[models.ItineraryRecord](ctx, db.RecordsCollection, bson.M{"tripid": tripID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching records")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, records)
}

// GET /api/trips/:tripid/dayview
func (h *Handlers) GetDayView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	records, err := utils.FindAndDecode[models.ItineraryRecord](ctx, db.RecordsCollection, bson.M{"tripid": tripID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching records")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, Project(records))
}

// PUT /api/trips/:tripid/records/:recordid
func (h *Handlers) UpdateRecord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")
	recordID := ps.ByName("recordid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	var existing models.ItineraryRecord
	err := db.RecordsCollection.FindOne(ctx, bson.M{"recordid": recordID, "tripid": tripID}).Decode(&existing)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}

	var updated models.ItineraryRecord
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateRecord(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	h.Enricher.Enrich(ctx, &updated)

	update := bson.M{"$set": bson.M{
		"kind":         updated.Kind,
		"category":     updated.Category,
		"title":        updated.Title,
		"start_day":    updated.StartDay,
		"end_day":      updated.EndDay,
		"time":         updated.Time,
		"arrival_time": updated.ArrivalTime,
		"location":     updated.Location,
		"arrival":      updated.Arrival,
		"notes":        updated.Notes,
		"lat":          updated.Lat,
		"lon":          updated.Lon,
		"enrichment":   updated.Enrichment,
		"updatedAt":    time.Now().Unix(),
	}}

	if _, err := db.RecordsCollection.UpdateOne(ctx, bson.M{"recordid": recordID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating record")
		return
	}

	mq.Emit(ctx, models.TripEvent{TripID: tripID, RecordID: recordID, Method: "PUT", ActorID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Record updated successfully"})
}

// PATCH /api/trips/:tripid/records/:recordid/complete
func (h *Handlers) ToggleRecordComplete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")
	recordID := ps.ByName("recordid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	var rec models.ItineraryRecord
	err := db.RecordsCollection.FindOne(ctx, bson.M{"recordid": recordID, "tripid": tripID}).Decode(&rec)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}

	update := bson.M{"$set": bson.M{"completed": !rec.Completed, "updatedAt": time.Now().Unix()}}
	if _, err := db.RecordsCollection.UpdateOne(ctx, bson.M{"recordid": recordID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating record")
		return
	}

	mq.Emit(ctx, models.TripEvent{TripID: tripID, RecordID: recordID, Method: "PATCH", ActorID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"completed": !rec.Completed})
}

// DELETE /api/trips/:tripid/records/:recordid
func (h *Handlers) DeleteRecord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")
	recordID := ps.ByName("recordid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, code, msg := tripForMember(ctx, tripID, userID); code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	res, err := db.RecordsCollection.DeleteOne(ctx, bson.M{"recordid": recordID, "tripid": tripID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting record")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		return
	}

	mq.Emit(ctx, models.TripEvent{TripID: tripID, RecordID: recordID, Method: "DELETE", ActorID: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Record deleted successfully"})
}
