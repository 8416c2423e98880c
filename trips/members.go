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

// POST /api/trips/:tripid/invite — owner rotates or fetches the invite code.
func GetInvite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.OwnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if r.URL.Query().Get("rotate") == "true" {
		trip.InviteCode = utils.GenerateRandomString(8)
		update := bson.M{"$set": bson.M{"invite_code": trip.InviteCode}}
		if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error rotating invite code")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"invite_code": trip.InviteCode})
}

// POST /api/trips/join — body: {"invite_code": "..."}
func JoinTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		InviteCode string `json:"invite_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.InviteCode == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invite code")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"invite_code": body.InviteCode, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No trip for that invite code")
		return
	}

	if trip.HasMember(userID) {
		utils.RespondWithJSON(w, http.StatusOK, trip)
		return
	}

	member := models.TripMember{
		UserID:   userID,
		Username: utils.GetUsernameFromRequest(r),
		Role:     "editor",
		JoinedAt: time.Now().Unix(),
	}
	update := bson.M{"$push": bson.M{"members": member}}
	if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": trip.TripID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error joining trip")
		return
	}

	trip.Members = append(trip.Members, member)
	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// GET /api/trips/:tripid/members
func GetMembers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !trip.HasMember(userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip.Members)
}

// DELETE /api/trips/:tripid/members/:userid — owner removes a member, or a
// member removes themselves.
func RemoveMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	tripID := ps.ByName("tripid")
	target := ps.ByName("userid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if userID != trip.OwnerID && userID != target {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	if target == trip.OwnerID {
		utils.RespondWithError(w, http.StatusBadRequest, "Owner cannot leave their own trip")
		return
	}

	update := bson.M{"$pull": bson.M{"members": bson.M{"user_id": target}}}
	if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing member")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Member removed"})
}
