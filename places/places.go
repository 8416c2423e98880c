package places

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"wayfare/db"
	"wayfare/models"
	"wayfare/rdx"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Place is a cached lookup result. Real geocoding lives behind an external
// HTTP API; this collection plus the Redis cache is everything the rest of
// the app sees.
type Place struct {
	PlaceID     string  `json:"place_id" bson:"place_id"`
	Name        string  `json:"name" bson:"name"`
	DisplayName string  `json:"display_name" bson:"display_name"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty"`
	Lat         float64 `json:"lat" bson:"lat"`
	Lon         float64 `json:"lon" bson:"lon"`
	CreatedAt   int64   `json:"createdAt" bson:"createdAt"`
}

// Handlers bundles the explicit lookup cache so it is passed in, not
// ambient package state.
type Handlers struct {
	Cache *rdx.GeoCache
}

func NewHandlers(cache *rdx.GeoCache) *Handlers {
	return &Handlers{Cache: cache}
}

// GET /api/places/lookup?q=
func (h *Handlers) Lookup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("q")))
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query")
		return
	}

	if cached, ok := h.Cache.Get(query); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	results, err := utils.FindAndDecode[Place](ctx, db.PlacesCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Lookup failed")
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Lookup failed")
		return
	}
	h.Cache.Put(query, string(data))

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// POST /api/places — members register places they found elsewhere so later
// lookups hit the cache.
func (h *Handlers) CreatePlace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var place Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if place.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	place.PlaceID = utils.GetUUID()
	place.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PlacesCollection.InsertOne(ctx, place); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting place")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, place)
}

// Enrich attaches place data to a record when the location matches a known
// place. Consults the cache first so repeated saves of the same location
// never re-query.
func (h *Handlers) Enrich(ctx context.Context, rec *models.ItineraryRecord) {
	query := strings.TrimSpace(strings.ToLower(rec.Location))
	if query == "" {
		return
	}

	if cached, ok := h.Cache.Get(query); ok {
		var places []Place
		if err := json.Unmarshal([]byte(cached), &places); err == nil && len(places) > 0 {
			applyEnrichment(rec, places[0])
		}
		return
	}

	var place Place
	err := db.PlacesCollection.FindOne(ctx, bson.M{"name": bson.M{"$regex": query, "$options": "i"}}).Decode(&place)
	if err != nil {
		return
	}
	applyEnrichment(rec, place)
	if data, err := json.Marshal([]Place{place}); err == nil {
		h.Cache.Put(query, string(data))
	}
}

func applyEnrichment(rec *models.ItineraryRecord, place Place) {
	rec.Enrichment = models.Enrichment{
		PlaceID:     place.PlaceID,
		DisplayName: place.DisplayName,
		Lat:         place.Lat,
		Lon:         place.Lon,
	}
	if rec.Lat == 0 && rec.Lon == 0 {
		rec.Lat = place.Lat
		rec.Lon = place.Lon
	}
}
