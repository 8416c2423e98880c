package places

import (
	"net/http"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

type suggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// Fallback pool served when no places provider is configured.
var nearbyPool = []suggestion{
	{Name: "Old Town Walking Route", Category: "sightseeing", Location: "City Center"},
	{Name: "Harbor Fish Market", Category: "food", Location: "Seafront"},
	{Name: "Botanical Gardens", Category: "nature", Location: "North Park"},
	{Name: "Grand Bazaar", Category: "shopping", Location: "Commercial District"},
	{Name: "Night Jazz Cellar", Category: "entertainment", Location: "Downtown"},
	{Name: "Hilltop Viewpoint", Category: "sightseeing", Location: "East Ridge"},
	{Name: "Riverside Food Stalls", Category: "food", Location: "River Quarter"},
	{Name: "City Tram Loop", Category: "transport", Location: "Central Station"},
}

// GET /api/suggestions/places/nearby
func GetNearbyPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")
	if category == "" {
		utils.RespondWithJSON(w, http.StatusOK, nearbyPool)
		return
	}

	var filtered []suggestion
	for _, s := range nearbyPool {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	if filtered == nil {
		filtered = []suggestion{}
	}
	utils.RespondWithJSON(w, http.StatusOK, filtered)
}
