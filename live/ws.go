package live

import (
	"context"
	"log"
	"net/http"
	"time"

	"wayfare/db"
	"wayfare/middleware"
	"wayfare/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades GET /ws/trips/:tripid. The token comes in as a
// query param because browsers cannot set headers on websocket dials.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tripID := ps.ByName("tripid")

		claims, err := middleware.ValidateRawJWT(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !isTripMember(tripID, claims.UserID) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send:   make(chan []byte, 256),
			TripID: tripID,
			UserID: claims.UserID,
		}

		hub.register <- client
		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func isTripMember(tripID, userID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}).Decode(&trip)
	if err != nil {
		return false
	}
	return trip.HasMember(userID)
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only drains control frames; clients mutate records over HTTP.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.unregister <- c
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
