package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development, restrict in production
		return true
	},
}

// ServeWS upgrades the request and registers the client with the hub.
// Identity is the same placeholder the REST surface uses: a user_id
// query parameter (or x-user-id header), to be replaced when a real
// auth collaborator lands.
func ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			userID = r.Header.Get("x-user-id")
		}
		if userID == "" {
			http.Error(w, "user_id required", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.WithError(err).Error("websocket upgrade failed")
			return
		}

		client := NewClient(hub, conn, userID)
		hub.register <- client

		go client.Start()
	}
}
