package booking

import (
	"encoding/json"
	"net/http"
	"sync"

	"aurumdrive/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

type wsEvent struct {
	Type string `json:"type"`
}

// Feed pushes change notifications to connected admin dashboards so they can
// re-render their tables without polling.
type Feed struct {
	mu          sync.Mutex
	subscribers []*websocket.Conn
}

func NewFeed() *Feed {
	return &Feed{}
}

// HandleWS upgrades the connection and holds it open until the dashboard
// disconnects. Browsers cannot set headers on websocket dials, so the admin
// token arrives as a query parameter and is checked before the upgrade.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.subscribers = append(f.subscribers, conn)
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// Clean up on disconnect
	f.mu.Lock()
	newList := make([]*websocket.Conn, 0, len(f.subscribers))
	for _, c := range f.subscribers {
		if c != conn {
			newList = append(newList, c)
		}
	}
	f.subscribers = newList
	f.mu.Unlock()

	conn.Close()
}

// Notify broadcasts an event to every subscriber, dropping dead connections.
func (f *Feed) Notify(event string) {
	data, _ := json.Marshal(wsEvent{Type: event})

	f.mu.Lock()
	defer f.mu.Unlock()

	newList := f.subscribers[:0]
	for _, conn := range f.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	f.subscribers = newList
}
