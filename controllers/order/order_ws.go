package orderControllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsClientsMu sync.Mutex
	wsClients   = make(map[*websocket.Conn]bool)
)

// GET /api/orders/ws
//
// Subscribers receive every newly created order as a JSON message.
func OrderWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WebSocket upgrade failed:", err)
			return
		}

		wsClientsMu.Lock()
		wsClients[conn] = true
		wsClientsMu.Unlock()

		// Drain reads until the peer goes away.
		go func() {
			defer func() {
				wsClientsMu.Lock()
				delete(wsClients, conn)
				wsClientsMu.Unlock()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

func broadcastNewOrder(order models.Order) {
	payload := gin.H{
		"event": "new_order",
		"order": order,
	}

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteJSON(payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
