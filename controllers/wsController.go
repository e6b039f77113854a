package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// Message is the envelope broadcast to every connected client.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket upgrades the connection and keeps the client registered
// until it disconnects. Clients only listen; nothing they send is used.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// notifyClients broadcasts an event (order created, billed, settled,
// cancelled) to every connected front-of-house client.
func notifyClients(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()

	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		log.Println("Error marshaling message:", err)
		return
	}

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			log.Println("Error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}
