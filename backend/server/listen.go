package server

import (
	"net/http"
	"time"

	ws "civictrack/backend/websocket"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now
		// In production, you should implement proper origin checking
		return true
	},
}

// ListenTransitions upgrades the connection and streams transition
// events until the client disconnects.
func ListenTransitions(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("Failed to upgrade connection to WebSocket: %v", err)
		return
	}

	client := ws.NewClient(wsHub, conn)
	wsHub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	log.Info("WebSocket connection established")
}

func Health(c *gin.Context) {
	connectedClients, lastBroadcastSeq := wsHub.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"service":            "civictrack",
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
		"connected_clients":  connectedClients,
		"last_broadcast_seq": lastBroadcastSeq,
	})
}
