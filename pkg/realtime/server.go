package realtime

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-uuid"
	"github.com/labstack/echo/v4"

	"github.com/huddleapp/huddle/pkg/hdb/stor"
)

// Server upgrades HTTP requests into realtime connections and ties them to
// the hub. Chat persistence goes through the message store, so connections
// behave the same in durable and transient mode.
type Server struct {
	hub         *Hub
	messageStor stor.MessageStor
	upgrader    websocket.Upgrader
}

func NewServer(hub *Hub, messageStor stor.MessageStor) *Server {
	return &Server{
		hub:         hub,
		messageStor: messageStor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) HandleConnection(ctx echo.Context) error {
	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		conn.Close()
		return err
	}

	client := &ClientConnection{
		id:          id,
		conn:        conn,
		out:         make(chan Event, 256),
		done:        make(chan struct{}),
		hub:         s.hub,
		messageStor: s.messageStor,
	}

	log.Infof("Client connected: %s", client.id)

	go client.writePump()
	go client.readPump()

	return nil
}
