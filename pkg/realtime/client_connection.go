package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gorilla/websocket"

	"github.com/huddleapp/huddle/pkg/decoder"
	"github.com/huddleapp/huddle/pkg/hdb/model"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 20 * time.Second
)

// ClientConnection is one websocket subscriber. Connections are anonymous
// at this layer; a client associates itself with a team only by joining its
// room. A reconnecting client gets a fresh identity and must resubscribe.
type ClientConnection struct {
	id          string
	conn        *websocket.Conn
	out         chan Event
	done        chan struct{}
	hub         *Hub
	messageStor stor.MessageStor
}

func (c *ClientConnection) ID() string {
	return c.id
}

// Send queues the event for the write pump. Events to a single connection
// leave in the order they were queued. A full queue or a closed connection
// drops the event with an error.
func (c *ClientConnection) Send(event string, payload any) error {
	select {
	case <-c.done:
		return fmt.Errorf("connection %s closed", c.id)
	case c.out <- Event{Event: event, Data: payload}:
		return nil
	default:
		return fmt.Errorf("connection %s send queue full", c.id)
	}
}

func (c *ClientConnection) readPump() {
	defer func() {
		c.hub.UnsubscribeAll(c)
		close(c.done)
		c.conn.Close()
		log.Infof("Client disconnected: %s", c.id)
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var evt incomingEvent
		if err := c.conn.ReadJSON(&evt); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Errorf("WebSocket error on %s: %s", c.id, err)
			}
			break
		}

		c.handleEvent(evt)
	}
}

func (c *ClientConnection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case evt := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *ClientConnection) handleEvent(evt incomingEvent) {
	switch evt.Event {
	case EvtJoinTeamChat, EvtJoinTeamSync:
		c.handleJoinTeam(evt)

	case EvtSendMessage:
		c.handleSendMessage(evt)

	case EvtGetMessages:
		c.handleGetMessages(evt)

	case EvtTaskAdded, EvtTaskMoved:
		c.handleTaskRelay(evt)

	default:
		log.Warnf("Unknown event %q from %s", evt.Event, c.id)
	}
}

func (c *ClientConnection) handleJoinTeam(evt incomingEvent) {
	var teamID int64
	if err := json.Unmarshal(evt.Data, &teamID); err != nil {
		log.Warnf("%s: bad team id: %s", evt.Event, err)
		return
	}

	c.hub.Subscribe(c, RoomForTeam(teamID))
	log.Infof("Client %s joined %s (%s)", c.id, RoomForTeam(teamID), evt.Event)
}

// handleSendMessage persists the message, then fans it out to the team room
// and confirms back to the sender. Persist failures become a message-error
// event; the connection stays up.
func (c *ClientConnection) handleSendMessage(evt incomingEvent) {
	type sendMessageRequest struct {
		Message  string `json:"message"`
		UserID   int64  `json:"userId"`
		UserName string `json:"userName"`
		TeamID   int64  `json:"teamId"`
	}

	req, err := decoder.DecodeStrict[sendMessageRequest](evt.Data)
	if err != nil {
		_ = c.Send(EvtMessageError, map[string]string{"error": "Failed to send message"})
		return
	}

	message, err := c.messageStor.CreateMessage(&model.Message{
		Body:     req.Message,
		UserID:   req.UserID,
		UserName: req.UserName,
		TeamID:   req.TeamID,
	})

	if err != nil {
		log.Errorf("Failed to save message from %s: %s", c.id, err)
		_ = c.Send(EvtMessageError, map[string]string{"error": "Failed to send message"})
		return
	}

	c.hub.Publish(RoomForTeam(req.TeamID), EvtNewMessage, message)
	_ = c.Send(EvtMessageSent, message)
}

// handleGetMessages answers the requester only, oldest message first. On a
// store failure the client gets an empty history rather than an error.
func (c *ClientConnection) handleGetMessages(evt incomingEvent) {
	var teamID int64
	if err := json.Unmarshal(evt.Data, &teamID); err != nil {
		log.Warnf("get-messages: bad team id: %s", err)
		return
	}

	messages, err := c.messageStor.GetMessagesForTeam(teamID)
	if err != nil {
		log.Errorf("Failed to fetch messages for team %d: %s", teamID, err)
		messages = nil
	}

	if messages == nil {
		messages = []model.Message{}
	}

	_ = c.Send(EvtMessagesHistory, messages)
}

// handleTaskRelay rebroadcasts client-side task changes to the team room
// verbatim, under the task-updated event.
func (c *ClientConnection) handleTaskRelay(evt incomingEvent) {
	var ref struct {
		TeamID int64 `json:"teamId"`
	}

	if err := json.Unmarshal(evt.Data, &ref); err != nil {
		log.Warnf("%s: bad payload: %s", evt.Event, err)
		return
	}

	c.hub.Publish(RoomForTeam(ref.TeamID), EvtTaskUpdated, json.RawMessage(evt.Data))
}
