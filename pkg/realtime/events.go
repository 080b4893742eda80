package realtime

import "encoding/json"

// Event names
const (
	// client -> server
	EvtJoinTeamChat = "join-team-chat"
	EvtJoinTeamSync = "join-team-sync"
	EvtSendMessage  = "send-message"
	EvtGetMessages  = "get-messages"
	EvtTaskAdded    = "task-added"
	EvtTaskMoved    = "task-moved"

	// server -> client
	EvtNewMessage      = "new-message"
	EvtMessageSent     = "message-sent"
	EvtMessageError    = "message-error"
	EvtMessagesHistory = "messages-history"
	EvtTaskUpdated     = "task-updated"
)

// Event is the wire envelope for the realtime channel.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// incomingEvent defers payload decoding until the event name is known.
type incomingEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
