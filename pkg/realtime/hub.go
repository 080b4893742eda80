package realtime

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

// Subscriber is anything that can receive room events. The hub never sees
// the transport behind it.
type Subscriber interface {
	ID() string
	Send(event string, payload any) error
}

// Hub fans events out to room subscribers. Rooms are created on first
// subscribe and pruned when their last subscriber leaves. Delivery is
// fire-and-forget: a failed send is logged and skipped, never retried.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Subscriber

	// rooms each subscriber is in, so UnsubscribeAll doesn't scan every room
	subRooms map[string]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:    make(map[string]map[string]Subscriber),
		subRooms: make(map[string]map[string]struct{}),
	}
}

func RoomForTeam(teamID int64) string {
	return fmt.Sprintf("team-%d", teamID)
}

// Subscribe adds sub to room. Subscribing twice is a no-op.
func (h *Hub) Subscribe(sub Subscriber, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]Subscriber)
	}
	h.rooms[room][sub.ID()] = sub

	if h.subRooms[sub.ID()] == nil {
		h.subRooms[sub.ID()] = make(map[string]struct{})
	}
	h.subRooms[sub.ID()][room] = struct{}{}
}

// Publish delivers the event to every current subscriber of room.
func (h *Hub) Publish(room, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.rooms[room] {
		if err := sub.Send(event, payload); err != nil {
			log.WithFields(log.Fields{
				"room":       room,
				"event":      event,
				"subscriber": sub.ID(),
			}).Warnf("Dropping event: %s", err)
		}
	}
}

// UnsubscribeAll removes sub from every room it joined. Safe to call for a
// subscriber the hub has never seen.
func (h *Hub) UnsubscribeAll(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range h.subRooms[sub.ID()] {
		delete(h.rooms[room], sub.ID())
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}

	delete(h.subRooms, sub.ID())
}

// RoomSize reports the current subscriber count for room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}
