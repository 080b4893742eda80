package webapi

// Publisher is the notify half of the write path. Controllers persist first
// and publish only after the write succeeded; a Publisher implementation is
// free to queue or drop events without affecting the response.
type Publisher interface {
	Publish(room, event string, payload any)
}

// NopPublisher discards events. Used when no realtime layer is wired in.
type NopPublisher struct{}

func (NopPublisher) Publish(room, event string, payload any) {}
