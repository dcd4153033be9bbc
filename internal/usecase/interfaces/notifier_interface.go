package interfaces

import "context"

type Notification struct {
	To      string
	Subject string
	Body    string
}

// INotifier delivers operator notifications (new offers, review requests).
type INotifier interface {
	Send(ctx context.Context, n Notification) error
}

// IEventDeduper remembers processed webhook events. FirstSeen returns true
// only the first time a given provider event id is offered; Forget releases
// the id again so a failed delivery can be retried.
type IEventDeduper interface {
	FirstSeen(ctx context.Context, provider string, eventID string) (bool, error)
	Forget(ctx context.Context, provider string, eventID string) error
}
