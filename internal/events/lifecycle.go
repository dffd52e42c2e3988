package events

import (
	"context"
	"time"
)

const LifecycleTopic = "orgs.lifecycle.v1"

const (
	AggregateOrganization = "organization"
	AggregateCompany      = "company"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// LifecycleEvent announces that an organization or company was written.
// Key is the natural key: the slug or the company name.
type LifecycleEvent struct {
	EventType      string    `json:"event_type"`
	AggregateType  string    `json:"aggregate_type"`
	AggregateID    string    `json:"aggregate_id"`
	OrganizationID string    `json:"organization_id"`
	Key            string    `json:"key"`
	RequestID      string    `json:"request_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewLifecycleEvent stamps an event as organization_created, company_deleted
// and so on.
func NewLifecycleEvent(aggregate, action, id, orgID, key, requestID string) LifecycleEvent {
	return LifecycleEvent{
		EventType:      aggregate + "_" + action,
		AggregateType:  aggregate,
		AggregateID:    id,
		OrganizationID: orgID,
		Key:            key,
		RequestID:      requestID,
		OccurredAt:     time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event LifecycleEvent) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, LifecycleEvent) error {
	return nil
}
