package service

import (
	"context"
	"errors"
)

// Error taxonomy of the core. Handlers branch on these with errors.Is and
// translate them to HTTP statuses; storage failures propagate wrapped but
// untyped.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// EventPublisher is satisfied by events.Producer. A nil publisher disables
// event emission, which tests rely on.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}
