package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type actorKey struct{}

// WithActor attaches the authenticated user's id to the context so service
// logs can attribute admin mutations to the acting user.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user's id when one was attached.
func ActorFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok
}

// actorField renders the acting user for a log line. Internal callers such
// as the seed command carry no actor.
func actorField(ctx context.Context) zap.Field {
	if id, ok := ActorFrom(ctx); ok {
		return zap.String("actor", id.String())
	}
	return zap.Skip()
}
