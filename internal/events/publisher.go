package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"osam/config"
	"osam/infras/kafka"
	"osam/infras/otel"
	"osam/shared/constant"
	"osam/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	EntityPlace        = "place"
	EntityEvent        = "event"
	EntityGallery      = "gallery"
	EntityGalleryImage = "gallery_image"
)

// ContentChange is the payload streamed to downstream consumers (site
// regeneration, audit) whenever an editor mutates content.
type ContentChange struct {
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishContentChange(ctx context.Context, entity, entityID, action string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// PublishContentChange is best-effort: a failed publish is logged, never
// surfaced to the caller, since the mutation has already committed.
func (p *publisherImpl) PublishContentChange(ctx context.Context, entity, entityID, action string) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishContentChange")
	defer scope.End()

	topic := p.cfg.Kafka.Topics.ContentChanged
	if topic == "" {
		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	change := ContentChange{
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actor,
		OccurredAt: timezone.Now(),
	}

	message := kafka.Message{
		Key:   entity + ":" + entityID,
		Value: change,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("failed to publish content change")
	}
}
