package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

var _ ports.EventPublisher = (*RedisPublisher)(nil)

// RedisPublisher publica eventos de dominio en un canal Redis (pub/sub).
// Best-effort: un fallo de publicación se registra y se descarta; los
// eventos salen después del commit y nunca afectan la operación que los
// originó.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// NewRedisPublisher construye el publisher sobre un cliente Redis ya conectado.
func NewRedisPublisher(client *redis.Client, channel string, log *logger.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, log: log}
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
	At      string `json:"at"`
}

// Publish serializa y publica el evento sin bloquear al llamador.
func (p *RedisPublisher) Publish(event string, payload any) {
	body, err := json.Marshal(envelope{Event: event, Payload: payload, At: time.Now().UTC().Format(time.RFC3339)})
	if err != nil {
		p.log.Warn().Err(err).Str("event", event).Msg("evento no serializable, descartado")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
			p.log.Warn().Err(err).Str("event", event).Msg("fallo al publicar evento")
		}
	}()
}
