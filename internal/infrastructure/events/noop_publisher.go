package events

import "github.com/jhoicas/Pos-api/internal/application/ports"

var _ ports.EventPublisher = (*NoopPublisher)(nil)

// NoopPublisher descarta todos los eventos. Se usa cuando no hay Redis
// configurado: el motor de órdenes no distingue entre ambos publishers.
type NoopPublisher struct{}

// NewNoopPublisher construye el publisher nulo.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish no hace nada.
func (p *NoopPublisher) Publish(event string, payload any) {}
