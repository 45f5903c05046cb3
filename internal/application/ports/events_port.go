package ports

// Nombres de eventos del canal lateral de notificaciones en tiempo real
// (dashboards y pantallas de stock). Entrega at-most-once, best-effort.
const (
	EventUpdateInventory = "updateInventory"
	EventCancelOrder     = "cancelOrder"
	EventOrderReturned   = "orderReturned"
)

// EventPublisher publica eventos de dominio fuera de la frontera
// transaccional. Publish no retorna error a propósito: un fallo de entrega
// jamás debe revertir ni bloquear la mutación ya confirmada.
type EventPublisher interface {
	Publish(event string, payload any)
}
