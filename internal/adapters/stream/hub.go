package stream

import (
	"encoding/json"
	"errors"
	"sync"

	"virtual-pet/internal/platform/logger"
)

// ErrNoAudience indica que nadie está escuchando el topic.
var ErrNoAudience = errors.New("no subscribers for topic")

const subscriberBuffer = 64

// Hub reparte eventos SSE a suscriptores por topic (un topic por mascota).
// Suscriptores lentos con el buffer lleno pierden el evento en vez de bloquear al resto.
type Hub struct {
	log logger.Logger

	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:  logger.OrNop(log),
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe devuelve un canal con eventos ya formateados como SSE.
// Hay que llamar a Unsubscribe al terminar.
func (h *Hub) Subscribe(topic string) chan []byte {
	ch := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[topic]
	if !ok {
		set = make(map[chan []byte]struct{})
		h.subs[topic] = set
	}
	set[ch] = struct{}{}
	return ch
}

// Unsubscribe quita el canal y lo cierra. Idempotente.
func (h *Hub) Unsubscribe(topic string, ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[topic]
	if !ok {
		return
	}
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	close(ch)
	if len(set) == 0 {
		delete(h.subs, topic)
	}
}

// Subscribers cuenta suscriptores de un topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}

// Publish serializa data como JSON y lo envía como evento SSE.
// Devuelve ErrNoAudience si el topic no tiene suscriptores.
func (h *Hub) Publish(topic, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		h.log.Error("stream: marshal event", logger.Fields{"event": event, "error": err})
		return err
	}
	msg := formatSSE(event, payload)

	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.subs[topic]
	if len(set) == 0 {
		return ErrNoAudience
	}
	for ch := range set {
		select {
		case ch <- msg:
		default:
			h.log.Debug("stream: subscriber buffer full, dropping event", logger.Fields{"topic": topic, "event": event})
		}
	}
	return nil
}

// formatSSE: "event: <type>\ndata: <payload>\n\n"
func formatSSE(event string, data []byte) []byte {
	out := make([]byte, 0, len(event)+len(data)+16)
	out = append(out, "event: "...)
	out = append(out, event...)
	out = append(out, "\ndata: "...)
	out = append(out, data...)
	out = append(out, "\n\n"...)
	return out
}
