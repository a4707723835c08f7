package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"virtual-pet/internal/domain/effects"
	"virtual-pet/internal/domain/petstate"

	"github.com/go-chi/chi/v5"
)

// EventSource evita importar el adapter de stream desde el dominio.
type EventSource interface {
	Subscribe(topic string) chan []byte
	Unsubscribe(topic string, ch chan []byte)
}

const keepaliveEvery = 15 * time.Second

func RegisterRoutes(r chi.Router, svc *Service, events EventSource) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// getState()
		pr.Get("/{petID}", getPetHandler(svc))

		// onAction(actionName, deltas)
		pr.Post("/{petID}/actions", actHandler(svc))

		// Notificaciones "action applied" + comandos de efectos (SSE)
		if events != nil {
			pr.Get("/{petID}/stream", streamHandler(svc, events))
		}
	})
}

type createPetRequest struct {
	Name string `json:"name"`
}

// petResponse es la vista de solo lectura del estado de la mascota.
type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    int       `json:"weight"`
	Happiness int       `json:"happiness"`
	Energy    int       `json:"energy"`
	CreatedAt time.Time `json:"created_at"`
}

// actionResponse devuelve el estado ya clampado y los efectos a reproducir.
type actionResponse struct {
	Pet     petResponse        `json:"pet"`
	Action  petstate.Action    `json:"action"`
	Kind    effects.Kind       `json:"kind"`
	Clamped bool               `json:"clamped"`
	Effects effects.Descriptor `json:"effects"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Abre una sesión nueva con weight=5, happiness=5, energy=5. Si name viene vacío se usa el nombre por defecto.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest false "Nombre opcional"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{Name: req.Name})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p, p.State()))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, p.State()))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Estado de la mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p, p.State()))
	}
}

// actHandler godoc
// @Summary Aplicar acción
// @Description Aplica los deltas (weight, happiness, energy) y clampa a >= 0. Deltas ausentes o no numéricos valen 0. Acciones desconocidas usan los efectos por defecto.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body object true "{action, weight?, happiness?, energy?}"
// @Success 200 {object} actionResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/actions [post]
func actHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decode permisivo: números, strings, bools o null. Lo que no sirve vale 0.
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		var raw map[string]any
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		petID := chi.URLParam(r, "petID")
		ev, err := svc.Act(r.Context(), petID, petstate.DeltaFromValues(raw))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		desc := effects.Describe(ev.Action)
		writeJSON(w, http.StatusOK, actionResponse{
			Pet:     toPetResponse(p, ev.State),
			Action:  ev.Action,
			Kind:    desc.Kind,
			Clamped: ev.Clamped(),
			Effects: desc,
		})
	}
}

// streamHandler godoc
// @Summary Stream de eventos de la mascota
// @Description Server-Sent Events: action_applied, comment, image, animate, revert, sound_stop, sound_play.
// @Tags pets
// @Produce text/event-stream
// @Param petID path string true "ID de la mascota"
// @Success 200 {string} string "event stream"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/stream [get]
func streamHandler(svc *Service, events EventSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming not supported", http.StatusInternalServerError)
			return
		}

		// Suscribir antes de mandar headers.
		ch := events.Subscribe(p.ID)
		defer events.Unsubscribe(p.ID, ch)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		// Conexión larga: sin WriteTimeout del server.
		rc := http.NewResponseController(w)
		_ = rc.SetWriteDeadline(time.Time{})

		keepalive := time.NewTicker(keepaliveEvery)
		defer keepalive.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepalive.C:
				if _, err := w.Write([]byte(":keepalive\n\n")); err != nil {
					return
				}
				flusher.Flush()
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func toPetResponse(p Pet, s petstate.PetState) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      s.Name,
		Weight:    s.Weight,
		Happiness: s.Happiness,
		Energy:    s.Energy,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON está duplicado a propósito en cada módulo (pets/devtools/router)
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
