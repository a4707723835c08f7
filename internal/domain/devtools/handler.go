package devtools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"virtual-pet/internal/domain/petstate"

	"github.com/go-chi/chi/v5"
)

// StateLookup evita importar el paquete pets.
type StateLookup interface {
	StateOf(ctx context.Context, petID string) (petstate.PetState, error)
}

type timerResponse struct {
	Running bool  `json:"running"`
	Changed bool  `json:"changed"`
	Ticks   int64 `json:"ticks"`
}

type logResponse struct {
	Lines []string `json:"lines"`
}

func RegisterRoutes(r chi.Router, timer *Timer, journal *Journal, states StateLookup) {
	r.Route("/devtools", func(dr chi.Router) {
		dr.Post("/timer/start", startTimerHandler(timer))
		dr.Post("/timer/stop", stopTimerHandler(timer))
		dr.Get("/log", logHandler(journal))
		dr.Post("/sample", sampleHandler(journal, states))
		dr.Post("/caught-error", caughtErrorHandler(journal))
	})
}

// startTimerHandler godoc
// @Summary Iniciar timer de demo
// @Description Idempotente: si ya corre, changed=false.
// @Tags devtools
// @Produce json
// @Success 200 {object} timerResponse
// @Router /devtools/timer/start [post]
func startTimerHandler(timer *Timer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed := timer.Start()
		writeJSON(w, http.StatusOK, timerResponse{Running: timer.Running(), Changed: changed, Ticks: timer.Ticks()})
	}
}

// stopTimerHandler godoc
// @Summary Detener timer de demo
// @Description Idempotente: si ya estaba parado, changed=false.
// @Tags devtools
// @Produce json
// @Success 200 {object} timerResponse
// @Router /devtools/timer/stop [post]
func stopTimerHandler(timer *Timer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed := timer.Stop()
		writeJSON(w, http.StatusOK, timerResponse{Running: timer.Running(), Changed: changed, Ticks: timer.Ticks()})
	}
}

// logHandler godoc
// @Summary Salida del demo
// @Tags devtools
// @Produce json
// @Success 200 {object} logResponse
// @Router /devtools/log [get]
func logHandler(journal *Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines := journal.Lines()
		if lines == nil {
			lines = []string{}
		}
		writeJSON(w, http.StatusOK, logResponse{Lines: lines})
	}
}

// sampleHandler godoc
// @Summary Transformación de ejemplo
// @Description Toma nombre y energía de la mascota indicada (pet_id) y devuelve {name, snapshotEnergy, isoTime}.
// @Tags devtools
// @Produce json
// @Param pet_id query string true "ID de la mascota"
// @Success 200 {object} Sample
// @Failure 404 {string} string "pet not found"
// @Router /devtools/sample [post]
func sampleHandler(journal *Journal, states StateLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := strings.TrimSpace(r.URL.Query().Get("pet_id"))
		s, err := states.StateOf(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, RunSample(journal, s.Name, s.Energy, time.Now()))
	}
}

// caughtErrorHandler godoc
// @Summary Error capturado
// @Description Parsea JSON inválido, captura el error y lo deja en el log del demo.
// @Tags devtools
// @Produce json
// @Success 200 {object} logResponse
// @Router /devtools/caught-error [post]
func caughtErrorHandler(journal *Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = CaughtError(journal)
		writeJSON(w, http.StatusOK, logResponse{Lines: journal.Lines()})
	}
}

// writeJSON duplicado a propósito (ver pets).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
