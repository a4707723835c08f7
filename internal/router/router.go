package router

import (
	"net/http"
	"time"

	_ "virtual-pet/internal/docs"

	"virtual-pet/internal/adapters/metrics/inmemory"
	mem "virtual-pet/internal/adapters/storage/memory"
	"virtual-pet/internal/adapters/stream"
	"virtual-pet/internal/domain/devtools"
	"virtual-pet/internal/domain/effects"
	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/domain/petstate"
	"virtual-pet/internal/middleware"
	"virtual-pet/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Vacío => petstate.DefaultName.
	DefaultPetName string
	// Cuánto dura la animación antes del revert. 0 => 600ms.
	RevertAfter time.Duration

	// Opcionales: si no vienen se crean acá (tests).
	Hub     *stream.Hub
	Metrics *inmemory.Recorder
	Journal *devtools.Journal
	Timer   *devtools.Timer
}

func NewRouter(opts Options) http.Handler {
	log := logger.OrNop(opts.Logger)

	hub := opts.Hub
	if hub == nil {
		hub = stream.NewHub(log)
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = inmemory.NewRecorder()
	}
	journal := opts.Journal
	if journal == nil {
		journal = devtools.NewJournal(0)
	}
	timer := opts.Timer
	if timer == nil {
		timer = devtools.NewTimer(journal, 0, log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Repos in-memory: cada mascota vive lo que dura el proceso.
	petRepo := mem.NewPetRepo()

	// Listeners por mascota: stream -> efectos -> métricas.
	listeners := func(petID string) []petstate.Listener {
		browser := stream.NewBrowser(hub, petID, log)
		return []petstate.Listener{
			stream.NewProjector(hub, petID),
			&effects.Dispatcher{
				Commenter: browser,
				Animator:  effects.NewAnimator(browser, opts.RevertAfter),
				Mixer:     effects.NewMixer(browser, log),
			},
			metrics,
		}
	}

	petsSvc := pets.NewService(petRepo, pets.Config{
		DefaultName: opts.DefaultPetName,
		Listeners:   listeners,
		Log:         log,
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, hub)
	devtools.RegisterRoutes(r, timer, journal, petsSvc)

	r.Get("/metrics/actions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Snapshot())
	})

	return r
}
