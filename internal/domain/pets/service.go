package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"virtual-pet/internal/domain/petstate"
	"virtual-pet/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// ListenerFactory arma los listeners de una mascota nueva (stream, efectos, métricas).
type ListenerFactory func(petID string) []petstate.Listener

type Config struct {
	// DefaultName se usa si CreateInput.Name viene vacío. Default: petstate.DefaultName.
	DefaultName string
	Listeners   ListenerFactory
	Log         logger.Logger
}

type Service struct {
	repo Repository
	cfg  Config
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, cfg Config) *Service {
	if strings.TrimSpace(cfg.DefaultName) == "" {
		cfg.DefaultName = petstate.DefaultName
	}
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  logger.OrNop(cfg.Log),
		now:  time.Now,
	}
}

type CreateInput struct {
	Name string
}

// Create abre una sesión nueva con los valores iniciales (5/5/5).
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = s.cfg.DefaultName
	}

	id := uuid.NewString()

	var listeners []petstate.Listener
	if s.cfg.Listeners != nil {
		listeners = s.cfg.Listeners(id)
	}
	store := petstate.NewStore(listeners...)
	if err := store.Initialize(name, petstate.InitialWeight, petstate.InitialHappiness, petstate.InitialEnergy); err != nil {
		return Pet{}, fmt.Errorf("initialize pet state: %w", err)
	}

	p := Pet{
		ID:        id,
		CreatedAt: s.now(),
		Store:     store,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}

	s.log.Info("pet created", logger.Fields{"pet_id": id, "name": name})
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Act aplica un delta ya construido: apply -> clamp -> notify.
func (s *Service) Act(ctx context.Context, petID string, d petstate.ActionDelta) (petstate.Applied, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return petstate.Applied{}, err
	}

	ev, err := p.Store.Dispatch(ctx, d)
	if err != nil {
		return petstate.Applied{}, err
	}

	s.log.Debug("action applied", logger.Fields{
		"pet_id":    p.ID,
		"action":    string(ev.Action),
		"weight":    ev.State.Weight,
		"happiness": ev.State.Happiness,
		"energy":    ev.State.Energy,
		"clamped":   ev.Clamped(),
	})
	return ev, nil
}

// OnAction es la entrada de la UI: nombre de acción + deltas crudos.
// Deltas ausentes o no numéricos valen 0; nunca es un error.
func (s *Service) OnAction(ctx context.Context, petID, action string, deltas map[string]any) (petstate.Applied, error) {
	d := petstate.DeltaFromValues(deltas)
	d.Action = petstate.NormalizeAction(action)
	return s.Act(ctx, petID, d)
}
