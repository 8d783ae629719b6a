package favorites

import (
	"context"
	"sync"

	"paws-cafe/internal/domain/cafes"
)

// ToggleRecorder recibe cada alta/baja (métricas).
type ToggleRecorder interface {
	RecordFavoriteToggle(added bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordFavoriteToggle(bool) {}

type Options struct {
	// AutoSave guarda el slot después de cada Toggle. Si es false, hay que
	// llamar a Save explícitamente.
	AutoSave bool
	Recorder ToggleRecorder
}

// Service mantiene el conjunto de favoritos en memoria (orden de alta, sin
// duplicados por Cafe.ID).
type Service struct {
	repo Repository
	opts Options

	mu    sync.Mutex
	items []cafes.Cafe
}

// NewService carga el slot una vez al crear el servicio.
func NewService(ctx context.Context, repo Repository, opts Options) *Service {
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}
	s := &Service{repo: repo, opts: opts}
	s.items = dedupe(repo.LoadFavorites(ctx))
	return s
}

// Toggle agrega la cafetería si no estaba y la quita si estaba.
// Devuelve true si queda como favorita.
func (s *Service) Toggle(ctx context.Context, c cafes.Cafe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := true
	if i := s.indexOf(c.ID); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		added = false
	} else {
		s.items = append(s.items, c)
	}

	s.opts.Recorder.RecordFavoriteToggle(added)
	if s.opts.AutoSave {
		s.repo.SaveFavorites(ctx, s.snapshot())
	}
	return added
}

func (s *Service) IsFavorite(cafeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(cafeID) >= 0
}

func (s *Service) List() []cafes.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Save persiste el conjunto actual en el slot.
func (s *Service) Save(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.SaveFavorites(ctx, s.snapshot())
}

// Reload descarta el estado en memoria y vuelve a leer el slot.
func (s *Service) Reload(ctx context.Context) {
	items := dedupe(s.repo.LoadFavorites(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *Service) indexOf(cafeID string) int {
	for i, c := range s.items {
		if c.ID == cafeID {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() []cafes.Cafe {
	out := make([]cafes.Cafe, len(s.items))
	copy(out, s.items)
	return out
}

func dedupe(in []cafes.Cafe) []cafes.Cafe {
	seen := make(map[string]struct{}, len(in))
	out := make([]cafes.Cafe, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
