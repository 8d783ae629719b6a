package cafes

import (
	"math/rand/v2"
	"sync"
	"time"
)

// SearchRecorder recibe los eventos de búsqueda (métricas).
type SearchRecorder interface {
	RecordSearch(results int)
}

type noopRecorder struct{}

func (noopRecorder) RecordSearch(int) {}

type Service struct {
	catalog  *Catalog
	recorder SearchRecorder

	mu  sync.Mutex // rand.Rand no es seguro para uso concurrente
	rnd *rand.Rand
}

func NewService(catalog *Catalog, recorder SearchRecorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	seed := uint64(time.Now().UnixNano())
	return &Service{
		catalog:  catalog,
		recorder: recorder,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

func (s *Service) All() []Cafe { return s.catalog.All() }

func (s *Service) GetByID(id string) (Cafe, error) {
	return s.catalog.GetByID(id)
}

// Search recalcula el resultado en cada llamada; no hay caché.
func (s *Service) Search(q Query) []Cafe {
	out := s.catalog.Search(q)
	s.recorder.RecordSearch(len(out))
	return out
}

func (s *Service) Recommend(n int) []Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Recommend(n, s.rnd)
}

func (s *Service) Nearby(lat, lon, radiusKm float64) ([]NearbyCafe, error) {
	return s.catalog.Nearby(lat, lon, radiusKm)
}
