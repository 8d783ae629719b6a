package plans

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("plan name is empty")
	ErrNotFound  = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time

	mu sync.Mutex // serializa load → modificar → save
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AddInput struct {
	Date  time.Time  // día de la visita
	Clock *time.Time // hora opcional; se toman solo hora y minuto
	Name  string
	Memo  string
}

// CombineDateTime toma el día de date y la hora:minuto de clock, con segundos en 0.
// La zona horaria es la de date.
func CombineDateTime(date time.Time, clock *time.Time) time.Time {
	h, m := date.Hour(), date.Minute()
	if clock != nil {
		h, m = clock.Hour(), clock.Minute()
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, h, m, 0, 0, date.Location())
}

// Add agrega una visita. Con nombre vacío no hace nada y devuelve ErrEmptyName.
func (s *Service) Add(ctx context.Context, in AddInput) (Plan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Plan{}, ErrEmptyName
	}

	p := Plan{
		ID:   uuid.NewString(),
		Date: CombineDateTime(in.Date, in.Clock),
		Name: name,
		Memo: strings.TrimSpace(in.Memo),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadPlans(ctx)
	items = append(items, p)
	s.repo.SavePlans(ctx, SortByDate(items))

	return p, nil
}

// List devuelve todas las visitas ordenadas por fecha ascendente.
func (s *Service) List(ctx context.Context) []Plan {
	return SortByDate(s.repo.LoadPlans(ctx))
}

// Upcoming devuelve hasta limit visitas con fecha >= ahora.
func (s *Service) Upcoming(ctx context.Context, limit int) []Plan {
	now := s.now()

	out := make([]Plan, 0)
	for _, p := range s.List(ctx) {
		if p.Date.Before(now) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadPlans(ctx)
	out := make([]Plan, 0, len(items))
	found := false
	for _, p := range items {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return ErrNotFound
	}

	s.repo.SavePlans(ctx, out)
	return nil
}

// SortByDate ordena (estable) por fecha ascendente y devuelve un slice nuevo.
func SortByDate(in []Plan) []Plan {
	out := make([]Plan, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
