// Package localstore guarda las colecciones de la app (visitas, favoritos y
// perfil) en slots fijos de un kv.Store, codificadas como JSON.
//
// Las lecturas nunca fallan hacia afuera: un slot ausente o ilegible devuelve
// el valor vacío. El Status que acompaña a cada Load*WithStatus permite
// distinguir "nunca se guardó" de "estaba corrupto".
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"paws-cafe/internal/domain/cafes"
	"paws-cafe/internal/domain/plans"
	"paws-cafe/internal/domain/profile"
	"paws-cafe/internal/platform/logger"
	"paws-cafe/internal/ports/kv"
)

const (
	SlotPlans     = "plans"
	SlotProfile   = "profile"
	SlotFavorites = "favorites"
)

type Status string

const (
	StatusFound   Status = "found"
	StatusMissing Status = "missing"
	StatusCorrupt Status = "corrupt"
)

// Recorder recibe lecturas y escrituras fallidas (métricas).
type Recorder interface {
	RecordStoreLoad(slot, status string)
	RecordStoreSaveFailure(slot string)
}

type noopRecorder struct{}

func (noopRecorder) RecordStoreLoad(string, string) {}
func (noopRecorder) RecordStoreSaveFailure(string)  {}

type Store struct {
	kv  kv.Store
	log logger.Logger
	rec Recorder
}

func New(store kv.Store, log logger.Logger, rec Recorder) *Store {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Store{
		kv:  store,
		log: log.With(map[string]any{"component": "localstore"}),
		rec: rec,
	}
}

// -------------------------
// plans
// -------------------------

func (s *Store) LoadPlans(ctx context.Context) []plans.Plan {
	out, _ := s.LoadPlansWithStatus(ctx)
	return out
}

func (s *Store) LoadPlansWithStatus(ctx context.Context) ([]plans.Plan, Status) {
	var out []plans.Plan
	st := s.load(ctx, SlotPlans, &out)
	if st != StatusFound || out == nil {
		out = []plans.Plan{}
	}
	return out, st
}

func (s *Store) SavePlans(ctx context.Context, items []plans.Plan) {
	if items == nil {
		items = []plans.Plan{}
	}
	_ = s.save(ctx, SlotPlans, items)
}

// -------------------------
// favorites
// -------------------------

func (s *Store) LoadFavorites(ctx context.Context) []cafes.Cafe {
	out, _ := s.LoadFavoritesWithStatus(ctx)
	return out
}

func (s *Store) LoadFavoritesWithStatus(ctx context.Context) ([]cafes.Cafe, Status) {
	var out []cafes.Cafe
	st := s.load(ctx, SlotFavorites, &out)
	if st != StatusFound || out == nil {
		out = []cafes.Cafe{}
	}
	return out, st
}

func (s *Store) SaveFavorites(ctx context.Context, items []cafes.Cafe) {
	if items == nil {
		items = []cafes.Cafe{}
	}
	_ = s.save(ctx, SlotFavorites, items)
}

// -------------------------
// profile
// -------------------------

func (s *Store) LoadProfile(ctx context.Context) profile.Profile {
	out, _ := s.LoadProfileWithStatus(ctx)
	return out
}

func (s *Store) LoadProfileWithStatus(ctx context.Context) (profile.Profile, Status) {
	var out profile.Profile
	st := s.load(ctx, SlotProfile, &out)
	if st != StatusFound {
		out = profile.Profile{}
	}
	return out, st
}

func (s *Store) SaveProfile(ctx context.Context, p profile.Profile) {
	_ = s.save(ctx, SlotProfile, p)
}

// Reset borra un slot; la próxima lectura devuelve el valor vacío.
func (s *Store) Reset(ctx context.Context, slot string) error {
	if err := s.kv.Remove(ctx, slot); err != nil {
		return fmt.Errorf("reset slot %s: %w", slot, err)
	}
	return nil
}

// -------------------------
// internos
// -------------------------

func (s *Store) load(ctx context.Context, slot string, dst any) Status {
	st := s.decode(ctx, slot, dst)
	s.rec.RecordStoreLoad(slot, string(st))
	return st
}

func (s *Store) decode(ctx context.Context, slot string, dst any) Status {
	b, err := s.kv.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return StatusMissing
		}
		// Error de lectura del backend: para quien llama es lo mismo que corrupto.
		s.log.Warn("slot read failed", map[string]any{"slot": slot, "error": err})
		return StatusCorrupt
	}

	if err := json.Unmarshal(b, dst); err != nil {
		s.log.Warn("slot decode failed, using empty value", map[string]any{
			"slot":  slot,
			"bytes": len(b),
			"error": err,
		})
		return StatusCorrupt
	}
	return StatusFound
}

// save devuelve el error solo para tests; los Save* públicos lo descartan
// después de loguearlo.
func (s *Store) save(ctx context.Context, slot string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("slot encode failed", map[string]any{"slot": slot, "error": err})
		s.rec.RecordStoreSaveFailure(slot)
		return err
	}

	if err := s.kv.Set(ctx, slot, b); err != nil {
		s.log.Error("slot write failed", map[string]any{"slot": slot, "error": err})
		s.rec.RecordStoreSaveFailure(slot)
		return err
	}

	s.log.Debug("slot saved", map[string]any{"slot": slot, "bytes": len(b)})
	return nil
}
