package profile

import (
	"context"
	"errors"
	"strings"

	"paws-cafe/internal/domain/regions"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get devuelve el perfil guardado, o el perfil vacío si nunca se guardó.
func (s *Service) Get(ctx context.Context) Profile {
	return s.repo.LoadProfile(ctx)
}

// Save valida (edad 0–120, género y región conocidos) y sobrescribe el slot.
// El almacenamiento no valida nada: lo hace este borde de entrada.
func (s *Service) Save(ctx context.Context, p Profile) (Profile, error) {
	p = Profile{
		FullName: strings.TrimSpace(p.FullName),
		Nickname: strings.TrimSpace(p.Nickname),
		Email:    strings.TrimSpace(p.Email),
		Age:      p.Age,
		Gender:   Gender(strings.TrimSpace(string(p.Gender))),
		Region:   strings.TrimSpace(p.Region),
	}

	if err := Validate(p); err != nil {
		return Profile{}, err
	}

	s.repo.SaveProfile(ctx, p)
	return p, nil
}

func Validate(p Profile) error {
	if p.Age < MinAge || p.Age > MaxAge {
		return ErrInvalidInput
	}
	if !p.Gender.Valid() {
		return ErrInvalidInput
	}
	if p.Region != "" && !regions.IsPrefecture(p.Region) {
		return ErrInvalidInput
	}
	return nil
}
