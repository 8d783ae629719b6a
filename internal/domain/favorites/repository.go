package favorites

import (
	"context"

	"paws-cafe/internal/domain/cafes"
)

// Repository es el slot "favorites". Se guarda por valor: un favorito puede
// apuntar a una cafetería que ya no está en el catálogo.
type Repository interface {
	LoadFavorites(ctx context.Context) []cafes.Cafe
	SaveFavorites(ctx context.Context, items []cafes.Cafe)
}
