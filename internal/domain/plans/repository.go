package plans

import "context"

// Repository es el slot "plans" del almacenamiento local.
// Load nunca falla: si no hay nada guardado (o está corrupto) devuelve lista vacía.
type Repository interface {
	LoadPlans(ctx context.Context) []Plan
	SavePlans(ctx context.Context, plans []Plan)
}
