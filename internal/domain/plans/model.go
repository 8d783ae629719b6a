package plans

import "time"

// Plan es una visita programada a una cafetería.
// Varias visitas pueden compartir fecha.
type Plan struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Name string    `json:"name"`
	Memo string    `json:"memo,omitempty"`
}
