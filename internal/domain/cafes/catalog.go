package cafes

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const earthRadiusKm = 6371.0

// Catalog es la lista inmutable de cafeterías disponible al arrancar.
type Catalog struct {
	cafes []Cafe
	byID  map[string]int
}

// NewCatalog valida y copia la lista. IDs vacíos o repetidos y cafeterías sin
// animales se rechazan.
func NewCatalog(in []Cafe) (*Catalog, error) {
	c := &Catalog{
		cafes: make([]Cafe, 0, len(in)),
		byID:  make(map[string]int, len(in)),
	}

	for i, cafe := range in {
		id := strings.TrimSpace(cafe.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: cafe #%d without id", ErrInvalidInput, i)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicated cafe id %q", ErrInvalidInput, id)
		}
		if len(cleanList(cafe.Animals)) == 0 {
			return nil, fmt.Errorf("%w: cafe %q without animals", ErrInvalidInput, id)
		}

		cafe = cafe.clone()
		cafe.ID = id

		c.byID[id] = len(c.cafes)
		c.cafes = append(c.cafes, cafe)
	}

	return c, nil
}

func (c *Catalog) Len() int { return len(c.cafes) }

// All devuelve una copia en el orden del catálogo.
func (c *Catalog) All() []Cafe {
	out := make([]Cafe, len(c.cafes))
	for i, cafe := range c.cafes {
		out[i] = cafe.clone()
	}
	return out
}

func (c *Catalog) GetByID(id string) (Cafe, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Cafe{}, ErrNotFound
	}
	return c.cafes[i].clone(), nil
}

func (c *Catalog) Search(q Query) []Cafe {
	out := Filter(c.cafes, q)
	for i := range out {
		out[i] = out[i].clone()
	}
	return out
}

// Recommend elige n cafeterías distintas al azar (n se recorta al tamaño del catálogo).
func (c *Catalog) Recommend(n int, r *rand.Rand) []Cafe {
	if n <= 0 || len(c.cafes) == 0 {
		return []Cafe{}
	}
	if n > len(c.cafes) {
		n = len(c.cafes)
	}

	idx := r.Perm(len(c.cafes))[:n]
	out := make([]Cafe, 0, n)
	for _, i := range idx {
		out = append(out, c.cafes[i].clone())
	}
	return out
}

// Nearby devuelve las cafeterías a radiusKm o menos, de la más cercana a la más lejana.
func (c *Catalog) Nearby(lat, lon, radiusKm float64) ([]NearbyCafe, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 || radiusKm <= 0 {
		return nil, ErrInvalidInput
	}

	out := make([]NearbyCafe, 0)
	for _, cafe := range c.cafes {
		d := DistanceKm(lat, lon, cafe.Latitude, cafe.Longitude)
		if d <= radiusKm {
			out = append(out, NearbyCafe{Cafe: cafe.clone(), DistanceKm: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out, nil
}

// DistanceKm calcula la distancia ortodrómica (haversine) entre dos puntos.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}
