package cafes

import "strings"

// Query agrupa los cuatro criterios de búsqueda. Todos son opcionales:
// un criterio vacío no restringe nada.
type Query struct {
	Animals    []string // OR dentro del criterio
	Prefecture string   // se busca como substring de Address
	Price      string   // se busca como substring de Price
	Tags       []string // todas deben estar en la cafetería
}

// Normalize recorta espacios y descarta entradas vacías o repetidas.
func (q Query) Normalize() Query {
	return Query{
		Animals:    cleanList(q.Animals),
		Prefecture: strings.TrimSpace(q.Prefecture),
		Price:      strings.TrimSpace(q.Price),
		Tags:       cleanList(q.Tags),
	}
}

func (q Query) IsEmpty() bool {
	n := q.Normalize()
	return len(n.Animals) == 0 && n.Prefecture == "" && n.Price == "" && len(n.Tags) == 0
}

// Matches aplica la regla conjuntiva sobre una sola cafetería.
// Asume una Query ya normalizada.
func (q Query) Matches(c Cafe) bool {
	if len(q.Animals) > 0 {
		shared := false
		for _, a := range q.Animals {
			if c.HasAnimal(a) {
				shared = true
				break
			}
		}
		if !shared {
			return false
		}
	}

	if q.Prefecture != "" && !strings.Contains(c.Address, q.Prefecture) {
		return false
	}

	// Ojo: "〜" y "~" son caracteres distintos y no se normalizan.
	if q.Price != "" && !strings.Contains(c.Price, q.Price) {
		return false
	}

	for _, t := range q.Tags {
		if !c.HasTag(t) {
			return false
		}
	}

	return true
}

// Filter devuelve las cafeterías que cumplen q, en el orden original.
// El resultado nunca es nil.
func Filter(all []Cafe, q Query) []Cafe {
	q = q.Normalize()

	out := make([]Cafe, 0, len(all))
	for _, c := range all {
		if q.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
