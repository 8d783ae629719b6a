package cafes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	defaultRecommendCount = 2
	defaultRadiusKm       = 5.0
)

func RegisterRoutes(r chi.Router, svc *Service, recommendCount int) {
	if recommendCount <= 0 {
		recommendCount = defaultRecommendCount
	}

	r.Route("/cafes", func(cr chi.Router) {
		cr.Get("/", searchCafesHandler(svc))
		cr.Get("/recommended", recommendedCafesHandler(svc, recommendCount))
		cr.Get("/nearby", nearbyCafesHandler(svc))
		cr.Get("/{cafeID}", getCafeHandler(svc))
	})

	r.Get("/search/options", searchOptionsHandler())
}

// cafeResponse es la ficha de una cafetería tal como la ve la UI.
type cafeResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Animals   []string `json:"animals"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Price     string   `json:"price"`
	URL       string   `json:"url"`
	ImageName string   `json:"image_name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Tags      []string `json:"tags"`
}

type nearbyCafeResponse struct {
	Cafe       cafeResponse `json:"cafe"`
	DistanceKm float64      `json:"distance_km"`
}

// searchCafesHandler godoc
// @Summary Buscar cafeterías
// @Description Filtra el catálogo. Todos los criterios son opcionales; se combinan con AND. `animal` se combina con OR entre sus valores y `tag` exige todos los valores. Sin criterios devuelve el catálogo completo. Un resultado vacío es `[]`.
// @Tags cafes
// @Produce json
// @Param animal query []string false "Tipo de animal (repetible)" collectionFormat(multi)
// @Param prefecture query string false "Prefectura (substring de la dirección)"
// @Param price query string false "Banda de precio (substring)"
// @Param tag query []string false "Condición requerida (repetible)" collectionFormat(multi)
// @Success 200 {array} cafeResponse
// @Router /cafes [get]
func searchCafesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := QueryFromValues(r.URL.Query())
		writeJSON(w, http.StatusOK, toCafeResponses(svc.Search(q)))
	}
}

// getCafeHandler godoc
// @Summary Detalle de cafetería
// @Tags cafes
// @Produce json
// @Param cafeID path string true "ID de la cafetería"
// @Success 200 {object} cafeResponse
// @Failure 404 {string} string "cafe not found"
// @Router /cafes/{cafeID} [get]
func getCafeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(chi.URLParam(r, "cafeID"))
		if err != nil {
			http.Error(w, "cafe not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCafeResponse(c))
	}
}

// recommendedCafesHandler godoc
// @Summary Cafeterías recomendadas
// @Description Devuelve n cafeterías distintas elegidas al azar.
// @Tags cafes
// @Produce json
// @Param n query int false "Cantidad (por defecto RECOMMEND_COUNT)"
// @Success 200 {array} cafeResponse
// @Failure 400 {string} string "n must be a positive integer"
// @Router /cafes/recommended [get]
func recommendedCafesHandler(svc *Service, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := defaultN
		if v := strings.TrimSpace(r.URL.Query().Get("n")); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				http.Error(w, "n must be a positive integer", http.StatusBadRequest)
				return
			}
			n = parsed
		}
		writeJSON(w, http.StatusOK, toCafeResponses(svc.Recommend(n)))
	}
}

// nearbyCafesHandler godoc
// @Summary Cafeterías cercanas
// @Description Cafeterías dentro de radius_km del punto, ordenadas por distancia.
// @Tags cafes
// @Produce json
// @Param lat query number true "Latitud"
// @Param lon query number true "Longitud"
// @Param radius_km query number false "Radio en km (por defecto 5)"
// @Success 200 {array} nearbyCafeResponse
// @Failure 400 {string} string "lat/lon inválidos"
// @Router /cafes/nearby [get]
func nearbyCafesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(q.Get("lat")), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(q.Get("lon")), 64)
		if errLat != nil || errLon != nil {
			http.Error(w, "lat and lon are required numbers", http.StatusBadRequest)
			return
		}

		radius := defaultRadiusKm
		if v := strings.TrimSpace(q.Get("radius_km")); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				http.Error(w, "radius_km must be a number", http.StatusBadRequest)
				return
			}
			radius = parsed
		}

		items, err := svc.Nearby(lat, lon, radius)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "lat/lon out of range or radius_km <= 0", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]nearbyCafeResponse, 0, len(items))
		for _, it := range items {
			out = append(out, nearbyCafeResponse{
				Cafe:       toCafeResponse(it.Cafe),
				DistanceKm: it.DistanceKm,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// searchOptionsHandler godoc
// @Summary Opciones de búsqueda
// @Description Animales, prefecturas, bandas de precio y condiciones que ofrece la UI.
// @Tags cafes
// @Produce json
// @Success 200 {object} SearchOptions
// @Router /search/options [get]
func searchOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Options())
	}
}

// QueryFromValues arma una Query desde parámetros de URL.
// Acepta tanto valores repetidos (animal=イヌ&animal=ネコ) como separados por coma.
func QueryFromValues(v map[string][]string) Query {
	return Query{
		Animals:    splitMulti(v["animal"]),
		Prefecture: first(v["prefecture"]),
		Price:      first(v["price"]),
		Tags:       splitMulti(v["tag"]),
	}.Normalize()
}

func splitMulti(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func toCafeResponse(c Cafe) cafeResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return cafeResponse{
		ID:        c.ID,
		Name:      c.Name,
		Animals:   c.Animals,
		Address:   c.Address,
		Phone:     c.Phone,
		Price:     c.Price,
		URL:       c.URL,
		ImageName: c.ImageName,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Tags:      tags,
	}
}

func toCafeResponses(in []Cafe) []cafeResponse {
	out := make([]cafeResponse, 0, len(in))
	for _, c := range in {
		out = append(out, toCafeResponse(c))
	}
	return out
}

// writeJSON se repite en cada módulo (cafes/plans/favorites/profile) para no
// crear un paquete compartido solo por esto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
