package favorites

import (
	"encoding/json"
	"net/http"

	"paws-cafe/internal/domain/cafes"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, cafesSvc *cafes.Service) {
	r.Route("/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Post("/save", saveFavoritesHandler(svc))
		fr.Get("/{cafeID}", getFavoriteStatusHandler(svc))
		fr.Post("/{cafeID}/toggle", toggleFavoriteHandler(svc, cafesSvc))
	})
}

type favoriteCafeResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Animals []string `json:"animals"`
	Address string   `json:"address"`
	Price   string   `json:"price"`
	URL     string   `json:"url"`
}

type favoriteStatusResponse struct {
	CafeID   string `json:"cafe_id"`
	Favorite bool   `json:"favorite"`
}

// listFavoritesHandler godoc
// @Summary Listar favoritos
// @Description Favoritos en orden de alta. Pueden incluir cafeterías que ya no están en el catálogo.
// @Tags favorites
// @Produce json
// @Success 200 {array} favoriteCafeResponse
// @Router /favorites [get]
func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := svc.List()
		out := make([]favoriteCafeResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toFavoriteCafeResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getFavoriteStatusHandler godoc
// @Summary ¿Es favorita?
// @Tags favorites
// @Produce json
// @Param cafeID path string true "ID de la cafetería"
// @Success 200 {object} favoriteStatusResponse
// @Router /favorites/{cafeID} [get]
func getFavoriteStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "cafeID")
		writeJSON(w, http.StatusOK, favoriteStatusResponse{CafeID: id, Favorite: svc.IsFavorite(id)})
	}
}

// toggleFavoriteHandler godoc
// @Summary Alternar favorito
// @Description Agrega la cafetería a favoritos o la quita si ya estaba.
// @Tags favorites
// @Produce json
// @Param cafeID path string true "ID de la cafetería"
// @Success 200 {object} favoriteStatusResponse
// @Failure 404 {string} string "cafe not found"
// @Router /favorites/{cafeID}/toggle [post]
func toggleFavoriteHandler(svc *Service, cafesSvc *cafes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "cafeID")

		c, err := cafesSvc.GetByID(id)
		if err != nil {
			// Un favorito huérfano (fuera del catálogo) todavía se puede quitar.
			stored, ok := findByID(svc.List(), id)
			if !ok {
				http.Error(w, "cafe not found", http.StatusNotFound)
				return
			}
			c = stored
		}

		fav := svc.Toggle(r.Context(), c)
		writeJSON(w, http.StatusOK, favoriteStatusResponse{CafeID: c.ID, Favorite: fav})
	}
}

// saveFavoritesHandler godoc
// @Summary Guardar favoritos
// @Description Persiste el conjunto actual en el almacenamiento local.
// @Tags favorites
// @Success 204
// @Router /favorites/save [post]
func saveFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Save(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func findByID(items []cafes.Cafe, id string) (cafes.Cafe, bool) {
	for _, c := range items {
		if c.ID == id {
			return c, true
		}
	}
	return cafes.Cafe{}, false
}

func toFavoriteCafeResponse(c cafes.Cafe) favoriteCafeResponse {
	return favoriteCafeResponse{
		ID:      c.ID,
		Name:    c.Name,
		Animals: c.Animals,
		Address: c.Address,
		Price:   c.Price,
		URL:     c.URL,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
