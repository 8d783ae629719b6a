package plans

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultUpcomingLimit = 3

func RegisterRoutes(r chi.Router, svc *Service, loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}

	r.Route("/plans", func(pr chi.Router) {
		pr.Get("/", listPlansHandler(svc))
		pr.Post("/", createPlanHandler(svc, loc))
		pr.Get("/upcoming", upcomingPlansHandler(svc))
		pr.Delete("/{planID}", deletePlanHandler(svc))
	})
}

type createPlanRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM opcional
	Name string `json:"name"`
	Memo string `json:"memo"`
}

type planResponse struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Name string    `json:"name"`
	Memo string    `json:"memo"`
}

// listPlansHandler godoc
// @Summary Listar visitas
// @Description Todas las visitas guardadas, por fecha ascendente.
// @Tags plans
// @Produce json
// @Success 200 {array} planResponse
// @Router /plans [get]
func listPlansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toPlanResponses(svc.List(r.Context())))
	}
}

// upcomingPlansHandler godoc
// @Summary Próximas visitas
// @Tags plans
// @Produce json
// @Param limit query int false "Máximo a devolver (por defecto 3)"
// @Success 200 {array} planResponse
// @Failure 400 {string} string "limit must be a positive integer"
// @Router /plans/upcoming [get]
func upcomingPlansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultUpcomingLimit
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		writeJSON(w, http.StatusOK, toPlanResponses(svc.Upcoming(r.Context(), limit)))
	}
}

// createPlanHandler godoc
// @Summary Agregar visita
// @Description Agrega una visita. date es YYYY-MM-DD y time HH:MM (opcional), en la zona horaria configurada. Un nombre vacío no guarda nada.
// @Tags plans
// @Accept json
// @Produce json
// @Param payload body createPlanRequest true "Visita"
// @Success 201 {object} planResponse
// @Failure 400 {string} string "invalid json / date / time"
// @Failure 422 {string} string "plan name is empty"
// @Router /plans [post]
func createPlanHandler(svc *Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), loc)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var clock *time.Time
		if v := strings.TrimSpace(req.Time); v != "" {
			t, err := time.ParseInLocation("15:04", v, loc)
			if err != nil {
				http.Error(w, "time must be HH:MM", http.StatusBadRequest)
				return
			}
			clock = &t
		}

		p, err := svc.Add(r.Context(), AddInput{
			Date:  date,
			Clock: clock,
			Name:  req.Name,
			Memo:  req.Memo,
		})
		if err != nil {
			if errors.Is(err, ErrEmptyName) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPlanResponse(p))
	}
}

// deletePlanHandler godoc
// @Summary Borrar visita
// @Tags plans
// @Param planID path string true "ID de la visita"
// @Success 204
// @Failure 404 {string} string "plan not found"
// @Router /plans/{planID} [delete]
func deletePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "planID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "plan not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPlanResponse(p Plan) planResponse {
	return planResponse{
		ID:   p.ID,
		Date: p.Date,
		Name: p.Name,
		Memo: p.Memo,
	}
}

func toPlanResponses(in []Plan) []planResponse {
	out := make([]planResponse, 0, len(in))
	for _, p := range in {
		out = append(out, toPlanResponse(p))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
