package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/profile", getProfileHandler(svc))
	r.Put("/profile", saveProfileHandler(svc))
}

type profileRequest struct {
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Region   string `json:"region"`
}

type profileResponse struct {
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Region   string `json:"region"`
}

// getProfileHandler godoc
// @Summary Ver perfil
// @Description Perfil guardado; vacío si nunca se guardó (o si lo guardado no se puede leer).
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toProfileResponse(svc.Get(r.Context())))
	}
}

// saveProfileHandler godoc
// @Summary Guardar perfil
// @Description Sobrescribe el perfil completo. age 0-120; gender "", 男性, 女性 o その他; region una prefectura o "".
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body profileRequest true "Perfil"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /profile [put]
func saveProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req profileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), Profile{
			FullName: req.FullName,
			Nickname: req.Nickname,
			Email:    req.Email,
			Age:      req.Age,
			Gender:   Gender(req.Gender),
			Region:   req.Region,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		FullName: p.FullName,
		Nickname: p.Nickname,
		Email:    p.Email,
		Age:      p.Age,
		Gender:   string(p.Gender),
		Region:   p.Region,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
