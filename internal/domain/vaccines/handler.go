package vaccines

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Get("/", listVaccinesHandler(svc))
		vr.Post("/", createVaccineHandler(svc))
		vr.Post("/{vaccineID}/adjust", adjustQuantityHandler(svc))
	})
}

type vaccineResponse struct {
	ID       string `json:"vaccine_id"`
	Name     string `json:"vaccine_name"`
	Species  string `json:"species"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

func listVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func createVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req struct {
			Name     string `json:"vaccine_name"`
			Species  string `json:"species"`
			Quantity int    `json:"quantity"`
			Notes    string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Name,
			Species:         Species(strings.TrimSpace(req.Species)),
			InitialQuantity: req.Quantity,
			Notes:           req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toVaccineResponse(v))
	}
}

func adjustQuantityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req struct {
			Delta int `json:"delta"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, changed, err := svc.AdjustQuantity(r.Context(), chi.URLParam(r, "vaccineID"), req.Delta)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			vaccineResponse
			Changed bool `json:"changed"`
		}{toVaccineResponse(v), changed})
	}
}

func toVaccineResponse(v Vaccine) vaccineResponse {
	return vaccineResponse{
		ID:       v.ID,
		Name:     v.Name,
		Species:  string(v.Species),
		Quantity: v.Quantity,
		Notes:    v.Notes,
	}
}

func requireStaff(w http.ResponseWriter, r *http.Request) bool {
	sess, ok := middleware.GetSession(r.Context())
	if !ok || !sess.Authorized {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "vaccine not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
