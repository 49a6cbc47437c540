package shelters

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/shelters", listSheltersHandler(svc))
}

type shelterResponse struct {
	ID   string `json:"shelter_id"`
	Name string `json:"shelter_name"`
	City string `json:"city"`
}

func listSheltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, shelterResponse{ID: sh.ID, Name: sh.Name, City: sh.City})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON se duplica a propósito en los handlers de cada módulo
// (ver nota en animals/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
