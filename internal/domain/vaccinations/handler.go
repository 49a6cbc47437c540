package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/", listRecordsHandler(svc))
		vr.Get("/due", dueWithinHandler(svc))
		vr.Get("/overdue", overdueHandler(svc))
		vr.Post("/", recordHandler(svc))
	})
}

type recordResponse struct {
	ID              string    `json:"vaccination_id"`
	AnimalID        string    `json:"animal_id"`
	AnimalName      string    `json:"animal_name,omitempty"`
	AnimalSpecies   string    `json:"animal_species,omitempty"`
	AnimalStatus    string    `json:"animal_status,omitempty"`
	VaccineID       string    `json:"vaccine_id"`
	VaccineName     string    `json:"vaccine_name,omitempty"`
	VaccinationDate time.Time `json:"vaccination_date"`

	// DueDate como texto: la fecha formateada, o "unavailable" cuando el
	// valor almacenado no parsea como fecha.
	DueDate string `json:"due_date"`
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponses(items))
	}
}

func dueWithinHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 30
		if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "days must be a non-negative integer", http.StatusBadRequest)
				return
			}
			days = n
		}

		items, err := svc.DueWithin(r.Context(), days)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponses(items))
	}
}

func overdueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Overdue(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponses(items))
	}
}

func recordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Authorized {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			AnimalID        string `json:"animal_id"`
			VaccineID       string `json:"vaccine_id"`
			VaccinationDate string `json:"vaccination_date"` // YYYY-MM-DD
			DueDate         string `json:"due_date"`         // YYYY-MM-DD opcional
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		vd, err := time.Parse("2006-01-02", strings.TrimSpace(req.VaccinationDate))
		if err != nil {
			http.Error(w, "vaccination_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var due *time.Time
		if strings.TrimSpace(req.DueDate) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.DueDate))
			if err != nil {
				http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			due = &t
		}

		rec, err := svc.Record(r.Context(), RecordInput{
			AnimalID:        req.AnimalID,
			VaccineID:       req.VaccineID,
			VaccinationDate: vd,
			DueDate:         due,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(View{Record: rec}))
	}
}

func toRecordResponses(items []View) []recordResponse {
	out := make([]recordResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toRecordResponse(v))
	}
	return out
}

func toRecordResponse(v View) recordResponse {
	due := "unavailable"
	if v.DueDate != nil {
		due = v.DueDate.Format("2006-01-02")
	}

	return recordResponse{
		ID:              v.ID,
		AnimalID:        v.AnimalID,
		AnimalName:      v.AnimalName,
		AnimalSpecies:   v.AnimalSpecies,
		AnimalStatus:    v.AnimalStatus,
		VaccineID:       v.VaccineID,
		VaccineName:     v.VaccineName,
		VaccinationDate: v.VaccinationDate,
		DueDate:         due,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrIntegrity):
		http.Error(w, "animal or vaccine reference does not resolve", http.StatusConflict)
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
