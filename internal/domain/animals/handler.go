package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/middleware"
	"shelter-dashboard/internal/platform/images"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, photos *images.Resolver) {
	r.Route("/animals", func(ar chi.Router) {
		// Lectura de invitado: no pide sesión.
		ar.Get("/", listAnimalsHandler(svc, photos))

		// Mutaciones: solo staff con sesión autorizada.
		ar.Post("/", createAnimalHandler(svc))
		ar.Patch("/{animalID}/status", updateStatusHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type animalResponse struct {
	ID             string     `json:"animal_id"`
	Name           string     `json:"name"`
	Species        string     `json:"species"`
	Breed          string     `json:"breed,omitempty"`
	Size           string     `json:"size"`
	Sex            string     `json:"sex"`
	Hypoallergenic bool       `json:"hypoallergenic"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	IntakeDate     time.Time  `json:"intake_date"`
	Status         string     `json:"status"`
	ShelterID      string     `json:"shelter_id"`
	ShelterName    string     `json:"shelter_name,omitempty"`
	City           string     `json:"city,omitempty"`

	// PhotoURL vacío = sin foto, la UI muestra placeholder.
	PhotoURL string `json:"photo_url,omitempty"`
}

type createAnimalRequest struct {
	Name           string `json:"name"`
	Species        string `json:"species"`
	Breed          string `json:"breed"`
	Size           string `json:"size"`
	Sex            string `json:"sex"`
	Hypoallergenic bool   `json:"hypoallergenic"`
	DateOfBirth    string `json:"date_of_birth"` // YYYY-MM-DD opcional
	Status         string `json:"status"`
	ShelterID      string `json:"shelter_id"`
}

func listAnimalsHandler(svc *Service, photos *images.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.ListFiltered(r.Context(), Filter{
			Species:             q.Get("species"),
			Status:              q.Get("status"),
			ShelterNameContains: q.Get("shelter_contains"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, v := range items {
			resp := toAnimalResponse(v.Animal)
			resp.ShelterName = v.ShelterName
			resp.City = v.City
			if p, ok := photos.Lookup(v.Name); ok {
				resp.PhotoURL = p
			}
			out = append(out, resp)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var dob *time.Time
		if strings.TrimSpace(req.DateOfBirth) != "" {
			t, err := time.Parse("2006-01-02", req.DateOfBirth)
			if err != nil {
				http.Error(w, "date_of_birth must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			dob = &t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:           req.Name,
			Species:        Species(strings.TrimSpace(req.Species)),
			Breed:          req.Breed,
			Size:           Size(strings.TrimSpace(req.Size)),
			Sex:            req.Sex,
			Hypoallergenic: req.Hypoallergenic,
			DateOfBirth:    dob,
			Status:         Status(strings.TrimSpace(req.Status)),
			ShelterID:      req.ShelterID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "animalID"), Status(strings.TrimSpace(req.Status)))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		confirmed := strings.EqualFold(r.URL.Query().Get("confirm"), "true")
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID"), confirmed); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:             a.ID,
		Name:           a.Name,
		Species:        string(a.Species),
		Breed:          a.Breed,
		Size:           string(a.Size),
		Sex:            a.Sex,
		Hypoallergenic: a.Hypoallergenic,
		DateOfBirth:    a.DateOfBirth,
		IntakeDate:     a.IntakeDate,
		Status:         string(a.Status),
		ShelterID:      a.ShelterID,
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
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConfirmRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrIntegrity):
		http.Error(w, "integrity violation", http.StatusConflict)
	case errors.Is(err, storage.ErrUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en los handlers de cada módulo
// para no crear helpers compartidos demasiado pronto. Si se repite en más
// módulos todavía, recién ahí conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
