package staff

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/staff/login", loginHandler(svc))
	r.Post("/staff/logout", logoutHandler(svc))
}

type loginRequest struct {
	EmployerID string `json:"employer_id"`
	Secret     string `json:"secret"`
}

type loginResponse struct {
	Token      string `json:"token"`
	StaffName  string `json:"staff_name,omitempty"`
	Authorized bool   `json:"authorized"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Login(r.Context(), LoginInput{
			PriorToken: strings.TrimSpace(r.Header.Get("X-Session-Token")),
			EmployerID: req.EmployerID,
			Secret:     req.Secret,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, "invalid employer id or password", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:      sess.Token,
			StaffName:  sess.StaffName,
			Authorized: sess.Authorized,
		})
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Header.Get("X-Session-Token"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
