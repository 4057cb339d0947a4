package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server"
	"github.com/pressroom/pressroom/pkg/server/store"
	"github.com/pressroom/pressroom/pkg/token"
)

// RegisterAuthEndpoints registers the public registration and login routes
func RegisterAuthEndpoints(s *server.Server) {
	api := s.Router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", handleRegister(s.Accounts, s.Audit)).Methods("POST")
	api.HandleFunc("/login", handleLogin(s.Accounts, s.Tokens, s.Audit)).Methods("POST")
}

type registerRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PhoneNumber       string `json:"phone_number"`
	CitizenshipNumber string `json:"citizenship_number"`
	ProfilePhotoURL   string `json:"profile_photo_url"`
	ReporterIDCardURL string `json:"reporter_id_card_url"`
}

func (req *registerRequest) complete() bool {
	return req.Name != "" && req.Email != "" && req.Password != "" &&
		req.PhoneNumber != "" && req.CitizenshipNumber != "" &&
		req.ProfilePhotoURL != "" && req.ReporterIDCardURL != ""
}

func handleRegister(accounts store.AccountsStore, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete() {
			respondWithMsg(w, http.StatusBadRequest, "Missing fields")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			internalError(w)
			return
		}

		_, err = accounts.Register(store.Registration{
			Name:              req.Name,
			Email:             req.Email,
			PasswordHash:      string(hash),
			PhoneNumber:       req.PhoneNumber,
			CitizenshipNumber: req.CitizenshipNumber,
			ProfilePhotoURL:   req.ProfilePhotoURL,
			IDCardURL:         req.ReporterIDCardURL,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				auditLog.Log(audit.RegisterEvent{
					Email:        req.Email,
					ClientIP:     clientIP(r),
					Success:      false,
					ErrorMessage: "email already registered",
				})
				respondWithMsg(w, http.StatusBadRequest, "Email already registered")
				return
			}
			internalError(w)
			return
		}

		auditLog.Log(audit.RegisterEvent{
			Email:    req.Email,
			ClientIP: clientIP(r),
			Success:  true,
		})
		respondWithMsg(w, http.StatusCreated, "Registration submitted, pending approval")
	}
}

type loginRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	LicenseKey *string `json:"license_key"`
}

func handleLogin(accounts store.AccountsStore, tokens *token.Issuer, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
			respondWithMsg(w, http.StatusBadRequest, "Missing email or password")
			return
		}

		denied := func(status int, msg string, reason string) {
			auditLog.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: reason,
			})
			respondWithMsg(w, status, msg)
		}

		account, err := accounts.ByEmail(req.Email)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				denied(http.StatusUnauthorized, "Invalid credentials", "unknown email")
				return
			}
			internalError(w)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
			denied(http.StatusUnauthorized, "Invalid credentials", "bad password")
			return
		}

		if !account.IsApproved {
			denied(http.StatusForbidden, "Not approved yet", "not approved")
			return
		}

		// Reporters must present their current license key. Admins don't
		// carry one.
		if account.Role == model.RoleReporter {
			var provided string
			if req.LicenseKey != nil {
				provided = *req.LicenseKey
			}
			if provided != account.License() {
				denied(http.StatusUnauthorized, "Invalid license key", "bad license key")
				return
			}
		}

		accessToken, err := tokens.Issue(account.ID, account.Role)
		if err != nil {
			internalError(w)
			return
		}

		auditLog.Log(audit.AuthenticateEvent{
			Email:     account.Email,
			AccountID: account.ID,
			ClientIP:  clientIP(r),
			Success:   true,
		})
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"access_token":      accessToken,
			"role":              account.Role,
			"id":                account.ID,
			"name":              account.Name,
			"email":             account.Email,
			"phone_number":      account.PhoneNumber,
			"profile_photo_url": account.ProfilePhotoURL,
		})
	}
}
