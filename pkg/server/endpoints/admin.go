package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/identity"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server"
	"github.com/pressroom/pressroom/pkg/server/store"
)

// RegisterAdminEndpoints registers the approval-workflow routes. All of
// them require authentication; all but /reporters require the admin role.
func RegisterAdminEndpoints(s *server.Server) {
	admin := s.Router.PathPrefix("/api/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(s.Guard.Authenticate))

	adminOnly := s.Guard.RequireRole(model.RoleAdmin, "Admins only")

	admin.Handle("/requests", adminOnly(handlePendingReporters(s.Accounts))).Methods("GET")
	admin.Handle("/user/{id:[0-9]+}", adminOnly(handleReporterDetails(s.Accounts))).Methods("GET")
	admin.Handle("/approve", adminOnly(handleApprove(s.Accounts, s.Audit))).Methods("POST")
	admin.Handle("/revoke", adminOnly(handleRevoke(s.Accounts, s.Audit))).Methods("POST")

	// Any authenticated account may list approved reporters.
	admin.Handle("/reporters", handleApprovedReporters(s.Accounts)).Methods("GET")
}

func reporterProfile(a *model.Account) map[string]interface{} {
	return map[string]interface{}{
		"id":                   a.ID,
		"name":                 a.Name,
		"email":                a.Email,
		"phone_number":         a.PhoneNumber,
		"citizenship_number":   a.CitizenshipNumber,
		"profile_photo_url":    a.ProfilePhotoURL,
		"reporter_id_card_url": a.IDCardURL,
		"created_at":           isoTime(a.CreatedAt),
	}
}

func handlePendingReporters(accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := accounts.PendingReporters()
		if err != nil {
			internalError(w)
			return
		}

		payload := make([]map[string]interface{}, 0, len(pending))
		for i := range pending {
			payload = append(payload, reporterProfile(&pending[i]))
		}
		respondWithJSON(w, http.StatusOK, payload)
	}
}

func handleReporterDetails(accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondWithMsg(w, http.StatusNotFound, "User not found")
			return
		}

		account, err := accounts.ByID(id)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				respondWithMsg(w, http.StatusNotFound, "User not found")
				return
			}
			internalError(w)
			return
		}
		if account.Role != model.RoleReporter {
			respondWithMsg(w, http.StatusBadRequest, "User is not a reporter")
			return
		}

		payload := reporterProfile(account)
		payload["is_approved"] = account.IsApproved
		respondWithJSON(w, http.StatusOK, payload)
	}
}

type userIDRequest struct {
	UserID *int64 `json:"user_id"`
}

func handleApprove(accounts store.AccountsStore, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userIDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == nil {
			respondWithMsg(w, http.StatusBadRequest, "user_id is required")
			return
		}

		id, _ := identity.Get(r.Context())

		licenseKey, err := accounts.Approve(*req.UserID)
		if err != nil {
			auditLog.Log(audit.ApproveEvent{
				AdminID:      id.AccountID,
				ReporterID:   *req.UserID,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			switch {
			case errors.Is(err, store.ErrAccountNotFound):
				respondWithMsg(w, http.StatusNotFound, "User not found")
			case errors.Is(err, store.ErrNotReporter):
				respondWithMsg(w, http.StatusBadRequest, "User is not a reporter")
			default:
				internalError(w)
			}
			return
		}

		auditLog.Log(audit.ApproveEvent{
			AdminID:    id.AccountID,
			ReporterID: *req.UserID,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"msg":         "Reporter approved",
			"license_key": licenseKey,
		})
	}
}

func handleApprovedReporters(accounts store.AccountsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reporters, err := accounts.ApprovedReporters()
		if err != nil {
			internalError(w)
			return
		}

		payload := make([]map[string]interface{}, 0, len(reporters))
		for i := range reporters {
			a := &reporters[i]
			payload = append(payload, map[string]interface{}{
				"id":         a.ID,
				"name":       a.Name,
				"email":      a.Email,
				"license":    a.LicenseKey,
				"created_at": isoTime(a.CreatedAt),
			})
		}
		respondWithJSON(w, http.StatusOK, payload)
	}
}

func handleRevoke(accounts store.AccountsStore, auditLog *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userIDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == nil {
			respondWithMsg(w, http.StatusBadRequest, "user_id is required")
			return
		}

		id, _ := identity.Get(r.Context())

		if err := accounts.Revoke(*req.UserID); err != nil {
			auditLog.Log(audit.RevokeEvent{
				AdminID:      id.AccountID,
				ReporterID:   *req.UserID,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			if errors.Is(err, store.ErrAccountNotFound) || errors.Is(err, store.ErrNotReporter) {
				respondWithMsg(w, http.StatusNotFound, "User not found or not a reporter")
				return
			}
			internalError(w)
			return
		}

		auditLog.Log(audit.RevokeEvent{
			AdminID:    id.AccountID,
			ReporterID: *req.UserID,
			ClientIP:   clientIP(r),
			Success:    true,
		})
		respondWithMsg(w, http.StatusOK, "Reporter revoked")
	}
}
