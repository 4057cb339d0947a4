package endpoints

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

func respondWithMsg(w http.ResponseWriter, code int, msg string) {
	respondWithJSON(w, code, map[string]string{"msg": msg})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func internalError(w http.ResponseWriter) {
	respondWithMsg(w, http.StatusInternalServerError, "internal server error")
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// clientIP returns the remote address without the port, for audit events.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// isoTime renders a timestamp for API payloads. The zero time becomes null.
func isoTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
