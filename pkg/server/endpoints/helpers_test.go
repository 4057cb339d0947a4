package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server"
	"github.com/pressroom/pressroom/pkg/server/store"
	"github.com/pressroom/pressroom/pkg/token"
)

var testSecret = []byte("endpoints-test-secret")

// newTestServer builds a server with mocked stores and all endpoints
// registered. Audit output is discarded.
func newTestServer(accounts store.AccountsStore, articles store.ArticlesStore, health store.HealthStore) *server.Server {
	srv := server.NewServer(
		nil,
		accounts,
		articles,
		health,
		token.NewIssuer(testSecret, 0),
		audit.NewLogger(io.Discard),
		"127.0.0.1",
		"0",
	)
	RegisterAll(srv)
	return srv
}

func bearerToken(t *testing.T, accountID int64, role model.Role) string {
	t.Helper()
	tokenString, err := token.NewIssuer(testSecret, 0).Issue(accountID, role)
	require.NoError(t, err)
	return "Bearer " + tokenString
}

func doJSON(srv *server.Server, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)
	return rec
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["msg"].(string)
	return msg
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
