package endpoints

import (
	"github.com/pressroom/pressroom/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterAdminEndpoints(srv)
	RegisterNewsEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
