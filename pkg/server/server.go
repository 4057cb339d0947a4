package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/pressroom/pressroom/pkg/audit"
	"github.com/pressroom/pressroom/pkg/server/middleware"
	"github.com/pressroom/pressroom/pkg/server/store"
	"github.com/pressroom/pressroom/pkg/token"
)

// Server wires the router, database, stores and guard together. Endpoints
// are registered against it by the endpoints subpackage.
type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Accounts store.AccountsStore
	Articles store.ArticlesStore
	Health   store.HealthStore
	Tokens   *token.Issuer
	Guard    *middleware.Guard
	Audit    *audit.Logger
	srv      *http.Server
}

func NewServer(
	db *gorm.DB,
	accounts store.AccountsStore,
	articles store.ArticlesStore,
	health store.HealthStore,
	tokens *token.Issuer,
	auditLogger *audit.Logger,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	router.Use(middleware.RequestID)
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	if auditLogger == nil {
		auditLogger = audit.NewLogger(os.Stdout)
	}

	return &Server{
		Router:   router,
		DB:       db,
		Accounts: accounts,
		Articles: articles,
		Health:   health,
		Tokens:   tokens,
		Guard:    middleware.NewGuard(tokens),
		Audit:    auditLogger,
		srv:      srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
