package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/config"
	"github.com/workdeck/workdeck/pkg/server/middleware"
	"github.com/workdeck/workdeck/pkg/server/store"
	gormstore "github.com/workdeck/workdeck/pkg/server/store/gorm"
)

type Server struct {
	Router    *mux.Router
	DB        *gorm.DB
	Config    *config.Config
	TokenAuth *middleware.TokenAuthenticator

	Access      store.AccessStore
	Workspaces  store.WorkspacesStore
	Collections store.CollectionsStore
	Users       store.UsersStore
	Documents   store.DocumentsStore
	Prompts     store.PromptsStore
	Datasets    store.DatasetsStore
	Health      store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	tokenSigningKey []byte,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	accessStore := gormstore.NewAccessStore(db)

	return &Server{
		Router:    router,
		DB:        db,
		Config:    cfg,
		TokenAuth: middleware.NewTokenAuthenticator(tokenSigningKey),

		Access:      accessStore,
		Workspaces:  gormstore.NewWorkspacesStore(db),
		Collections: gormstore.NewCollectionsStore(db),
		Users:       gormstore.NewUsersStore(db),
		Documents:   gormstore.NewDocumentsStore(db),
		Prompts:     gormstore.NewPromptsStore(db),
		Datasets:    gormstore.NewDatasetsStore(db),
		Health:      gormstore.NewHealthStore(db),

		srv: srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
