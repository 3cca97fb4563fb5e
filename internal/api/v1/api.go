package v1

import (
	"net/http"
	"os"

	"bookhaven/internal/hardcover"
	"bookhaven/internal/log"
	"bookhaven/internal/middleware"
	"bookhaven/internal/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	store    *store.Store
	metadata *hardcover.Client
	// For JWT
	secret string
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store, metadata *hardcover.Client) *Handler {
	return &Handler{
		store:    store,
		metadata: metadata,
	}
}

func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	middleware := middleware.NewMiddleware(handler.store)
	sr.Use(middleware.HandleCORS)
	sr.Use(middleware.LoggingRequest)

	jwtSecret, err := handler.store.GetOrCreateJWTSecret()
	if err != nil {
		log.Logger.Error("Error getting JWT secret", zap.Error(err))
		os.Exit(1)
	}
	handler.secret = jwtSecret
	// Add authentication middleware
	sr.Use(NewAuthInterceptor(handler.store, jwtSecret).AuthenticationInterceptor)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/signup", handler.signUp).Methods(http.MethodPost)
	sr.HandleFunc("/signin", handler.signIn).Methods(http.MethodPost)
	sr.HandleFunc("/users", handler.listUsers).Methods(http.MethodGet)
	sr.HandleFunc("/users/{id:[0-9]+}", handler.deleteUser).Methods(http.MethodDelete)

	sr.HandleFunc("/authors", handler.listAuthors).Methods(http.MethodGet)
	sr.HandleFunc("/authors", handler.addAuthor).Methods(http.MethodPost)
	sr.HandleFunc("/authors/{id:[0-9]+}", handler.getAuthor).Methods(http.MethodGet)
	sr.HandleFunc("/authors/{id:[0-9]+}", handler.updateAuthor).Methods(http.MethodPut)
	sr.HandleFunc("/authors/{id:[0-9]+}", handler.deleteAuthor).Methods(http.MethodDelete)

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/books", handler.addBook).Methods(http.MethodPost)
	sr.HandleFunc("/books/{id:[0-9]+}", handler.getBook).Methods(http.MethodGet)
	sr.HandleFunc("/books/{id:[0-9]+}", handler.updateBook).Methods(http.MethodPut)
	sr.HandleFunc("/books/{id:[0-9]+}", handler.deleteBook).Methods(http.MethodDelete)
	sr.HandleFunc("/books/{id:[0-9]+}/editions", handler.listEditions).Methods(http.MethodGet)
	sr.HandleFunc("/books/{id:[0-9]+}/editions", handler.addEdition).Methods(http.MethodPost)
	sr.HandleFunc("/books/{id:[0-9]+}/editions/{eid:[0-9]+}", handler.updateEdition).Methods(http.MethodPut)

	sr.HandleFunc("/qualityprofiles", handler.listQualityProfiles).Methods(http.MethodGet)
	sr.HandleFunc("/qualityprofiles", handler.addQualityProfile).Methods(http.MethodPost)
	sr.HandleFunc("/qualityprofiles/{id:[0-9]+}", handler.getQualityProfile).Methods(http.MethodGet)
	sr.HandleFunc("/qualityprofiles/{id:[0-9]+}", handler.updateQualityProfile).Methods(http.MethodPut)
	sr.HandleFunc("/qualityprofiles/{id:[0-9]+}", handler.deleteQualityProfile).Methods(http.MethodDelete)
	sr.HandleFunc("/qualitydefinitions", handler.listQualityDefinitions).Methods(http.MethodGet)
	sr.HandleFunc("/qualitydefinitions/{id:[0-9]+}", handler.updateQualityDefinition).Methods(http.MethodPut)

	sr.HandleFunc("/rootfolders", handler.listRootFolders).Methods(http.MethodGet)
	sr.HandleFunc("/rootfolders", handler.addRootFolder).Methods(http.MethodPost)
	sr.HandleFunc("/rootfolders/{id:[0-9]+}", handler.deleteRootFolder).Methods(http.MethodDelete)

	sr.HandleFunc("/history", handler.listHistory).Methods(http.MethodGet)

	sr.HandleFunc("/settings", handler.listSettings).Methods(http.MethodGet)
	sr.HandleFunc("/settings", handler.updateSetting).Methods(http.MethodPost)

	sr.HandleFunc("/dashboard", handler.getDashboard).Methods(http.MethodGet)

	sr.HandleFunc("/search", handler.search).Methods(http.MethodGet)
	sr.HandleFunc("/search/authors/{slug}", handler.authorDetail).Methods(http.MethodGet)
}
