package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"aidconnect/internal/api"
	"aidconnect/internal/domain"
	dashboardsvc "aidconnect/internal/services/dashboard"
	listingsvc "aidconnect/internal/services/listing"
	sessionsvc "aidconnect/internal/services/session"
	"aidconnect/internal/store"
)

// Wire bundles the store, client and services for the CLI.
type Wire struct {
	Config    Config
	Log       logrus.FieldLogger
	Store     domain.SessionStore
	API       domain.APIClient
	Session   *sessionsvc.Service
	Listing   *listingsvc.Service
	Dashboard *dashboardsvc.Service
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log logrus.FieldLogger) (*Wire, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	sessionStore := store.NewSessionFileStore(cfg.Home, cfg.Passphrase)

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	// The client reads its bearer token from the session service, which in
	// turn logs in through the client.
	client := api.NewHTTP(cfg.Server, httpClient, nil)
	client.Log = log
	sessionSvc := sessionsvc.New(client, sessionStore, log)
	client.Tokens = sessionSvc

	return &Wire{
		Config:    cfg,
		Log:       log,
		Store:     sessionStore,
		API:       client,
		Session:   sessionSvc,
		Listing:   listingsvc.New(client, client),
		Dashboard: dashboardsvc.New(client),
		HTTP:      httpClient,
	}, nil
}
