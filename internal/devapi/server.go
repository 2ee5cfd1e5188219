package devapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server is the in-memory backend.
type Server struct {
	cfg    Config
	mem    *memoryStore
	log    logrus.FieldLogger
	now    func() time.Time
	router *mux.Router
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the access logger.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Server) { s.log = l } }

// WithClock overrides the time source, mainly for token expiry tests.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// New builds a Server with its routes registered.
func New(cfg Config, opts ...Option) *Server {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	s := &Server{
		cfg: cfg,
		mem: newMemoryStore(),
		log: logrus.StandardLogger(),
		now: defaultNow,
	}
	for _, o := range opts {
		o(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.accessLog)
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.requireUser(s.handleMe)).Methods(http.MethodGet)

	api.HandleFunc("/requests", s.requireUser(s.handleListRequests)).Methods(http.MethodGet)
	api.HandleFunc("/requests", s.requireUser(s.handleCreateRequest)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id}", s.requireUser(s.handleGetRequest)).Methods(http.MethodGet)

	api.HandleFunc("/offers", s.requireUser(s.handleListOffers)).Methods(http.MethodGet)
	api.HandleFunc("/offers", s.requireUser(s.handleCreateOffer)).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// accessLog records method, path, remote, status, bytes and duration.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"status":   rec.status,
			"bytes":    rec.bytes,
			"duration": time.Since(start).Round(time.Microsecond),
		}).Info("request")
	})
}
