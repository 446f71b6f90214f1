// Package server exposes the sizing engine as a small JSON API, the
// HTTP counterpart of the CLI front end. The engine itself stays pure;
// this package owns all decoding, validation mapping and logging.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Server wires the sizing endpoints onto a gorilla/mux router.
type Server struct {
	router *mux.Router
}

// New builds the routing table.
func New() *Server {
	s := &Server{router: mux.NewRouter()}

	limiter := NewIPRateLimiter(5, 10)

	api := s.router.PathPrefix("/api/tools").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/current/calc", s.handleCurrent).Methods("POST")
	api.HandleFunc("/cable/select", s.handleSelect).Methods("POST")
	api.HandleFunc("/cable/batch", s.handleBatch).Methods("POST")
	api.HandleFunc("/report/pdf", s.handleReport).Methods("POST")

	return s
}

// Handler returns the root handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return cors(s.router)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
