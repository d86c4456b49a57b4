package devbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getmockd/mcpconsole/internal/id"
	"github.com/getmockd/mcpconsole/internal/storage"
	"github.com/getmockd/mcpconsole/pkg/instance"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// DefaultAddr is the address the original backend listens on.
const DefaultAddr = "localhost:8000"

// maxBodySize caps create request bodies.
const maxBodySize = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Server implements the backend contract over an InstanceStore.
type Server struct {
	store     storage.InstanceStore
	publicURL string
	catalog   *instance.Catalog
	newID     func() string
	log       *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPublicURL sets the base used to build endpoint URLs. Without it the
// base is derived from each create request's Host.
func WithPublicURL(u string) Option {
	return func(s *Server) { s.publicURL = strings.TrimRight(u, "/") }
}

// WithCatalog restricts creates to categories in catalog.
func WithCatalog(c *instance.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithIDGenerator replaces the instance id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) { s.newID = fn }
}

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// New creates a server backed by store.
func New(store storage.InstanceStore, opts ...Option) *Server {
	s := &Server{
		store: store,
		newID: id.Instance,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	return s
}

// Handler returns the HTTP handler with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mcp", s.handleList)
	mux.HandleFunc("POST /mcp", s.handleCreate)
	mux.HandleFunc("DELETE /mcp/{id}", s.handleDelete)
	mux.HandleFunc("GET /llm/mcp", s.handleMCPInfo)
	return corsMiddleware(loggingMiddleware(s.log, mux))
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully. ready, if non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if ready != nil {
		ready(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleList handles GET /mcp.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

// handleCreate handles POST /mcp.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > maxBodySize {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	var draft instance.Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if err := draft.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.catalog != nil {
		for _, table := range draft.PermittedCategories {
			if !s.catalog.Has(table) {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("table %s does not exist", table))
				return
			}
		}
	}

	inst := instance.Instance{
		Name:                draft.Name,
		Description:         draft.Description,
		PermittedCategories: draft.PermittedCategories,
	}
	// Retry on the unlikely id collision.
	for attempt := 0; attempt < 3; attempt++ {
		inst.ID = s.newID()
		inst.EndpointURL = EndpointURL(s.baseURL(r), inst.ID)
		err = s.store.Add(inst)
		if !errors.Is(err, storage.ErrDuplicateID) {
			break
		}
	}
	if err != nil {
		s.log.Error("failed to store instance", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store instance")
		return
	}

	s.log.Info("instance created", "id", inst.ID, "name", inst.Name)
	writeJSON(w, http.StatusCreated, inst)
}

// handleDelete handles DELETE /mcp/{id}.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	instanceID := r.PathValue("id")
	deleted, err := s.store.Delete(instanceID)
	if err != nil {
		s.log.Error("failed to delete instance", "id", instanceID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete instance")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "MCP instance not found")
		return
	}
	s.log.Info("instance deleted", "id", instanceID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "MCP instance deleted"})
}

// handleMCPInfo handles GET /llm/mcp.
func (s *Server) handleMCPInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"mcp_url": s.baseURL(r) + "/llm/mcp/"})
}

func (s *Server) baseURL(r *http.Request) string {
	if s.publicURL != "" {
		return s.publicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// EndpointURL builds the MCP endpoint address of an instance.
func EndpointURL(base, instanceID string) string {
	return strings.TrimRight(base, "/") + "/llm/mcp/?mcp_name=" + url.QueryEscape(instanceID)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Detail: message})
}
