// Package httpapi is the HTTP boundary of the clipboard. It owns request
// parsing and the mapping from the core error taxonomy to status codes; the
// core stays transport-agnostic.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/clipvault"
	"github.com/unkn0wn-root/clipvault/pad"
	"github.com/unkn0wn-root/clipvault/store"
)

// maxBodyBytes caps request bodies; entries are text blobs, not uploads.
const maxBodyBytes = 1 * 1024 * 1024

type Server struct {
	cb  clipvault.Clipboard
	log *zap.Logger
}

func NewServer(cb clipvault.Clipboard, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cb: cb, log: log}
}

// Register mounts the API routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/add", s.handleAdd)
	mux.HandleFunc("GET /api/get/{id}", s.handleGet)
	mux.HandleFunc("POST /api/reveal/{id}", s.handleReveal)
}

type addRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Key     string `json:"key,omitempty"`
}

type getResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content,omitempty"`
	Protected bool   `json:"protected"`
}

type revealRequest struct {
	Key string `json:"key"`
}

type revealResponse struct {
	Content string `json:"content"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "Content cannot be empty", http.StatusBadRequest)
		return
	}

	if err := s.cb.Write(r.Context(), req.ID, []byte(req.Content), []byte(req.Key)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	f, err := s.cb.Fetch(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := getResponse{ID: f.ID, Protected: f.Protected}
	if !f.Protected {
		resp.Content = string(f.Content)
	}
	writeJSON(w, resp)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req revealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Key == "" {
		http.Error(w, "Key is required", http.StatusBadRequest)
		return
	}

	plaintext, err := s.cb.Reveal(r.Context(), r.PathValue("id"), []byte(req.Key))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, revealResponse{Content: string(plaintext)})
}

// writeError maps the core taxonomy to status codes. Key mismatches get the
// same terse body regardless of how or where the key differed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var lm *pad.LengthMismatchError
	switch {
	case errors.As(err, &lm):
		http.Error(w, lm.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrDuplicate):
		http.Error(w, "Entry already exists", http.StatusConflict)
	case errors.Is(err, clipvault.ErrNotFound):
		http.Error(w, "Entry not found", http.StatusNotFound)
	case errors.Is(err, clipvault.ErrNotEncrypted):
		http.Error(w, "Entry is not encrypted", http.StatusConflict)
	case errors.Is(err, clipvault.ErrInvalidKey):
		http.Error(w, "Invalid key", http.StatusUnauthorized)
	default:
		s.log.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
