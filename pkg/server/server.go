package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/internal/logger"
	"github.com/sberney/typeahead/internal/utils"
	"github.com/sberney/typeahead/pkg/config"
	"github.com/sberney/typeahead/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for prefix suggestions
type Server struct {
	set     *suggest.CandidateSet
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a suggestion server using stdin/stdout for IPC
func NewServer(set *suggest.CandidateSet, cfg *config.Config) *Server {
	return NewServerIO(set, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a suggestion server over an explicit transport.
// Logs go to stderr, so stdout stays clean for the protocol.
func NewServerIO(set *suggest.CandidateSet, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		set:     set,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request on its command
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "complete":
		s.handleComplete(request)
	case "candidates":
		s.handleCandidates(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleComplete processes a suggestion request. It validates the input
// length, caps the limit to the configured maximum, applies the junk filter
// when enabled, and sends the matches in candidate order. A blank input is
// answered with an empty result rather than an error.
func (s *Server) handleComplete(request Request) {
	input := request.Input

	if utf8.RuneCountInString(input) > s.cfg.Server.MaxInput {
		s.sendError(request.ID, fmt.Sprintf("Input exceeds maximum length of %d characters", s.cfg.Server.MaxInput), 400)
		s.log.Debug("Input too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	var matches []suggest.Candidate
	if !s.cfg.Server.EnableFilter || utils.IsValidInput(input) {
		matches = s.set.Filter(input)
	}
	elapsed := time.Since(start)

	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{Prefix: m.Prefix, Remainder: m.Remainder}
	}

	s.send(Response{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleCandidates sends the full candidate inventory
func (s *Server) handleCandidates(request Request) {
	entries := s.set.Strings()
	s.send(CandidatesResponse{
		ID:         request.ID,
		Candidates: entries,
		Count:      len(entries),
	})
}

// send encodes the given response onto the transport
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
