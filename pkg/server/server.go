package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kirisagi/jpfreq/internal/logger"
	"github.com/kirisagi/jpfreq/pkg/config"
	"github.com/kirisagi/jpfreq/pkg/suggest"
	"github.com/kirisagi/jpfreq/pkg/vocab"
)

// Server handles the IPC for table filtering and suggestions.
type Server struct {
	table    *vocab.Table
	index    *suggest.Index
	cfg      *config.Config
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
	log      *log.Logger
	readings bool
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(table *vocab.Table, index *suggest.Index, cfg *config.Config) *Server {
	return NewServerIO(table, index, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams. Used by tests and
// by callers that manage the process pipes themselves.
func NewServerIO(table *vocab.Table, index *suggest.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		table:    table,
		index:    index,
		cfg:      cfg,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
		log:      logger.New("ipc"),
		readings: cfg.Data.AnnotateReadings,
	}
}

// Start begins listening for IPC requests. It returns nil on clean
// client disconnect (EOF).
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the request op.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "filter":
		s.handleFilter(request)
	case "complete":
		s.handleComplete(request)
	case "info":
		s.handleInfo(request)
	case "health":
		s.sendResponse(map[string]string{"id": request.ID, "status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// handleFilter runs the substring filter and returns rows, count and the
// display label. The highlight flag only gates the known markers on the
// returned rows; the row set itself never depends on it.
func (s *Server) handleFilter(request Request) {
	if max := s.cfg.Server.MaxTermLength; max > 0 && len(request.Term) > max {
		s.sendError(request.ID, fmt.Sprintf("Term exceeds maximum length of %d bytes", max), 400)
		s.log.Debug("Term too long in request")
		return
	}

	start := time.Now()
	view := s.table.Filter(request.Term, request.Highlight)
	elapsed := time.Since(start)

	rows := view.Rows
	if max := s.cfg.Server.MaxResults; max > 0 && len(rows) > max {
		rows = rows[:max]
	}

	wire := make([]Row, len(rows))
	for i, r := range rows {
		wire[i] = Row{
			Rank:    r.Rank,
			Word:    r.Word,
			Reading: s.reading(r),
			Known:   view.Highlight && r.Known,
		}
	}

	s.sendResponse(FilterResponse{
		ID:        request.ID,
		Rows:      wire,
		Count:     view.Count,
		Label:     view.CountLabel(),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleComplete serves prefix suggestions for the search box.
func (s *Server) handleComplete(request Request) {
	if request.Term == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		s.log.Debug("Prefix is empty in request")
		return
	}

	limit := request.Limit
	if limit < 1 || (s.cfg.Server.MaxCompletions > 0 && limit > s.cfg.Server.MaxCompletions) {
		limit = s.cfg.Server.MaxCompletions
	}

	start := time.Now()
	suggestions := s.index.Complete(request.Term, limit)
	elapsed := time.Since(start)

	wire := make([]Row, len(suggestions))
	for i, sg := range suggestions {
		wire[i] = Row{
			Rank:    sg.Rank,
			Word:    sg.Word,
			Reading: sg.Reading,
			Known:   request.Highlight && sg.Known,
		}
	}

	s.sendResponse(CompleteResponse{
		ID:        request.ID,
		Rows:      wire,
		Count:     len(wire),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleInfo reports table statistics.
func (s *Server) handleInfo(request Request) {
	s.sendResponse(InfoResponse{
		ID:         request.ID,
		Status:     "ok",
		TotalWords: s.table.Len(),
		KnownWords: s.table.KnownCount(),
		Readings:   s.readings,
	})
}

// reading returns the record's reading only when annotation is enabled,
// keeping responses small for the common unannotated case.
func (s *Server) reading(r vocab.Record) string {
	if !s.readings {
		return ""
	}
	return r.Reading
}

// sendResponse encodes the given response as msgpack and writes it to
// the client.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
