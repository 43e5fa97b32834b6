package server

import (
	"bufio"
	"html/template"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/session"
	"github.com/filipedpsilva/counter/widget"
)

const jsonContentType = "application/json"

// Server serves the counter page, its JSON API and the live socket.
type Server struct {
	store  session.Store
	logger *log.Logger
	about  template.HTML
	http.Handler

	mu   sync.Mutex
	live map[*liveConn]struct{}
}

func New(store session.Store, logger *log.Logger) (*Server, error) {
	about, err := renderAbout()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:  store,
		logger: logger,
		about:  about,
		live:   make(map[*liveConn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFiles())))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /counters/{id}", s.handleForm)
	mux.HandleFunc("GET /counters/{id}", s.handleState)
	mux.HandleFunc("POST /counters/{id}/increment", s.handleIncrement)
	mux.HandleFunc("PUT /counters/{id}/inputs", s.handleInputs)
	mux.HandleFunc("GET /counters/{id}/ws", s.handleLive)

	s.Handler = s.logRequests(mux)
	return s, nil
}

// handleIndex starts a new counter on every visit, so a reload shows the defaults.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id, wdg := s.store.Create()
	s.writePage(w, http.StatusOK, pageView{ID: id, State: wdg.State(), About: s.about})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// handleForm is the no-script path: apply the submitted inputs, count once.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	wdg, err := s.store.Get(id)
	if err != nil {
		http.Error(w, err.Error(), errs.StatusCode(err))
		return
	}
	if err := r.ParseForm(); err != nil {
		err = errs.NewBadInputError("parse form").Wrap(err)
		http.Error(w, err.Error(), errs.StatusCode(err))
		return
	}

	current := wdg.State()
	startAt, step := current.StartAt, current.Step
	if r.PostForm.Has("start_at") {
		startAt = r.PostForm.Get("start_at")
	}
	if r.PostForm.Has("step") {
		step = r.PostForm.Get("step")
	}

	if err := wdg.SetInputs(startAt, step); err != nil {
		s.writePage(w, errs.StatusCode(err), pageView{ID: id, State: current, Error: err.Error(), About: s.about})
		return
	}
	s.writePage(w, http.StatusOK, pageView{ID: id, State: wdg.Increment(), About: s.about})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	wdg, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, wdg.State())
}

func (s *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	wdg, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, wdg.Increment())
}

type inputsRequest struct {
	StartAt *string `json:"start_at"`
	Step    *string `json:"step"`
}

func (s *Server) handleInputs(w http.ResponseWriter, r *http.Request) {
	wdg, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errs.NewBadInputError("decode inputs").Wrap(err))
		return
	}
	if err := applyInputs(wdg, req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, wdg.State())
}

// applyInputs treats a missing field as unchanged.
func applyInputs(wdg *widget.Widget, req inputsRequest) error {
	current := wdg.State()
	startAt, step := current.StartAt, current.Step
	if req.StartAt != nil {
		startAt = *req.StartAt
	}
	if req.Step != nil {
		step = *req.Step
	}
	return wdg.SetInputs(startAt, step)
}

func (s *Server) writePage(w http.ResponseWriter, status int, view pageView) {
	page, err := renderPage(view)
	if err != nil {
		s.logger.Printf("page: %v", err)
		http.Error(w, err.Error(), errs.StatusCode(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(page)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errs.StatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Printf("error: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		err = errs.NewInternalError("encode response").Wrap(err)
		s.logger.Printf("error: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	w.Write(body)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the live socket take over the connection through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errs.NewInternalError("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}
