// Package http serves the browser UI for subextract on a local listener.
package http

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/subextract"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the loopback address the UI binds to by default.
const DefaultAddr = "127.0.0.1:8080"

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves the extraction UI over HTTP.
type Server struct {
	ln       net.Listener
	server   *http.Server
	router   chi.Router
	sessions *sessionStore

	// Bind address. Defaults to DefaultAddr.
	Addr string

	// Services used by the controller. Clipboard may be nil, in which case
	// every copy reports failure.
	Clipboard     subextract.Clipboard
	TextExtractor subextract.TextExtractor

	// Wraps each session's export hand-off, e.g. with logging.
	WrapDownloader func(subextract.Downloader) subextract.Downloader

	Logger *slog.Logger
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		server:   &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router:   chi.NewRouter(),
		sessions: newSessionStore(),
		Addr:     DefaultAddr,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Pages on other sites must not drive the UI through the user's
	// browser: POSTs from another origin are refused, and so is any Host
	// that is not this machine, which covers DNS rebinding.
	csrf := http.NewCrossOriginProtection()
	csrf.SetDenyHandler(http.HandlerFunc(s.handleCrossOrigin))

	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	s.router.Use(s.checkHost)
	s.router.Use(csrf.Handler)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/extract", s.handleExtract)
	s.router.Post("/copy", s.handleCopy)
	s.router.Post("/download/{format}", s.handleDownload)
	s.router.Get("/exports/{token}", s.handleExport)

	s.server.Handler = s.router
	return s
}

// Open binds the listener. Call Serve to start handling requests.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// Serve handles requests until Close is called.
func (s *Server) Serve() error {
	if s.ln == nil {
		return fmt.Errorf("server not open")
	}
	if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return "http://" + s.Addr
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP routes a request. Useful for tests without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// controller builds a controller bound to the session.
// The caller must hold sess.mu.
func (s *Server) controller(sess *session) *subextract.Controller {
	var downloader subextract.Downloader = &exportDownloader{sess: sess}
	if s.WrapDownloader != nil {
		downloader = s.WrapDownloader(downloader)
	}
	c := subextract.NewController(&sess.state, s.Clipboard, downloader, &sess.notices)
	c.TextExtractor = s.TextExtractor
	return c
}

type indexView struct {
	State     subextract.State
	Display   string
	Empty     bool
	Count     int
	Notices   []subextract.Notification
	Downloads []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	sess.mu.Lock()
	view := indexView{
		State:     sess.state,
		Display:   s.controller(sess).Display(),
		Empty:     len(sess.state.Subdomains) == 0,
		Count:     len(sess.state.Subdomains),
		Notices:   sess.notices.Drain(),
		Downloads: sess.drainPending(),
	}
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := indexTemplate.Execute(w, view); err != nil {
		s.Logger.Error("render index", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		Error(w, r, s.Logger, subextract.Errorf(subextract.EINVALID, "invalid form: %v", err))
		return
	}

	sess := s.sessions.get(w, r)
	sess.mu.Lock()
	sess.state.Input = r.PostForm.Get("input")
	sess.state.Keyword = r.PostForm.Get("keyword")
	sess.state.UniqueOnly = r.PostForm.Get("unique") != ""
	sess.state.HTML = r.PostForm.Get("html") != ""
	list := s.controller(sess).Extract()
	sess.mu.Unlock()

	s.Logger.Debug("extract", "matches", len(list))
	redirectHome(w, r)
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	sess.mu.Lock()
	s.controller(sess).Copy(r.Context())
	sess.mu.Unlock()

	redirectHome(w, r)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format, err := subextract.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	sess := s.sessions.get(w, r)
	sess.mu.Lock()
	s.controller(sess).Download(r.Context(), format)
	sess.mu.Unlock()

	redirectHome(w, r)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	sess.mu.Lock()
	export := sess.takeExport(chi.URLParam(r, "token"))
	sess.mu.Unlock()

	if export == nil {
		Error(w, r, s.Logger, subextract.Errorf(subextract.ENOTFOUND, "export not found"))
		return
	}

	w.Header().Set("Content-Type", export.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.Header().Set("ETag", ETag(export.Content))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, export.Content)
}

// ETag returns a strong entity tag for content.
func ETag(content string) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64String(content)))
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCrossOrigin(w http.ResponseWriter, r *http.Request) {
	s.Logger.Warn("cross-origin request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
	)
	Error(w, r, s.Logger, subextract.Errorf(subextract.EFORBIDDEN, "cross-origin request rejected"))
}

func (s *Server) checkHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowedHost(r.Host) {
			s.Logger.Warn("host rejected", "host", r.Host, "path", r.URL.Path)
			Error(w, r, s.Logger, subextract.Errorf(subextract.EFORBIDDEN, "host %q not allowed", r.Host))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowedHost reports whether a request Host names this machine: localhost,
// a loopback IP, or the host part of the bind address.
func (s *Server) allowedHost(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}
	bound, _, err := net.SplitHostPort(s.Addr)
	return err == nil && bound != "" && strings.EqualFold(host, bound)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.Logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}
