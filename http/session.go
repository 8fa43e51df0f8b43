package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/fwojciec/subextract"
	"github.com/google/uuid"
)

// SessionCookie names the cookie that identifies a browser session.
const SessionCookie = "subextract_session"

// session holds one browser's transient view state.
type session struct {
	mu      sync.Mutex
	state   subextract.State
	notices subextract.Notifications

	// Exports parked until the browser fetches them, keyed by one-shot token.
	exports map[string]*subextract.Export
	// Tokens the next render should trigger.
	pending []string
}

func (s *session) drainPending() []string {
	out := s.pending
	s.pending = nil
	return out
}

// takeExport returns the export for token and forgets it.
func (s *session) takeExport(token string) *subextract.Export {
	export, ok := s.exports[token]
	if !ok {
		return nil
	}
	delete(s.exports, token)
	return export
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

// get returns the session named by the request cookie, starting a new one
// when the cookie is missing or unknown.
func (s *sessionStore) get(w http.ResponseWriter, r *http.Request) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, err := r.Cookie(SessionCookie); err == nil {
		if sess, ok := s.sessions[c.Value]; ok {
			return sess
		}
	}

	id := uuid.NewString()
	sess := &session{exports: make(map[string]*subextract.Export)}
	s.sessions[id] = sess
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return sess
}

// Ensure exportDownloader implements subextract.Downloader at compile time.
var _ subextract.Downloader = (*exportDownloader)(nil)

// exportDownloader parks an export in the session so the next page render
// can hand it to the browser's native download. It never fails.
// The caller must hold sess.mu.
type exportDownloader struct {
	sess *session
}

func (d *exportDownloader) Download(_ context.Context, export *subextract.Export) error {
	token := uuid.NewString()
	d.sess.exports[token] = export
	d.sess.pending = append(d.sess.pending, token)
	return nil
}
