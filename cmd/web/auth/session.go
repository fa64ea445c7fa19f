package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	SessionName       = "videomarkup_session"
	UsernameKey       = "username"
	AccessLevelKey    = "access_level"
	SessionCreatedKey = "created_at"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Kind    string
	Message string
}

type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		slog.Warn("SESSION_SECRET not set; sessions will not survive a restart")
		secret = generateSecret()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

func (sm *SessionManager) SaveSession(w http.ResponseWriter, r *http.Request, username string, accessLevel AccessLevel) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Values[UsernameKey] = username
	session.Values[AccessLevelKey] = string(accessLevel)
	session.Values[SessionCreatedKey] = time.Now().Unix()
	session.Options.Secure = isHTTPS(r)

	return session.Save(r, w)
}

func (sm *SessionManager) GetSession(r *http.Request) (username string, err error) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return "", err
	}

	uname, ok := session.Values[UsernameKey].(string)
	if !ok || uname == "" {
		return "", ErrNotAuthenticated
	}

	return uname, nil
}

// GetAccessLevel reads the stored access level from the session cookie.
// Returns AccessUnauthenticated if the session is missing or invalid.
func (sm *SessionManager) GetAccessLevel(r *http.Request) AccessLevel {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return AccessUnauthenticated
	}

	str, ok := session.Values[AccessLevelKey].(string)
	if !ok {
		return AccessUnauthenticated
	}

	if level := AccessLevel(str); level == AccessAdmin {
		return level
	}
	return AccessUnauthenticated
}

// GetSessionCreatedAt returns the time the session was created.
// Returns zero time if the session is missing or invalid.
func (sm *SessionManager) GetSessionCreatedAt(r *http.Request) time.Time {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return time.Time{}
	}

	unix, ok := session.Values[SessionCreatedKey].(int64)
	if !ok {
		return time.Time{}
	}

	return time.Unix(unix, 0)
}

func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// AddFlash queues a message for the next request.
func (sm *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) error {
	return sm.AddFlashes(w, r, kind, message)
}

// AddFlashes queues several messages of one kind and writes the session
// cookie once.
func (sm *SessionManager) AddFlashes(w http.ResponseWriter, r *http.Request, kind string, messages ...string) error {
	session, _ := sm.store.Get(r, SessionName)
	for _, msg := range messages {
		session.AddFlash(msg, kind)
	}
	session.Options.Secure = isHTTPS(r)
	return session.Save(r, w)
}

// Flashes returns and clears the queued messages, errors first.
func (sm *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return nil
	}

	var out []Flash
	for _, kind := range []string{FlashError, FlashSuccess} {
		for _, v := range session.Flashes(kind) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Kind: kind, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := session.Save(r, w); err != nil {
			slog.Warn("failed to clear flashes", "error", err)
		}
	}
	return out
}

type AccessLevel string

const (
	AccessUnauthenticated AccessLevel = "unauthenticated"
	AccessAdmin           AccessLevel = "admin"
)
