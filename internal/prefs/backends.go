package prefs

import (
	"net/http"
	"sync"
	"time"
)

// MemoryBackend keeps preferences in a map. Safe for concurrent use.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[string]string{}}
}

func (m *MemoryBackend) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// cookieMaxAge keeps preference cookies for a year.
const cookieMaxAge = 365 * 24 * time.Hour

// CookieBackend stores preferences in browser cookies. It lives for one
// request: reads come from the request, writes go to the response, and
// writes are visible to later reads on the same backend.
type CookieBackend struct {
	r       *http.Request
	w       http.ResponseWriter
	written map[string]string
}

// NewCookieBackend binds a backend to one request/response pair.
func NewCookieBackend(w http.ResponseWriter, r *http.Request) *CookieBackend {
	return &CookieBackend{r: r, w: w, written: map[string]string{}}
}

func (c *CookieBackend) Get(key string) (string, error) {
	if v, ok := c.written[key]; ok {
		return v, nil
	}
	if c.r == nil {
		return "", ErrNotFound
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", ErrNotFound
	}
	return cookie.Value, nil
}

func (c *CookieBackend) Set(key, value string) error {
	if prev, ok := c.written[key]; ok && prev == value {
		return nil
	}
	c.written[key] = value
	if c.w == nil {
		return nil
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
