package apiclient

import "sync"

// Credentials holds the bearer token for outbound calls, shared by every
// client built on it. Reads are taken at call time, so a token cleared
// mid-flight does not affect requests already on the wire.
type Credentials struct {
	mu    sync.RWMutex
	token string
}

func NewCredentials(token string) *Credentials {
	return &Credentials{token: token}
}

// Token returns the current bearer token, or an empty string when logged out.
func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken stores a new bearer token. Called on login.
func (c *Credentials) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear drops the stored token. Called on logout and on any 401 response.
func (c *Credentials) Clear() {
	c.SetToken("")
}
