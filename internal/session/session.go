package session

import (
	"fmt"

	"go.uber.org/zap"
)

// Reader exposes the read-only slice of session state a screen may need.
type Reader interface {
	Token() string
	CurrentUserID() string
}

// Writer exposes the login/logout transition.
type Writer interface {
	Login(token, userID string) error
	Logout() error
}

// Controller owns the in-memory session and its persisted copy. All
// transitions go through setSession; everything else only reads.
type Controller struct {
	store  Store
	logger *zap.Logger

	token  string
	userID string
}

var (
	_ Reader = (*Controller)(nil)
	_ Writer = (*Controller)(nil)
)

func NewController(store Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, logger: logger}
}

// Bootstrap restores the persisted session. It never fails the caller:
// read errors degrade to unauthenticated and are logged. A half-written
// pair (token without user id, or the reverse) is treated as absent.
func (c *Controller) Bootstrap() {
	token, userID, err := c.store.ReadCredentials()
	if err != nil {
		c.logger.Warn("session bootstrap failed, starting unauthenticated", zap.Error(err))
		return
	}
	if token == "" || userID == "" {
		return
	}
	c.token, c.userID = token, userID
}

// Login persists the credential pair and promotes the in-memory session.
// An empty token is a logout.
func (c *Controller) Login(token, userID string) error {
	return c.setSession(token, userID)
}

// Logout clears the store and the in-memory session.
func (c *Controller) Logout() error {
	return c.setSession("", "")
}

// setSession is the single transition in either direction. The store is
// updated before memory so a crash mid-transition favors the previous
// state.
func (c *Controller) setSession(token, userID string) error {
	if token == "" {
		if err := c.store.Clear(); err != nil {
			return fmt.Errorf("session: clear credentials: %w", err)
		}
		c.token, c.userID = "", ""
		return nil
	}
	if err := c.store.WriteCredentials(token, userID); err != nil {
		return fmt.Errorf("session: persist credentials: %w", err)
	}
	c.token, c.userID = token, userID
	return nil
}

func (c *Controller) Token() string         { return c.token }
func (c *Controller) CurrentUserID() string { return c.userID }

// Authenticated reports whether a session is active. A present token is
// trusted as-is; validity is only discovered when a request fails.
func (c *Controller) Authenticated() bool { return c.token != "" }
