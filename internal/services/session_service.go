package services

import (
	"context"
	"errors"

	"foodcart/internal/api"
	"foodcart/internal/store"
)

// ErrNotAuthenticated is the single "no usable session" signal for every
// privileged flow.
var ErrNotAuthenticated = errors.New("user not authenticated")

type SessionService struct {
	Sessions *store.SessionStore
	API      *api.Client
}

func NewSessionService(sessions *store.SessionStore, client *api.Client) *SessionService {
	return &SessionService{Sessions: sessions, API: client}
}

// Login verifies credentials upstream; only a successful verification sets
// the persisted flag and stores the bearer identity.
func (s *SessionService) Login(ctx context.Context, sid, username, password string) error {
	bearer, err := s.API.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.Sessions.SetLoggedIn(sid, username, bearer)
}

// Logout terminates the upstream session first; local state is cleared only
// when the upstream confirms, so a failed call changes nothing.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return err
	}
	if !sess.LoggedIn || sess.Bearer == "" {
		return ErrNotAuthenticated
	}
	if err := s.API.Logout(ctx, sess.Bearer); err != nil {
		return err
	}
	return s.Sessions.ClearLogin(sid)
}

// Current restores the persisted state without talking upstream. The flag it
// reports can be stale; callers that gate privileged work use Verify.
func (s *SessionService) Current(sid string) (store.Session, error) {
	return s.Sessions.Get(sid)
}

// Verify probes the upstream with the stored bearer (a whoami via GET
// /profile). A 401 means the server session expired underneath the persisted
// flag; the local flag is cleared so the UI stops looking authenticated.
func (s *SessionService) Verify(ctx context.Context, sid string) (store.Session, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return store.Session{}, err
	}
	if !sess.LoggedIn || sess.Bearer == "" {
		return store.Session{}, ErrNotAuthenticated
	}
	if _, err := s.API.GetProfile(ctx, sess.Bearer); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			_ = s.Sessions.ClearLogin(sid)
			return store.Session{}, ErrNotAuthenticated
		}
		return store.Session{}, err
	}
	return sess, nil
}
