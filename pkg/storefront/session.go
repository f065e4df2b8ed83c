package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/pkg/errors"
)

const SessionKey = "auth-storage"

// SessionRepository is where the signed-in state survives restarts.
type SessionRepository interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}

type sessionState struct {
	JWT  string `json:"jwt"`
	User *User  `json:"user"`
}

type Session struct {
	mu     sync.RWMutex
	repo   SessionRepository
	client *Client
	state  sessionState
}

// NewSession restores any stored session and makes client send its token.
func NewSession(client *Client, repo SessionRepository) (*Session, error) {
	s := &Session{repo: repo, client: client}

	data, err := repo.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}
	if len(data) > 0 {
		// an unreadable session just means signing in again
		_ = json.Unmarshal(data, &s.state)
	}

	client.Token = s.Token
	return s, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.JWT
}

func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) Login(ctx context.Context, identifier, password string) (User, error) {
	return s.authenticate(ctx, "/auth/local", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
}

func (s *Session) Register(ctx context.Context, username, email, password string) (User, error) {
	return s.authenticate(ctx, "/auth/local/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (s *Session) authenticate(ctx context.Context, path string, body map[string]string) (User, error) {
	var res sessionState
	if err := s.client.do(ctx, http.MethodPost, path, nil, body, false, &res); err != nil {
		return User{}, err
	}
	if res.JWT == "" || res.User == nil {
		return User{}, errors.New("authentication response without token")
	}

	data, err := json.Marshal(res)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(data); err != nil {
		return User{}, errors.Wrap(err, "save session")
	}
	s.state = res
	return *res.User, nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	return errors.Wrap(s.repo.Delete(), "clear session")
}
