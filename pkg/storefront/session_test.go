package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySession struct {
	data []byte
}

func (m *memorySession) Load() ([]byte, error) { return m.data, nil }
func (m *memorySession) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}
func (m *memorySession) Delete() error {
	m.data = nil
	return nil
}

func TestSessionLoginPersistsAndAuthorizes(t *testing.T) {
	var authHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/local":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body["password"] != "secret" {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"data":  nil,
					"error": map[string]any{"status": 400, "name": "ValidationError", "message": "Invalid identifier or password"},
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"jwt":  "tok",
				"user": map[string]any{"id": 1, "username": "ana", "email": "ana@example.com"},
			})
		case "/api/reviews/3":
			authHeader = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"id": 3}, "meta": map[string]any{}})
		}
	})

	repo := &memorySession{}
	s, err := NewSession(c, repo)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	_, err = s.Login(context.Background(), "ana", "wrong")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Invalid identifier or password", se.Message)
	assert.False(t, s.IsAuthenticated())

	u, err := s.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
	assert.True(t, s.IsAuthenticated())
	assert.NotEmpty(t, repo.data)

	_, err = c.DeleteReview(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", authHeader)

	restored, err := NewSession(NewClient(c.BaseURL), repo)
	require.NoError(t, err)
	assert.Equal(t, "tok", restored.Token())
	require.NotNil(t, restored.User())
	assert.Equal(t, "ana@example.com", restored.User().Email)

	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, repo.data)
}

func TestSessionIgnoresCorruptState(t *testing.T) {
	s, err := NewSession(NewClient(DefaultBaseURL), &memorySession{data: []byte("{not json")})
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}
