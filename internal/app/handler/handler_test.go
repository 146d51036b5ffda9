package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/repository"
	"space_fleet/internal/app/service"
	"space_fleet/internal/app/utils"
)

const testKey = "handler-key"

type fakeUsers struct {
	roles  map[string]string
	tokens map[int]string
	nextID int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{roles: map[string]string{"boss": ds.RoleModerator}, tokens: map[int]string{}}
}

func (f *fakeUsers) RegisterUser(user ds.User) (ds.User, error) {
	if _, ok := f.roles[user.Login]; ok {
		return ds.User{}, repository.ErrUserExists
	}
	f.roles[user.Login] = ds.RoleCreator
	f.nextID++
	return ds.User{UserID: f.nextID, Login: user.Login, Role: ds.RoleCreator}, nil
}

func (f *fakeUsers) LoginUser(_ context.Context, login, password string) (string, error) {
	role, ok := f.roles[login]
	if !ok || password != "secret" {
		return "", repository.ErrInvalidCredentials
	}
	id := len(login)
	token, err := utils.GenerateJWT([]byte(testKey), id, role, time.Hour)
	if err != nil {
		return "", err
	}
	f.tokens[id] = token
	return token, nil
}

func (f *fakeUsers) LogoutUser(_ context.Context, userID int) error {
	delete(f.tokens, userID)
	return nil
}

func (f *fakeUsers) TokenActive(_ context.Context, userID int, token string) (bool, error) {
	return f.tokens[userID] == token, nil
}

func (f *fakeUsers) JWTKey() string {
	return testKey
}

func newRouter(users UserStore, authEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(service.New(repository.NewMemoryStore()), nil, users, authEnabled)
	h.SetupRoutes(r)
	return r
}

func send(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const orion = `{"name":"Orion","planet":"Earth","shipType":"MERCHANT","prodDate":32503680000000,"speed":0.5,"crewSize":10}`

func login(t *testing.T, r http.Handler, user string) string {
	t.Helper()
	w := send(r, http.MethodPost, "/rest/users/login", "", `{"login":"`+user+`","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Token
}

func TestOpenRoutesWithoutAuth(t *testing.T) {
	r := newRouter(nil, true)

	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/rest/ships", "", orion).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/rest/ships", "", "").Code)
	assert.Equal(t, "1", send(r, http.MethodGet, "/rest/ships/count", "", "").Body.String())
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/rest/ships/1", "", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/rest/ships/1", "", `{"speed":0.6}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, send(r, http.MethodPost, "/rest/ships/1/image", "", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodDelete, "/rest/ships/1", "", "").Code)
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodPost, "/rest/users/login", "", `{}`).Code)
}

func TestMutationsRequireModerator(t *testing.T) {
	users := newFakeUsers()
	r := newRouter(users, true)

	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodPost, "/rest/ships", "", orion).Code)

	w := send(r, http.MethodPost, "/rest/users/register", "", `{"login":"pilot","password":"secret","role":"moderator"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"creator"`)
	assert.Equal(t, http.StatusConflict,
		send(r, http.MethodPost, "/rest/users/register", "", `{"login":"pilot","password":"x"}`).Code)

	pilot := login(t, r, "pilot")
	assert.Equal(t, http.StatusForbidden, send(r, http.MethodPost, "/rest/ships", pilot, orion).Code)

	boss := login(t, r, "boss")
	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/rest/ships", boss, orion).Code)
	// чтение доступно всем
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/rest/ships/1", "", "").Code)

	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/rest/users/logout", boss, "").Code)
	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodDelete, "/rest/ships/1", boss, "").Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := newRouter(newFakeUsers(), true)
	w := send(r, http.MethodPost, "/rest/users/login", "", `{"login":"boss","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthDisabledKeepsUserRoutes(t *testing.T) {
	r := newRouter(newFakeUsers(), false)
	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/rest/ships", "", orion).Code)
	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodPost, "/rest/users/logout", "", "").Code)
}
