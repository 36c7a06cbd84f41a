package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rithvikm007/Todo/internal/config"
	"github.com/rithvikm007/Todo/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	_ "github.com/rithvikm007/Todo/docs"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, cfg)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, username, password string) dto.AuthResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, username, resp.User.Username)
	return resp
}

func TestRegisterLoginFlow(t *testing.T) {
	r := newTestRouter(t)

	alice := register(t, r, "alice", "secret123")
	require.Equal(t, int64(1), alice.User.ID)

	// duplicate username is rejected and no second user is created
	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"username": "alice", "password": "again"})
	require.Equal(t, http.StatusConflict, w.Code)

	// login with the same credentials succeeds and the token resolves to alice
	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, alice.User, login.User)

	// wrong password and unknown user get the same response
	wrong := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"username": "alice", "password": "nope"})
	unknown := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"username": "ghost", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	require.Equal(t, wrong.Code, unknown.Code)
	require.JSONEq(t, wrong.Body.String(), unknown.Body.String())

	// missing fields
	w = doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"username": "solo"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"password": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskCRUDScenario(t *testing.T) {
	r := newTestRouter(t)

	alice := register(t, r, "alice", "secret123")
	t1 := alice.Token

	// create a task as alice
	w := doJSON(r, http.MethodPost, "/todos", t1, gin.H{"title": "buy milk"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, alice.User.ID, created.OwnerID)
	require.Equal(t, "", created.Body)
	require.Nil(t, created.UpdatedAt)

	bob := register(t, r, "bob", "other456")
	t2 := bob.Token

	// bob cannot see alice's task, and cannot tell it exists
	w = doJSON(r, http.MethodGet, "/todos/1", t2, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodGet, "/todos/999", t2, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodGet, "/todos", t2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	// alice sees exactly her task
	w = doJSON(r, http.MethodGet, "/todos", t1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	// delete and verify
	w = doJSON(r, http.MethodDelete, "/todos/1", t1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted dto.DeleteTaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	require.True(t, deleted.Success)
	require.Equal(t, created.ID, deleted.Item.ID)

	w = doJSON(r, http.MethodGet, "/todos", t1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestTaskPartialUpdateOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := register(t, r, "alice", "secret123").Token

	w := doJSON(r, http.MethodPost, "/todos", token, gin.H{"title": "title", "body": "body"})
	require.Equal(t, http.StatusCreated, w.Code)

	// body-only update leaves the title alone and stamps updated_at
	w = doJSON(r, http.MethodPut, "/todos/1", token, gin.H{"body": "new body"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "title", updated.Title)
	require.Equal(t, "new body", updated.Body)
	require.NotNil(t, updated.UpdatedAt)

	// explicit empty string overwrites
	w = doJSON(r, http.MethodPut, "/todos/1", token, gin.H{"body": ""})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "", updated.Body)
	require.Equal(t, "title", updated.Title)

	// a subsequent get reflects exactly that delta
	w = doJSON(r, http.MethodGet, "/todos/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, updated, got)

	// update of a missing id is a 404
	w = doJSON(r, http.MethodPut, "/todos/42", token, gin.H{"body": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "alice", "secret123")

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/todos"},
		{http.MethodPost, "/todos"},
		{http.MethodGet, "/todos/1"},
		{http.MethodPut, "/todos/1"},
		{http.MethodDelete, "/todos/1"},
	} {
		w := doJSON(r, tc.method, tc.path, "", gin.H{"title": "x"})
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		require.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	}

	// garbage token gets the same opaque 401
	w := doJSON(r, http.MethodGet, "/todos", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestNonNumericTaskID(t *testing.T) {
	r := newTestRouter(t)
	token := register(t, r, "alice", "secret123").Token

	w := doJSON(r, http.MethodGet, "/todos/abc", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/version", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/swagger-doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"swagger": "2.0"`)

	w = doJSON(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
