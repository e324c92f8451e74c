package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Aruntata-2001/task-manager/internal/auth"
	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/repo"
	"github.com/Aruntata-2001/task-manager/internal/service"
)

// In-memory repos mirroring the Postgres implementations, including the
// error shapes services branch on.

type memUserRepo struct {
	nextID int64
	users  map[string]dom.User
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	u, ok := r.users[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	if _, ok := r.users[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dom.User{ID: r.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	r.nextID++
	r.users[email] = u
	return u, nil
}

type memTaskRepo struct {
	nextID int64
	tasks  map[int64]dom.Task
}

func (r *memTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	t.ID = r.nextID
	r.nextID++
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, userID, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTaskRepo) List(_ context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memTaskRepo) Update(_ context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	patch.ID = t.ID
	patch.UserID = t.UserID
	patch.CreatedAt = t.CreatedAt
	patch.UpdatedAt = time.Now().UTC()
	r.tasks[id] = patch
	return patch, nil
}

func (r *memTaskRepo) Delete(_ context.Context, userID, id int64) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) Toggle(_ context.Context, userID, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Status = t.Status.Toggled()
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	return t, nil
}

type memTextRepo struct {
	nextID int64
	texts  []dom.UserText
}

func (r *memTextRepo) Create(_ context.Context, userID int64, text string) (dom.UserText, error) {
	t := dom.UserText{ID: r.nextID, UserID: userID, Text: text, CreatedAt: time.Now().UTC()}
	r.nextID++
	r.texts = append(r.texts, t)
	return t, nil
}

func (r *memTextRepo) ListByUser(_ context.Context, userID int64) ([]dom.UserText, error) {
	var list []dom.UserText
	for _, t := range r.texts {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

// newTestRouter wires the full API surface over in-memory repos.
func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	tokens := auth.NewTokenManager("test-secret", time.Hour, "task-manager")

	userSvc := service.NewUserService(&memUserRepo{nextID: 1, users: map[string]dom.User{}})
	taskSvc := service.NewTaskService(&memTaskRepo{nextID: 1, tasks: map[int64]dom.Task{}}, nil)
	textSvc := service.NewUserTextService(&memTextRepo{nextID: 1})

	userHandler := NewUserHandler(userSvc, tokens, log)
	taskHandler := NewTaskHandler(taskSvc, log)
	textHandler := NewUserTextHandler(textSvc, log)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)

	protected := api.Group("", auth.RequireUser(tokens))
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.GetByID)
	protected.PUT("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
	protected.PATCH("/tasks/:id/toggle", taskHandler.Toggle)
	protected.POST("/text/save", textHandler.Save)
	protected.GET("/text/texts", textHandler.List)

	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
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

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// registerAndLogin creates a user and returns its bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	creds := map[string]string{"email": email, "password": "pw"}
	if w := doJSON(t, r, http.MethodPost, "/api/users/register", "", creds); w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", creds)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}
	return resp.Token
}
