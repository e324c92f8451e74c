package handlers

import (
	"net/http"
	"testing"

	"github.com/Aruntata-2001/task-manager/internal/dto"
)

func TestText_SaveAndList(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "a@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/text/save", token, map[string]string{"text": "remember the milk"})
	if w.Code != http.StatusCreated {
		t.Fatalf("save: status %d, body %s", w.Code, w.Body.String())
	}
	var saved dto.SaveTextResponse
	decode(t, w, &saved)
	if saved.Message != "Text saved successfully" {
		t.Errorf("message = %q", saved.Message)
	}
	if saved.UserText.Text != "remember the milk" {
		t.Errorf("text = %q", saved.UserText.Text)
	}

	w = doJSON(t, r, http.MethodGet, "/api/text/texts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var list []dto.UserTextResponse
	decode(t, w, &list)
	if len(list) != 1 || list[0].Text != "remember the milk" {
		t.Errorf("list = %+v", list)
	}
}

func TestText_RejectsEmpty(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "a@example.com")

	if w := doJSON(t, r, http.MethodPost, "/api/text/save", token, map[string]string{"text": ""}); w.Code != http.StatusBadRequest {
		t.Errorf("empty text: status %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/text/save", token, map[string]string{"text": "   "}); w.Code != http.StatusBadRequest {
		t.Errorf("whitespace text: status %d, want 400", w.Code)
	}
}

func TestText_OwnerScoped(t *testing.T) {
	r, _ := newTestRouter(t)
	tokenA := registerAndLogin(t, r, "a@example.com")
	tokenB := registerAndLogin(t, r, "b@example.com")

	if w := doJSON(t, r, http.MethodPost, "/api/text/save", tokenA, map[string]string{"text": "mine"}); w.Code != http.StatusCreated {
		t.Fatalf("save: status %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/text/texts", tokenB, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list as B: status %d", w.Code)
	}
	var list []dto.UserTextResponse
	decode(t, w, &list)
	if len(list) != 0 {
		t.Errorf("user B sees %d of A's notes", len(list))
	}
}
