package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
)

func setupCache(t *testing.T) *TaskCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTaskCache(rdb, time.Minute)
}

func TestTaskCache_MissThenHit(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	got, err := c.GetList(ctx, 1)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %v", got)
	}

	list := []dom.Task{{ID: 1, UserID: 1, Title: "Buy milk", Status: dom.StatusPending}}
	if err := c.SetList(ctx, 1, list); err != nil {
		t.Fatalf("SetList: %v", err)
	}

	got, err = c.GetList(ctx, 1)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Buy milk" || got[0].Status != dom.StatusPending {
		t.Errorf("got %+v", got)
	}
}

func TestTaskCache_UserScoping(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	if err := c.SetList(ctx, 1, []dom.Task{{ID: 1, UserID: 1, Title: "mine"}}); err != nil {
		t.Fatalf("SetList: %v", err)
	}

	got, err := c.GetList(ctx, 2)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if got != nil {
		t.Errorf("user 2 sees user 1's cache: %+v", got)
	}
}

func TestTaskCache_Invalidate(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	if err := c.SetList(ctx, 1, []dom.Task{{ID: 1, UserID: 1}}); err != nil {
		t.Fatalf("SetList: %v", err)
	}
	if err := c.SetList(ctx, 2, []dom.Task{{ID: 2, UserID: 2}}); err != nil {
		t.Fatalf("SetList: %v", err)
	}

	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	got, err := c.GetList(ctx, 1)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after invalidate, got %+v", got)
	}

	got, err = c.GetList(ctx, 2)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("user 2's entry should survive, got %+v", got)
	}
}
