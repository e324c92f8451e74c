package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Aruntata-2001/task-manager/internal/cache"
	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/repo"
)

// countingTaskRepo wraps the fake repo and counts List calls so cache hits
// are observable.
type countingTaskRepo struct {
	*fakeTaskRepo
	listCalls int
}

func (r *countingTaskRepo) List(ctx context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	r.listCalls++
	return r.fakeTaskRepo.List(ctx, userID, f)
}

func newCachedService(t *testing.T) (*TaskService, *countingTaskRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := &countingTaskRepo{fakeTaskRepo: newFakeTaskRepo()}
	return NewTaskService(r, cache.NewTaskCache(rdb, time.Minute)), r
}

func TestTaskList_CachesUnfiltered(t *testing.T) {
	svc, r := newCachedService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, CreateTaskParams{Title: "one"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.List(ctx, 1, repo.TaskFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := svc.List(ctx, 1, repo.TaskFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if r.listCalls != 1 {
		t.Errorf("repo List called %d times, want 1 (second read from cache)", r.listCalls)
	}
}

func TestTaskList_FilteredBypassesCache(t *testing.T) {
	svc, r := newCachedService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, CreateTaskParams{Title: "one", Category: "Work"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.List(ctx, 1, repo.TaskFilter{Category: "Work"}); err != nil {
			t.Fatalf("List: %v", err)
		}
	}
	if r.listCalls != 2 {
		t.Errorf("repo List called %d times, want 2 (filters skip cache)", r.listCalls)
	}
}

func TestTaskWrite_InvalidatesCache(t *testing.T) {
	svc, _ := newCachedService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateTaskParams{Title: "one"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.List(ctx, 1, repo.TaskFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if _, err := svc.Toggle(ctx, 1, created.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	list, err := svc.List(ctx, 1, repo.TaskFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Status != dom.StatusCompleted {
		t.Errorf("stale read after toggle: %+v", list)
	}
}
