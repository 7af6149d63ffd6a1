package repository

import (
	"context"
	"errors"
	"sync"

	"ucr-mock/internal/domain"
)

var ErrNoSnapshot = errors.New("snapshot not generated yet")

type SnapshotRepository interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Latest(ctx context.Context) (*domain.Snapshot, error)
}

// memorySnapshotRepo 只保留最新一份，程序重啟即消失
type memorySnapshotRepo struct {
	mu     sync.RWMutex
	latest *domain.Snapshot
}

func NewMemorySnapshotRepo() SnapshotRepository {
	return &memorySnapshotRepo{}
}

func (r *memorySnapshotRepo) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = &snap
	return nil
}

// Latest 回傳副本指標，呼叫方不可修改內部 slice
func (r *memorySnapshotRepo) Latest(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil {
		return nil, ErrNoSnapshot
	}
	snap := *r.latest
	return &snap, nil
}
