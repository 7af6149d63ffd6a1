package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"ucr-mock/internal/domain"
	"ucr-mock/internal/repository"
)

// SnapshotService 依排程預先產生首頁與儀表板資料，兩次刷新之間回傳同一份。
// 用於展示模式，避免每次重新整理頁面數字都在跳。
type SnapshotService struct {
	Cron    *cron.Cron
	Feed    *FeedService
	Repo    repository.SnapshotRepository
	EntryID cron.EntryID

	mu      sync.Mutex // 序列化 Refresh
	started bool
}

func NewSnapshotService(feed *FeedService, repo repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{
		Cron: cron.New(),
		Feed: feed,
		Repo: repo,
	}
}

// Start 先產生一次快照，再依 schedule (標準 5 欄位 cron) 排程
func (s *SnapshotService) Start(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	if err := s.Refresh(context.Background()); err != nil {
		return err
	}

	id, err := s.Cron.AddFunc(schedule, func() {
		if err := s.Refresh(context.Background()); err != nil {
			logrus.Errorf("[Cron] 快照刷新失敗: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	s.EntryID = id
	s.Cron.Start()
	s.started = true

	logrus.Infof("已排程快照刷新: %s", schedule)
	return nil
}

// Stop 等待執行中的刷新結束
func (s *SnapshotService) Stop() {
	if !s.started {
		return
	}
	<-s.Cron.Stop().Done()
}

// Refresh 產生新的一組資料並取代舊快照
func (s *SnapshotService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	homepage, err := s.Feed.Homepage(ctx)
	if err != nil {
		return fmt.Errorf("generate homepage: %w", err)
	}
	dashboard, err := s.Feed.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("generate dashboard: %w", err)
	}

	snap := domain.Snapshot{
		Homepage:    homepage,
		Dashboard:   dashboard,
		GeneratedAt: s.Feed.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s.Feed.Metrics.ObserveSnapshotRefresh()
	logrus.Infof("[Cron] 快照已刷新 (UCRs: %d, revenue: %.2f)", dashboard.Stats.TotalUCRs, dashboard.Stats.TotalRevenue)
	return nil
}

func (s *SnapshotService) latest(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := s.Repo.Latest(ctx)
	if errors.Is(err, repository.ErrNoSnapshot) {
		// 尚未刷新過，先補一次
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
		return s.Repo.Latest(ctx)
	}
	return snap, err
}

func (s *SnapshotService) Homepage(ctx context.Context) (domain.HomepageData, error) {
	snap, err := s.latest(ctx)
	if err != nil {
		return domain.HomepageData{}, err
	}
	return snap.Homepage, nil
}

func (s *SnapshotService) Dashboard(ctx context.Context) (domain.DashboardData, error) {
	snap, err := s.latest(ctx)
	if err != nil {
		return domain.DashboardData{}, err
	}
	return snap.Dashboard, nil
}

// Latest 最近一次快照，尚未產生時回傳 false
func (s *SnapshotService) Latest(ctx context.Context) (domain.Snapshot, bool) {
	snap, err := s.Repo.Latest(ctx)
	if err != nil {
		return domain.Snapshot{}, false
	}
	return *snap, true
}
