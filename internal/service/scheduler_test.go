package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucr-mock/internal/domain"
	"ucr-mock/internal/metrics"
	"ucr-mock/internal/mockdata"
	"ucr-mock/internal/repository"
)

func TestSnapshotServesSamePayloadUntilRefresh(t *testing.T) {
	// seed 0: 每次產生都不同，快照才看得出差異
	feed := newTestFeed(0)
	snap := NewSnapshotService(feed, repository.NewMemorySnapshotRepo())
	ctx := context.Background()

	first, err := snap.Dashboard(ctx)
	require.NoError(t, err)
	again, err := snap.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, snap.Refresh(ctx))
	after, err := snap.Dashboard(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.TopUCRs[0].ID, after.TopUCRs[0].ID)

	assert.Equal(t, 2.0, testutil.ToFloat64(feed.Metrics.SnapshotRefreshes))
}

func TestSnapshotHomepageShape(t *testing.T) {
	snap := NewSnapshotService(newTestFeed(0), repository.NewMemorySnapshotRepo())

	data, err := snap.Homepage(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.TrendingUCRs, HomepageTrending)
	assert.Len(t, data.RecentSightings, HomepageSightings)

	latest, ok := snap.Latest(context.Background())
	require.True(t, ok)
	assert.Equal(t, testNow, latest.GeneratedAt)
}

func TestSnapshotTimestampFromFeedClock(t *testing.T) {
	generated := 0
	factory := func() *mockdata.Generator {
		generated++
		return mockdata.New(mockdata.WithSeed(1), mockdata.WithClock(mockdata.FixedClock(testNow)))
	}
	stamp := testNow.Add(90 * time.Minute)
	feed := NewFeedService(factory, mockdata.FixedClock(stamp), domain.HomepageStats{}, domain.AnalyticsSummary{}, metrics.New())
	snap := NewSnapshotService(feed, repository.NewMemorySnapshotRepo())

	require.NoError(t, snap.Refresh(context.Background()))

	latest, ok := snap.Latest(context.Background())
	require.True(t, ok)
	assert.Equal(t, stamp, latest.GeneratedAt)
	// 首頁與儀表板各一次，讀時間不另外建立 Generator
	assert.Equal(t, 2, generated)
}

func TestSnapshotStartRejectsBadSchedule(t *testing.T) {
	snap := NewSnapshotService(newTestFeed(1), repository.NewMemorySnapshotRepo())

	err := snap.Start("every now and then")
	assert.Error(t, err)

	_, ok := snap.Latest(context.Background())
	assert.False(t, ok)
	snap.Stop()
}

func TestSnapshotStartAndStop(t *testing.T) {
	snap := NewSnapshotService(newTestFeed(1), repository.NewMemorySnapshotRepo())

	require.NoError(t, snap.Start("@every 1h"))
	defer snap.Stop()

	_, ok := snap.Latest(context.Background())
	assert.True(t, ok)
	assert.Len(t, snap.Cron.Entries(), 1)
}
