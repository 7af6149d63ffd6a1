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
)

var testNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func newTestFeed(seed uint64) *FeedService {
	return NewFeedService(
		NewGeneratorFactory(seed, mockdata.FixedClock(testNow)),
		mockdata.FixedClock(testNow),
		domain.HomepageStats{TotalUCRs: 1247, ActiveCreators: 342, SightingsLogged: 8923, RevenueDistributed: "$1.4K USDC"},
		domain.AnalyticsSummary{TotalNfts: 1000, TotalCreators: 500, TotalRevenue: "$1,000,000 USDC"},
		metrics.New(),
	)
}

func TestHomepageShape(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		data, err := newTestFeed(seed).Homepage(context.Background())
		require.NoError(t, err)

		assert.Len(t, data.TrendingUCRs, HomepageTrending)
		assert.Len(t, data.RecentSightings, HomepageSightings)
		assert.Equal(t, 1247, data.Stats.TotalUCRs)
		assert.Equal(t, "$1.4K USDC", data.Stats.RevenueDistributed)
	}
}

func TestGeneratedCountsMatchPayload(t *testing.T) {
	feed := newTestFeed(11)
	count := func(kind string) float64 {
		return testutil.ToFloat64(feed.Metrics.Generated.WithLabelValues(kind))
	}

	home, err := feed.Homepage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(HomepageRecords), count(metrics.KindRecord))
	assert.Equal(t, float64(len(home.RecentSightings)), count(metrics.KindSighting))
	assert.Equal(t, 0.0, count(metrics.KindPoint))

	dash, err := feed.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(HomepageRecords+DashboardRecords), count(metrics.KindRecord))
	assert.Equal(t, float64(len(home.RecentSightings)+DashboardSightings), count(metrics.KindSighting))
	assert.Equal(t, float64(len(dash.RevenueOverTime)+len(dash.UCRsMintedOverTime)), count(metrics.KindPoint))
}

func TestDashboardStatsDerivedFromBatch(t *testing.T) {
	g := mockdata.New(mockdata.WithSeed(42), mockdata.WithClock(mockdata.FixedClock(testNow)))
	data := BuildDashboard(g)

	// 用同一個 seed 重建同一批 records
	replay := mockdata.New(mockdata.WithSeed(42), mockdata.WithClock(mockdata.FixedClock(testNow)))
	records := replay.ContentRecords(DashboardRecords)

	var revenue float64
	var sightings int
	for _, r := range records {
		revenue += r.Stats.Revenue
		sightings += r.Stats.Sightings
	}

	assert.InDelta(t, revenue, data.Stats.TotalRevenue, 1e-6)
	assert.Equal(t, sightings, data.Stats.TotalSightings)
	assert.Equal(t, DashboardRecords, data.Stats.TotalUCRs)
	assert.Equal(t, Summarize(records).ActiveCreators, data.Stats.ActiveCreators)

	assert.Len(t, data.RevenueOverTime, DashboardDays)
	assert.Len(t, data.UCRsMintedOverTime, DashboardDays)
	for _, p := range data.RevenueOverTime {
		assert.GreaterOrEqual(t, p.Value, RevenueMin)
		assert.LessOrEqual(t, p.Value, RevenueMax)
	}
	for _, p := range data.UCRsMintedOverTime {
		assert.GreaterOrEqual(t, p.Value, MintedMin)
		assert.LessOrEqual(t, p.Value, MintedMax)
	}
	assert.Equal(t, "Oct 18", data.RevenueOverTime[DashboardDays-1].Date)
}

func TestDashboardTopAndRecentOrdering(t *testing.T) {
	data, err := newTestFeed(7).Dashboard(context.Background())
	require.NoError(t, err)

	require.LessOrEqual(t, len(data.TopUCRs), DashboardTop)
	for i := 1; i < len(data.TopUCRs); i++ {
		assert.GreaterOrEqual(t, data.TopUCRs[i-1].Stats.Revenue, data.TopUCRs[i].Stats.Revenue)
	}

	require.LessOrEqual(t, len(data.RecentSightings), DashboardRecent)
	for i, s := range data.RecentSightings {
		assert.NotEqual(t, UnknownUCRTitle, s.UCRTitle)
		if i > 0 {
			assert.False(t, s.Timestamp.After(data.RecentSightings[i-1].Timestamp))
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []domain.ContentRecord{
		{ID: "a", Creator: domain.Creator{Address: "0x1"}, Stats: domain.RecordStats{Revenue: 10.5, Sightings: 3}},
		{ID: "b", Creator: domain.Creator{Address: "0x1"}, Stats: domain.RecordStats{Revenue: 4.5, Sightings: 1}},
		{ID: "c", Creator: domain.Creator{Address: "0x2"}, Stats: domain.RecordStats{Revenue: 0, Sightings: 0}},
	}

	assert.Equal(t, domain.DashboardStats{
		TotalRevenue:   15,
		TotalUCRs:      3,
		TotalSightings: 4,
		ActiveCreators: 2,
	}, Summarize(records))

	assert.Equal(t, domain.DashboardStats{}, Summarize(nil))
}

func TestTopByRevenueDoesNotMutateInput(t *testing.T) {
	records := []domain.ContentRecord{
		{ID: "low", Stats: domain.RecordStats{Revenue: 1}},
		{ID: "high", Stats: domain.RecordStats{Revenue: 9}},
		{ID: "mid", Stats: domain.RecordStats{Revenue: 5}},
	}

	top := TopByRevenue(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
	assert.Equal(t, "low", records[0].ID)

	assert.Len(t, TopByRevenue(records, 10), 3)
	assert.Empty(t, TopByRevenue(records, 0))
}

func TestRecentSightingsUnknownTitle(t *testing.T) {
	records := []domain.ContentRecord{{ID: "known", Title: "Neon Pulse"}}
	sightings := []domain.Sighting{
		{ID: "s1", UCRID: "known", Timestamp: testNow.Add(-time.Hour)},
		{ID: "s2", UCRID: "gone", Timestamp: testNow},
	}

	got := RecentSightings(sightings, records, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID)
	assert.Equal(t, UnknownUCRTitle, got[0].UCRTitle)
	assert.Equal(t, "Neon Pulse", got[1].UCRTitle)
}

func TestRecordSightingsPointAtRequestedID(t *testing.T) {
	record, sightings := newTestFeed(3).RecordSightings("ucr-123", 4)

	assert.Equal(t, "ucr-123", record.ID)
	require.Len(t, sightings, 4)
	for _, s := range sightings {
		assert.Equal(t, "ucr-123", s.UCRID)
	}
}

func TestPinnedSeedFactory(t *testing.T) {
	feed := newTestFeed(99)

	assert.Equal(t, feed.Records(5), feed.Records(5))
	assert.Equal(t, feed.TimeSeries(7, 1, 10), feed.TimeSeries(7, 1, 10))
}

func TestRandomFactoryVaries(t *testing.T) {
	feed := newTestFeed(0)

	assert.NotEqual(t, feed.Records(1)[0].ID, feed.Records(1)[0].ID)
}
