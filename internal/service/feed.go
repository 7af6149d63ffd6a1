package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	"ucr-mock/internal/domain"
	"ucr-mock/internal/metrics"
	"ucr-mock/internal/mockdata"
)

// 首頁與儀表板每次產生的資料量
const (
	HomepageRecords   = 10
	HomepageSightings = 5
	HomepageTrending  = 3

	DashboardRecords   = 50
	DashboardSightings = 100
	DashboardDays      = 30
	DashboardTop       = 5
	DashboardRecent    = 5

	RevenueMin = 50
	RevenueMax = 500
	MintedMin  = 1
	MintedMax  = 15

	UnknownUCRTitle = "Unknown UCR"
)

// GeneratorFactory 每次呼叫回傳新的 Generator (Generator 不能跨 goroutine 共用)
type GeneratorFactory func() *mockdata.Generator

// NewGeneratorFactory seed 為 0 時每次使用新的亂數，否則每次都用同一個 seed
func NewGeneratorFactory(seed uint64, clock mockdata.Clock) GeneratorFactory {
	return func() *mockdata.Generator {
		opts := []mockdata.Option{mockdata.WithClock(clock)}
		if seed != 0 {
			opts = append(opts, mockdata.WithSeed(seed))
		}
		return mockdata.New(opts...)
	}
}

// FeedProvider 首頁與儀表板資料來源 (即時產生或排程快照)
type FeedProvider interface {
	Homepage(ctx context.Context) (domain.HomepageData, error)
	Dashboard(ctx context.Context) (domain.DashboardData, error)
}

type FeedService struct {
	NewGenerator GeneratorFactory
	Clock        mockdata.Clock
	HomeStats    domain.HomepageStats
	Analytics    domain.AnalyticsSummary
	Metrics      *metrics.Metrics
}

// NewFeedService clock 應與 factory 共用同一個，快照時間才會一致
func NewFeedService(factory GeneratorFactory, clock mockdata.Clock, home domain.HomepageStats, analytics domain.AnalyticsSummary, m *metrics.Metrics) *FeedService {
	if clock == nil {
		clock = mockdata.SystemClock{}
	}
	return &FeedService{
		NewGenerator: factory,
		Clock:        clock,
		HomeStats:    home,
		Analytics:    analytics,
		Metrics:      m,
	}
}

// Homepage 每次請求都重新產生
func (s *FeedService) Homepage(ctx context.Context) (domain.HomepageData, error) {
	data, n := buildHomepage(s.NewGenerator(), s.HomeStats)
	s.observe(n)
	return data, nil
}

func (s *FeedService) Dashboard(ctx context.Context) (domain.DashboardData, error) {
	data, n := buildDashboard(s.NewGenerator())
	s.observe(n)
	return data, nil
}

// generated 一次產生的實際數量
type generated struct {
	records, sightings, points int
}

func (s *FeedService) observe(n generated) {
	s.Metrics.ObserveGenerated(metrics.KindRecord, n.records)
	s.Metrics.ObserveGenerated(metrics.KindSighting, n.sightings)
	s.Metrics.ObserveGenerated(metrics.KindPoint, n.points)
}

func (s *FeedService) Records(count int) []domain.ContentRecord {
	records := s.NewGenerator().ContentRecords(count)
	s.Metrics.ObserveGenerated(metrics.KindRecord, len(records))
	return records
}

// RecordSightings 產生單一 UCR 並讓所有 sighting 指向它
func (s *FeedService) RecordSightings(id string, count int) (domain.ContentRecord, []domain.Sighting) {
	g := s.NewGenerator()
	record := g.ContentRecords(1)[0]
	record.ID = id
	sightings := g.Sightings(count, []domain.ContentRecord{record})

	s.Metrics.ObserveGenerated(metrics.KindRecord, 1)
	s.Metrics.ObserveGenerated(metrics.KindSighting, len(sightings))
	return record, sightings
}

func (s *FeedService) TimeSeries(days, min, max int) []domain.TimeSeriesPoint {
	points := s.NewGenerator().TimeSeries(days, min, max)
	s.Metrics.ObserveGenerated(metrics.KindPoint, len(points))
	return points
}

// NFTs 固定的示範目錄
func (s *FeedService) NFTs() []domain.NFTListing {
	return []domain.NFTListing{
		{ID: 1, Name: "The First Masterpiece", Creator: "The First Creator"},
		{ID: 2, Name: "The Second Masterpiece", Creator: "The Second Creator"},
	}
}

// BuildHomepage 統計數字是設定檔常數，不從這批資料推導
func BuildHomepage(g *mockdata.Generator, stats domain.HomepageStats) domain.HomepageData {
	data, _ := buildHomepage(g, stats)
	return data
}

func buildHomepage(g *mockdata.Generator, stats domain.HomepageStats) (domain.HomepageData, generated) {
	records := g.ContentRecords(HomepageRecords)
	sightings := g.Sightings(HomepageSightings, records)

	data := domain.HomepageData{
		Stats:           stats,
		TrendingUCRs:    records[:min(HomepageTrending, len(records))],
		RecentSightings: sightings,
	}
	return data, generated{records: len(records), sightings: len(sightings)}
}

func BuildDashboard(g *mockdata.Generator) domain.DashboardData {
	data, _ := buildDashboard(g)
	return data
}

func buildDashboard(g *mockdata.Generator) (domain.DashboardData, generated) {
	records := g.ContentRecords(DashboardRecords)
	sightings := g.Sightings(DashboardSightings, records)

	data := domain.DashboardData{
		Stats:              Summarize(records),
		RevenueOverTime:    g.TimeSeries(DashboardDays, RevenueMin, RevenueMax),
		UCRsMintedOverTime: g.TimeSeries(DashboardDays, MintedMin, MintedMax),
		TopUCRs:            TopByRevenue(records, DashboardTop),
		RecentSightings:    RecentSightings(sightings, records, DashboardRecent),
	}
	logrus.Debugf("dashboard generated: %d UCRs, revenue %.2f", data.Stats.TotalUCRs, data.Stats.TotalRevenue)
	return data, generated{
		records:   len(records),
		sightings: len(sightings),
		points:    len(data.RevenueOverTime) + len(data.UCRsMintedOverTime),
	}
}

// Summarize 儀表板統計，全部由 records 加總
func Summarize(records []domain.ContentRecord) domain.DashboardStats {
	stats := domain.DashboardStats{TotalUCRs: len(records)}
	creators := make(map[string]struct{})

	for _, r := range records {
		stats.TotalRevenue += r.Stats.Revenue
		stats.TotalSightings += r.Stats.Sightings
		creators[r.Creator.Address] = struct{}{}
	}
	stats.ActiveCreators = len(creators)
	return stats
}

// TopByRevenue 依營收由高到低取前 n 筆，不修改原 slice
func TopByRevenue(records []domain.ContentRecord, n int) []domain.ContentRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.ContentRecord) int {
		return cmp.Compare(b.Stats.Revenue, a.Stats.Revenue)
	})
	return sorted[:min(max(n, 0), len(sorted))]
}

// RecentSightings 取最新的 n 筆並補上 UCR 標題
func RecentSightings(sightings []domain.Sighting, records []domain.ContentRecord, n int) []domain.TitledSighting {
	titles := make(map[string]string, len(records))
	for _, r := range records {
		titles[r.ID] = r.Title
	}

	sorted := slices.Clone(sightings)
	slices.SortStableFunc(sorted, func(a, b domain.Sighting) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	sorted = sorted[:min(max(n, 0), len(sorted))]

	out := make([]domain.TitledSighting, len(sorted))
	for i, s := range sorted {
		title, ok := titles[s.UCRID]
		if !ok {
			title = UnknownUCRTitle
		}
		out[i] = domain.TitledSighting{Sighting: s, UCRTitle: title}
	}
	return out
}
