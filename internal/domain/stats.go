package domain

import "time"

// TimeSeriesPoint 圖表用的單日資料點
type TimeSeriesPoint struct {
	Date  string `json:"date"` // e.g. "Oct 18"
	Value int    `json:"value"`
}

// HomepageStats 首頁的協議數據 (設定檔常數，不從產生的資料推導)
type HomepageStats struct {
	TotalUCRs          int    `json:"totalUCRs" mapstructure:"total_ucrs"`
	ActiveCreators     int    `json:"activeCreators" mapstructure:"active_creators"`
	SightingsLogged    int    `json:"sightingsLogged" mapstructure:"sightings_logged"`
	RevenueDistributed string `json:"revenueDistributed" mapstructure:"revenue_distributed"`
}

type HomepageData struct {
	Stats           HomepageStats   `json:"stats"`
	TrendingUCRs    []ContentRecord `json:"trendingUCRs"`
	RecentSightings []Sighting      `json:"recentSightings"`
}

// DashboardStats 全部由同一批 ContentRecord 加總而來
type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalUCRs      int     `json:"totalUCRs"`
	TotalSightings int     `json:"totalSightings"`
	ActiveCreators int     `json:"activeCreators"`
}

type DashboardData struct {
	Stats              DashboardStats    `json:"stats"`
	RevenueOverTime    []TimeSeriesPoint `json:"revenueOverTime"`
	UCRsMintedOverTime []TimeSeriesPoint `json:"ucrsMintedOverTime"`
	TopUCRs            []ContentRecord   `json:"topUCRs"`
	RecentSightings    []TitledSighting  `json:"recentSightings"`
}

// Snapshot 排程預先產生的一組資料，只存在記憶體
type Snapshot struct {
	Homepage    HomepageData  `json:"homepage"`
	Dashboard   DashboardData `json:"dashboard"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
