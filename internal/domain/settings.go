package domain

// AnalyticsSummary 對外 API (v1) 的總覽數字
type AnalyticsSummary struct {
	TotalNfts     int    `json:"totalNfts" mapstructure:"total_nfts"`
	TotalCreators int    `json:"totalCreators" mapstructure:"total_creators"`
	TotalRevenue  string `json:"totalRevenue" mapstructure:"total_revenue"`
}

// NFTListing 第三方整合用的精簡目錄
type NFTListing struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator"`
}

// UploadResult 上傳檔案後只回傳摘要，不儲存檔案
type UploadResult struct {
	Success     bool   `json:"success"`
	ContentHash string `json:"contentHash,omitempty"`
	Digest      string `json:"digest,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Message     string `json:"message,omitempty"`
}
