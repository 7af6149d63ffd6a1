package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ucr-mock/internal/service"
)

type FeedHandler struct {
	Feed    service.FeedProvider // 即時產生或排程快照
	Service *service.FeedService
}

func NewFeedHandler(p service.FeedProvider, s *service.FeedService) *FeedHandler {
	return &FeedHandler{Feed: p, Service: s}
}

// 查詢參數
type ListUCRsQuery struct {
	Count int `form:"count,default=12" binding:"min=1,max=100"`
}

type SightingsQuery struct {
	Count int `form:"count,default=5" binding:"min=1,max=100"`
}

type TimeSeriesQuery struct {
	Days int `form:"days,default=30" binding:"min=1,max=365"`
	Min  int `form:"min,default=0" binding:"gte=-1000000000,lte=1000000000"`
	Max  int `form:"max,default=100" binding:"gte=-1000000000,lte=1000000000"`
}

type recordPath struct {
	ID string `uri:"id" binding:"required,max=64"`
}

// =============================================================================
// Site APIs
// =============================================================================

// GetUCRData 首頁資料
// @Router /api/ucr-data [get]
func (h *FeedHandler) GetUCRData(c *gin.Context) {
	data, err := h.Feed.Homepage(c.Request.Context())
	if err != nil {
		logrus.Errorf("homepage feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetDashboardData 儀表板資料，統計由同一批資料加總
// @Router /api/dashboard-data [get]
func (h *FeedHandler) GetDashboardData(c *gin.Context) {
	data, err := h.Feed.Dashboard(c.Request.Context())
	if err != nil {
		logrus.Errorf("dashboard feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// =============================================================================
// v1 APIs
// =============================================================================

func (h *FeedHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"analytics": h.Service.Analytics})
}

func (h *FeedHandler) GetNFTs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nfts": h.Service.NFTs()})
}

// ListUCRs 產生 count 筆 UCR
// @Param count query int false "數量 (1-100)"
// @Router /api/v1/ucrs [get]
func (h *FeedHandler) ListUCRs(c *gin.Context) {
	var q ListUCRsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.Service.Records(q.Count)})
}

// GetUCRSightings 單一 UCR 的偵測紀錄
// @Router /api/v1/ucrs/{id}/sightings [get]
func (h *FeedHandler) GetUCRSightings(c *gin.Context) {
	var p recordPath
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var q SightingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, sightings := h.Service.RecordSightings(p.ID, q.Count)
	c.JSON(http.StatusOK, gin.H{"ucr": record, "data": sightings})
}

// GetTimeSeries min > max 時由產生器對調
// @Router /api/v1/timeseries [get]
func (h *FeedHandler) GetTimeSeries(c *gin.Context) {
	var q TimeSeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.Service.TimeSeries(q.Days, q.Min, q.Max)})
}
