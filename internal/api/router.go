package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ucr-mock/internal/metrics"
	"ucr-mock/internal/service"
)

// CORS 前後分離，允許跨域
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type RouterDeps struct {
	Feed     *FeedHandler
	Tools    *ToolHandler
	Metrics  *metrics.Metrics
	Snapshot *service.SnapshotService // nil = 即時模式
}

// NewRouter 註冊所有路由；Logger/Recovery 由呼叫方決定
func NewRouter(d RouterDeps, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.Use(CORS())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		resp := gin.H{"status": "ok", "mode": "live"}
		if d.Snapshot != nil {
			resp["mode"] = "snapshot"
			if snap, ok := d.Snapshot.Latest(c.Request.Context()); ok {
				resp["snapshot_generated_at"] = snap.GeneratedAt
			}
		}
		c.JSON(http.StatusOK, resp)
	})

	site := r.Group("/api")
	{
		site.GET("/ucr-data", d.Feed.GetUCRData)             // 首頁
		site.GET("/dashboard-data", d.Feed.GetDashboardData) // 儀表板
		site.POST("/upload", d.Tools.Upload)                 // 只計算摘要
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/analytics", d.Feed.GetAnalytics)
		v1.GET("/nfts", d.Feed.GetNFTs)
		v1.GET("/ucrs", d.Feed.ListUCRs)
		v1.GET("/ucrs/:id/sightings", d.Feed.GetUCRSightings)
		v1.GET("/timeseries", d.Feed.GetTimeSeries)
	}

	return r
}
