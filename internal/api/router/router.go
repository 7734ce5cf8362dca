package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-events/backend/config"
	"campus-events/backend/internal/api/handler"
	"campus-events/backend/internal/api/middleware"
	"campus-events/backend/internal/dto"
	"campus-events/backend/pkg/redis"
	"campus-events/backend/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时写接口不限流
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("请求处理 panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.InternalError(c)
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	// 写接口按 IP + 路由限流
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	write := r.Group("")
	if cfg.RateLimit.Requests > 0 {
		write.Use(middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// ── 基础数据 ──
	{
		write.POST("/colleges", h.College.CreateCollege)
		write.POST("/students", h.Student.CreateStudent)
		write.POST("/events", h.Event.CreateEvent)

		r.GET("/colleges", h.College.ListColleges)
		r.GET("/events", h.Event.ListEvents)
		r.GET("/events/calendar.ics", h.Export.ExportCalendar)
	}

	// ── 报名 / 签到 / 反馈 ──
	{
		write.POST("/register", h.Participation.Register)
		write.POST("/attendance", h.Participation.RecordAttendance)
		write.POST("/feedback", h.Participation.RecordFeedback)
	}

	// ── 报表 ──
	reports := r.Group("/reports")
	{
		reports.GET("/event/:event_id", h.Report.EventReport)
		reports.GET("/popularity", h.Report.Popularity)
		reports.GET("/popularity/export", h.Export.ExportPopularity)
		reports.GET("/student/:student_id", h.Report.StudentReport)
		reports.GET("/top-active", h.Report.TopActive)
		reports.GET("/events", h.Report.FilterEvents)
	}

	return r
}
