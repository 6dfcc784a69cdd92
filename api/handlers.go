package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// handleGetLeaderboard 获取排行榜
func (s *Server) handleGetLeaderboard(c *gin.Context) {
	records := s.board.Snapshot()

	rows := make([]RowInfo, 0, len(records))
	for _, r := range records {
		rows = append(rows, RowInfo{
			Key:        r.Key,
			Name:       r.Name,
			Percentage: r.Percentage,
			Text:       r.Text(),
			Color:      fmt.Sprintf("#%06X", r.Color()),
			Celebrated: r.Celebrated,
		})
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: LeaderboardResponse{
			Rows:  rows,
			Total: len(rows),
		},
	})
}

// handleGetFrame 以 PNG 返回当前画面
func (s *Server) handleGetFrame(c *gin.Context) {
	data, err := s.frames.PNG()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ApiResponse{
			Status: "error",
			Error:  "获取画面失败：" + err.Error(),
		})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", data)
}

// handleGetSystemStatus 获取系统状态
func (s *Server) handleGetSystemStatus(c *gin.Context) {
	response := SystemStatusResponse{
		Source:           s.board.SourceName(),
		Sink:             s.sink,
		Tick:             s.board.Interval(),
		Ticks:            s.board.Ticks(),
		Animations:       s.animations.GetRegisteredAnimations(),
		CurrentAnimation: s.animations.GetCurrentAnimation(),
		Uptime:           time.Since(s.startTime),
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   response,
	})
}

// handleHealthCheck 健康检查
func (s *Server) handleHealthCheck(c *gin.Context) {
	status := "healthy"
	if s.board == nil {
		status = "unhealthy"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   s.version,
	}

	// 根据健康状态返回相应的 HTTP 状态码
	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, ApiResponse{
		Status: "success",
		Data:   response,
	})
}
