package api

import (
	"time"

	"leaderboard/define"
)

// ApiResponse 统一 API 响应格式
type ApiResponse = define.ApiResponse

// RowInfo 排行榜的一行
type RowInfo struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Text       string  `json:"text"`
	Color      string  `json:"color"` // #RRGGBB
	Celebrated bool    `json:"celebrated"`
}

// LeaderboardResponse 排行榜响应
type LeaderboardResponse struct {
	Rows  []RowInfo `json:"rows"`
	Total int       `json:"total"`
}

// SystemStatusResponse 系统状态响应
type SystemStatusResponse struct {
	Source           string        `json:"source"`
	Sink             string        `json:"sink"`
	Tick             time.Duration `json:"tick"`
	Ticks            uint64        `json:"ticks"`
	Animations       []string      `json:"animations"`
	CurrentAnimation string        `json:"currentAnimation,omitempty"`
	Uptime           time.Duration `json:"uptime"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}
