package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"leaderboard/attendance"
)

// Board 排行榜主循环对外提供的只读视图
type Board interface {
	Snapshot() []attendance.ClassRecord
	Ticks() uint64
	SourceName() string
	Interval() time.Duration
}

// FrameSource 当前屏幕画面
type FrameSource interface {
	PNG() ([]byte, error)
}

// AnimationInfo 动画引擎状态
type AnimationInfo interface {
	GetRegisteredAnimations() []string
	GetCurrentAnimation() string
}

// Server 状态 API 服务器
type Server struct {
	board      Board
	frames     FrameSource
	animations AnimationInfo
	sink       string
	startTime  time.Time
	version    string
	httpServer *http.Server
	listener   net.Listener
}

// NewServer 创建新的状态 API 服务器实例
func NewServer(board Board, frames FrameSource, animations AnimationInfo, sink string) *Server {
	return &Server{
		board:      board,
		frames:     frames,
		animations: animations,
		sink:       sink,
		startTime:  time.Now(),
		version:    "1.0.0",
	}
}

// NewEngine 创建带 CORS 的 Gin 引擎并注册路由
func (s *Server) NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	s.SetupRoutes(r)
	return r
}

// SetupRoutes 设置 API 路由
func (s *Server) SetupRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/leaderboard", s.handleGetLeaderboard) // 获取排行榜
		v1.GET("/frame.png", s.handleGetFrame)         // 获取当前画面

		// 系统管理路由
		system := v1.Group("/system")
		{
			system.GET("/status", s.handleGetSystemStatus) // 获取系统状态
			system.GET("/health", s.handleHealthCheck)     // 健康检查
		}
	}
}

// Start 监听 addr 并在后台 goroutine 中提供服务
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("监听 %s 失败：%w", addr, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.NewEngine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("🌐 状态 API 运行在 http://%s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ 状态 API 异常退出: %v", err)
		}
	}()
	return nil
}

// Addr 实际监听的地址，未启动时为空
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown 关闭 HTTP 服务
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
