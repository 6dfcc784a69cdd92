package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"leaderboard/animation"
	"leaderboard/api"
	"leaderboard/cli"
	"leaderboard/config"
	"leaderboard/display"
	"leaderboard/leaderboard"
	"leaderboard/source"
)

// 打印服务配置
func logConfig() {
	log.Printf("🔧 服务配置：")
	log.Printf("   - 数据源: %s", config.Config.Source)
	log.Printf("   - 显示输出: %s", config.Config.Sink)
	log.Printf("   - 循环间隔: %s", config.Config.Tick)
	log.Printf("   - 庆祝动画: %s", config.Config.GIFPath)
	log.Printf("   - 状态 API 端口: %s", config.Config.WebPort)
}

// 注册庆祝动画。GIF 必须在启动时加载，运行时加载会因内存不足失败。
func setupAnimations() (*animation.Engine, []string) {
	engine := animation.NewEngine()
	engine.Register(animation.NewRainbowAnimation(config.Config.RainbowDelay))
	sequence := []string{animation.RainbowName}

	if config.Config.GIFPath == "" {
		log.Println("ℹ️ 未设置 GIF，庆祝时只显示彩虹色")
		return engine, sequence
	}

	clip, err := animation.LoadGIF(config.Config.GIFPath)
	if err != nil {
		log.Fatalf("❌ 加载庆祝动画失败: %v", err)
	}
	log.Printf("🎆 已加载 %s (%d 帧)", config.Config.GIFPath, len(clip.Frames))
	engine.Register(animation.NewGIFAnimation(animation.FireworksName, clip, config.Config.GIFDuration))
	return engine, append(sequence, animation.FireworksName)
}

func main() {
	// 检查是否请求帮助
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		cli.PrintUsage(os.Stdout)
		return
	}

	if err := run(); err != nil {
		log.Fatalf("❌ 排行榜异常退出: %v", err)
	}
}

func run() error {
	cfg, err := cli.ParseConfig(os.Args[1:])
	if err != nil {
		return err
	}
	config.Config = cfg
	logConfig()

	src, err := source.New(config.Config)
	if err != nil {
		return fmt.Errorf("创建数据源失败：%w", err)
	}

	sink, err := display.NewSink(config.Config.Sink)
	if err != nil {
		return fmt.Errorf("创建显示输出失败：%w", err)
	}
	screen := display.New(sink)
	defer screen.Close()

	status, err := display.OpenStatusLight(config.Config.StatusPin)
	if err != nil {
		return fmt.Errorf("打开状态指示灯失败：%w", err)
	}

	engine, sequence := setupAnimations()

	runner := leaderboard.NewRunner(screen, src, engine, status, leaderboard.Options{
		Tick:         config.Config.Tick,
		PollInterval: config.Config.PollInterval,
		DemoStep:     config.Config.DemoStep,
		Celebration:  sequence,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Config.WebPort != "" {
		gin.SetMode(gin.ReleaseMode)
		server := api.NewServer(runner, screen, engine, config.Config.Sink)
		if err := server.Start(":" + config.Config.WebPort); err != nil {
			return fmt.Errorf("状态 API 启动失败：%w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("⚠️ 关闭状态 API 失败: %v", err)
			}
		}()
	}

	return runner.Run(ctx)
}
