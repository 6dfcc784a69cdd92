package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"leaderboard/config"
	"leaderboard/define"
)

// 环境变量名
const (
	EnvConfig        = "LEADERBOARD_CONFIG"
	EnvSource        = "LEADERBOARD_SOURCE"
	EnvDataPath      = "LEADERBOARD_DATA"
	EnvDataURL       = "LEADERBOARD_URL"
	EnvRedisAddr     = "LEADERBOARD_REDIS_ADDR"
	EnvRedisPassword = "LEADERBOARD_REDIS_PASSWORD"
	EnvRedisDB       = "LEADERBOARD_REDIS_DB"
	EnvSheetPath     = "LEADERBOARD_SHEET"
	EnvTick          = "LEADERBOARD_TICK"
	EnvGIFPath       = "LEADERBOARD_GIF"
	EnvSink          = "LEADERBOARD_SINK"
	EnvStatusPin     = "LEADERBOARD_STATUS_PIN"
	EnvWebPort       = "LEADERBOARD_PORT"
)

func newFlagSet(cfg *define.Config, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(configPath, "config", "", "JSON 配置文件路径")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "数据源类型: file, http, redis, sheet, demo")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "数据文件路径")
	fs.StringVar(&cfg.DataURL, "url", cfg.DataURL, "数据服务 URL")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis 地址")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis 数据库编号")
	fs.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "Redis 哈希前缀 (默认 attendance:)")
	fs.StringVar(&cfg.SheetPath, "sheet", cfg.SheetPath, "Excel 文件路径")
	fs.StringVar(&cfg.SheetName, "sheet-name", cfg.SheetName, "Excel 工作表名称 (默认第一个)")
	fs.DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "数据刷新间隔")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "主循环间隔")
	fs.Float64Var(&cfg.DemoStep, "demo-step", cfg.DemoStep, "演示模式每次推进的百分比")
	fs.StringVar(&cfg.GIFPath, "gif", cfg.GIFPath, "庆祝动画 GIF 路径，为空时不播放")
	fs.DurationVar(&cfg.GIFDuration, "gif-duration", cfg.GIFDuration, "GIF 播放时长")
	fs.DurationVar(&cfg.RainbowDelay, "rainbow-delay", cfg.RainbowDelay, "彩虹色切换间隔")
	fs.StringVar(&cfg.Sink, "sink", cfg.Sink, "显示输出: terminal, null")
	fs.StringVar(&cfg.StatusPin, "status-pin", cfg.StatusPin, "状态指示灯 GPIO 引脚，为空时不使用")
	fs.StringVar(&cfg.WebPort, "port", cfg.WebPort, "状态 API 端口，为空时不启动")
	return fs
}

// ParseConfig 解析配置。优先级：环境变量 > 命令行参数 > 配置文件 > 默认值
func ParseConfig(args []string) (*define.Config, error) {
	// 第一遍只为了拿到配置文件路径
	var configPath string
	if err := newFlagSet(config.GetDefaultConfig(), &configPath).Parse(args); err != nil {
		return nil, fmt.Errorf("解析命令行参数失败：%w", err)
	}
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		configPath = envPath
	}

	cfg := config.GetDefaultConfig()
	if configPath != "" {
		set, err := config.LoadFile(cfg, configPath)
		if err != nil {
			return nil, err
		}
		log.Printf("📄 已加载配置文件 %s (%d 项)", configPath, len(set))
	}

	// 第二遍：命令行参数覆盖配置文件
	if err := newFlagSet(cfg, &configPath).Parse(args); err != nil {
		return nil, fmt.Errorf("解析命令行参数失败：%w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// 环境变量覆盖命令行参数
func applyEnv(cfg *define.Config) error {
	for env, dst := range map[string]*string{
		EnvSource:        &cfg.Source,
		EnvDataPath:      &cfg.DataPath,
		EnvDataURL:       &cfg.DataURL,
		EnvRedisAddr:     &cfg.RedisAddr,
		EnvRedisPassword: &cfg.RedisPassword,
		EnvSheetPath:     &cfg.SheetPath,
		EnvGIFPath:       &cfg.GIFPath,
		EnvSink:          &cfg.Sink,
		EnvStatusPin:     &cfg.StatusPin,
		EnvWebPort:       &cfg.WebPort,
	} {
		if v, ok := os.LookupEnv(env); ok {
			*dst = v
		}
	}

	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("环境变量 %s 无效：%w", EnvRedisDB, err)
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("环境变量 %s 无效：%w", EnvTick, err)
		}
		cfg.Tick = d
	}
	return nil
}

// PrintUsage 打印帮助信息
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Attendance leaderboard for a 64x32 RGB matrix")
	fmt.Fprintln(w, "Usage:")
	fs := newFlagSet(config.GetDefaultConfig(), new(string))
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment Variables:")
	for _, env := range []string{
		EnvConfig, EnvSource, EnvDataPath, EnvDataURL, EnvRedisAddr, EnvRedisPassword,
		EnvRedisDB, EnvSheetPath, EnvTick, EnvGIFPath, EnvSink, EnvStatusPin, EnvWebPort,
	} {
		fmt.Fprintf(w, "  %s\n", env)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ./leaderboard -source demo -gif ./fireworks.gif")
	fmt.Fprintln(w, "  ./leaderboard -source http -url http://10.0.0.5:8000/data.json")
	fmt.Fprintln(w, "  LEADERBOARD_SOURCE=redis LEADERBOARD_REDIS_ADDR=10.0.0.5:6379 ./leaderboard")
}
