package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"leaderboard/define"
)

var Config *define.Config

// 默认配置，对应设备上的固定路径
const (
	DefaultSource       = "file"
	DefaultDataPath     = "/data.json"
	DefaultDataURL      = "http://127.0.0.1:8000/data.json"
	DefaultRedisAddr    = "127.0.0.1:6379"
	DefaultGIFPath      = "/fireworks.gif"
	DefaultSink         = "terminal"
	DefaultWebPort      = "9099"
	DefaultTick         = 200 * time.Millisecond
	DefaultPollInterval = time.Second
	DefaultGIFDuration  = 5 * time.Second
	DefaultRainbowDelay = 300 * time.Millisecond
	DefaultDemoStep     = 1.0
)

// GetDefaultConfig 获取默认配置
func GetDefaultConfig() *define.Config {
	return &define.Config{
		Source:       DefaultSource,
		DataPath:     DefaultDataPath,
		DataURL:      DefaultDataURL,
		RedisAddr:    DefaultRedisAddr,
		PollInterval: DefaultPollInterval,
		Tick:         DefaultTick,
		DemoStep:     DefaultDemoStep,
		GIFPath:      DefaultGIFPath,
		GIFDuration:  DefaultGIFDuration,
		RainbowDelay: DefaultRainbowDelay,
		Sink:         DefaultSink,
		WebPort:      DefaultWebPort,
	}
}

// fileConfig 配置文件格式，时长用 "200ms" 这样的字符串表示
type fileConfig struct {
	Source       *string  `json:"source"`
	DataPath     *string  `json:"data_path"`
	DataURL      *string  `json:"data_url"`
	RedisAddr    *string  `json:"redis_addr"`
	RedisDB      *int     `json:"redis_db"`
	RedisPrefix  *string  `json:"redis_prefix"`
	SheetPath    *string  `json:"sheet_path"`
	SheetName    *string  `json:"sheet_name"`
	PollInterval *string  `json:"poll_interval"`
	Tick         *string  `json:"tick"`
	DemoStep     *float64 `json:"demo_step"`
	GIFPath      *string  `json:"gif_path"`
	GIFDuration  *string  `json:"gif_duration"`
	RainbowDelay *string  `json:"rainbow_delay"`
	Sink         *string  `json:"sink"`
	StatusPin    *string  `json:"status_pin"`
	WebPort      *string  `json:"web_port"`
}

// LoadFile 从文件读取配置，覆盖 cfg 中对应的字段，返回设置过的字段名（JSON 键）
func LoadFile(cfg *define.Config, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开配置文件失败：%w", err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return nil, fmt.Errorf("解析配置文件失败：%w", err)
	}

	var set []string
	str := func(dst *string, v *string, key string) {
		if v != nil {
			*dst = *v
			set = append(set, key)
		}
	}
	dur := func(dst *time.Duration, v *string, key string) error {
		if v == nil {
			return nil
		}
		d, err := time.ParseDuration(*v)
		if err != nil {
			return fmt.Errorf("配置项 %s 无效：%w", key, err)
		}
		*dst = d
		set = append(set, key)
		return nil
	}

	str(&cfg.Source, fc.Source, "source")
	str(&cfg.DataPath, fc.DataPath, "data_path")
	str(&cfg.DataURL, fc.DataURL, "data_url")
	str(&cfg.RedisAddr, fc.RedisAddr, "redis_addr")
	str(&cfg.RedisPrefix, fc.RedisPrefix, "redis_prefix")
	str(&cfg.SheetPath, fc.SheetPath, "sheet_path")
	str(&cfg.SheetName, fc.SheetName, "sheet_name")
	str(&cfg.GIFPath, fc.GIFPath, "gif_path")
	str(&cfg.Sink, fc.Sink, "sink")
	str(&cfg.StatusPin, fc.StatusPin, "status_pin")
	str(&cfg.WebPort, fc.WebPort, "web_port")
	if fc.RedisDB != nil {
		cfg.RedisDB = *fc.RedisDB
		set = append(set, "redis_db")
	}
	if fc.DemoStep != nil {
		cfg.DemoStep = *fc.DemoStep
		set = append(set, "demo_step")
	}

	for _, d := range []struct {
		dst *time.Duration
		v   *string
		key string
	}{
		{&cfg.PollInterval, fc.PollInterval, "poll_interval"},
		{&cfg.Tick, fc.Tick, "tick"},
		{&cfg.GIFDuration, fc.GIFDuration, "gif_duration"},
		{&cfg.RainbowDelay, fc.RainbowDelay, "rainbow_delay"},
	} {
		if err := dur(d.dst, d.v, d.key); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Validate 检查配置是否可用
func Validate(cfg *define.Config) error {
	if cfg.Tick <= 0 {
		return fmt.Errorf("循环间隔必须大于 0: %s", cfg.Tick)
	}
	if cfg.PollInterval < 0 {
		return fmt.Errorf("刷新间隔不能为负数: %s", cfg.PollInterval)
	}
	if cfg.DemoStep <= 0 {
		return fmt.Errorf("演示步长必须大于 0: %v", cfg.DemoStep)
	}
	if cfg.GIFDuration < 0 || cfg.RainbowDelay < 0 {
		return fmt.Errorf("动画时长不能为负数")
	}
	return nil
}
