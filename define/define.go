package define

import "time"

// 配置结构体
type Config struct {
	Source       string        `json:"source"`        // 数据源类型: file, http, redis, sheet, demo
	DataPath     string        `json:"data_path"`     // 数据文件路径
	DataURL      string        `json:"data_url"`      // 数据服务 URL
	RedisAddr    string        `json:"redis_addr"`    // Redis 地址
	RedisDB      int           `json:"redis_db"`      // Redis 数据库编号
	RedisPrefix  string        `json:"redis_prefix"`  // Redis 哈希前缀
	SheetPath    string        `json:"sheet_path"`    // Excel 文件路径
	SheetName    string        `json:"sheet_name"`    // Excel 工作表名称
	PollInterval time.Duration `json:"poll_interval"` // 数据刷新间隔
	Tick         time.Duration `json:"tick"`          // 主循环间隔
	DemoStep     float64       `json:"demo_step"`     // 演示模式每次推进的百分比
	GIFPath      string        `json:"gif_path"`      // 庆祝动画 GIF 路径
	GIFDuration  time.Duration `json:"gif_duration"`  // GIF 播放时长
	RainbowDelay time.Duration `json:"rainbow_delay"` // 彩虹色切换间隔
	Sink         string        `json:"sink"`          // 显示输出: terminal, null
	StatusPin    string        `json:"status_pin"`    // 状态指示灯 GPIO 引脚
	WebPort      string        `json:"web_port"`      // 状态 API 端口，为空时不启动

	// 不从配置文件读取
	RedisPassword string `json:"-"`
}

// API 响应结构体
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}
