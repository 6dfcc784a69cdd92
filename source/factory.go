package source

import (
	"fmt"
	"sort"

	"leaderboard/define"
)

// Constructor 根据配置创建数据源
type Constructor func(cfg *define.Config) (Source, error)

var constructors = map[string]Constructor{
	"file": func(cfg *define.Config) (Source, error) {
		return NewFileSource(cfg.DataPath), nil
	},
	"http": func(cfg *define.Config) (Source, error) {
		if cfg.DataURL == "" {
			return nil, fmt.Errorf("http 数据源需要设置 URL")
		}
		return NewHTTPSource(cfg.DataURL), nil
	},
	"redis": func(cfg *define.Config) (Source, error) {
		client := NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return NewRedisSource(client, cfg.RedisPrefix), nil
	},
	"sheet": func(cfg *define.Config) (Source, error) {
		if cfg.SheetPath == "" {
			return nil, fmt.Errorf("sheet 数据源需要设置 Excel 文件路径")
		}
		return NewSheetSource(cfg.SheetPath, cfg.SheetName), nil
	},
	"demo": func(cfg *define.Config) (Source, error) {
		return DemoSource{}, nil
	},
}

// RegisterSourceType 注册数据源类型
func RegisterSourceType(kind string, constructor Constructor) { constructors[kind] = constructor }

// New 按配置创建数据源
func New(cfg *define.Config) (Source, error) {
	constructor, ok := constructors[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("未知的数据源类型: %s", cfg.Source)
	}
	return constructor(cfg)
}

// GetSupportedKinds 获取支持的数据源类型列表
func GetSupportedKinds() []string {
	kinds := make([]string, 0, len(constructors))
	for kind := range constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// IsDemo 是否为演示数据源
func IsDemo(src Source) bool {
	_, ok := src.(DemoSource)
	return ok
}
