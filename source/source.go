package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"leaderboard/attendance"
)

// Source 出勤数据源
type Source interface {
	// Fetch 读取一次完整的数据
	Fetch(ctx context.Context) (attendance.Values, error)
	// Name 返回数据源名称，用于日志
	Name() string
}

// Refresh 从数据源读取数据。读取失败时记录日志并返回全零数据，不向上返回错误。
func Refresh(ctx context.Context, src Source) attendance.Values {
	values, err := src.Fetch(ctx)
	if err != nil {
		log.Printf("⚠️ 读取数据源 %s 失败: %v，使用全零默认数据", src.Name(), err)
		return attendance.Zero()
	}
	return values
}

// Decode 解析数据 JSON。每个年级的值可以是百分比数字，
// 也可以是 {"tapped_in": n, "total_students": m} 对象。
func Decode(r io.Reader) (attendance.Values, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("解析数据 JSON 失败：%w", err)
	}

	values := attendance.Zero()
	for _, c := range attendance.Classes {
		msg, ok := raw[c.Key]
		if !ok {
			continue
		}
		p, err := decodeClass(msg)
		if err != nil {
			return nil, fmt.Errorf("解析年级 %s 失败：%w", c.Key, err)
		}
		values[c.Key] = p
	}
	return values, nil
}

func decodeClass(msg json.RawMessage) (float64, error) {
	var p float64
	if err := json.Unmarshal(msg, &p); err == nil {
		return p, nil
	}

	var tally attendance.Tally
	if err := json.Unmarshal(msg, &tally); err != nil {
		return 0, err
	}
	return tally.Percentage(), nil
}

// DemoSource 演示模式，不读取任何数据，由主循环推进百分比
type DemoSource struct{}

func (DemoSource) Fetch(context.Context) (attendance.Values, error) { return attendance.Zero(), nil }

func (DemoSource) Name() string { return "demo" }
