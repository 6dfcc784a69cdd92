package source

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"leaderboard/attendance"
)

const attendancePrefix = "attendance:" // Hash 前缀: attendance:{class} -> tapped_in / total_students / percentage

// hashReader 是 RedisSource 用到的 redis.Client 子集
type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisSource 从 Redis 哈希读取各年级的签到计数
type RedisSource struct {
	client hashReader
	prefix string
}

// NewRedisSource 创建 Redis 数据源，prefix 为空时使用默认前缀
func NewRedisSource(client hashReader, prefix string) *RedisSource {
	if prefix == "" {
		prefix = attendancePrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

// NewRedisClient 按地址创建 go-redis 客户端
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *RedisSource) key(class string) string { return s.prefix + class }

func (s *RedisSource) Fetch(ctx context.Context) (attendance.Values, error) {
	values := attendance.Zero()
	for _, c := range attendance.Classes {
		data, err := s.client.HGetAll(ctx, s.key(c.Key)).Result()
		if err != nil {
			return nil, fmt.Errorf("从 Redis 读取 %s 失败：%w", s.key(c.Key), err)
		}
		if len(data) == 0 {
			continue // 未找到，按 0 处理
		}
		p, err := percentageFromHash(data)
		if err != nil {
			return nil, fmt.Errorf("解析 %s 失败：%w", s.key(c.Key), err)
		}
		values[c.Key] = p
	}
	return values, nil
}

func (s *RedisSource) Name() string { return "redis:" + s.prefix }

func percentageFromHash(data map[string]string) (float64, error) {
	if raw, ok := data["percentage"]; ok {
		return strconv.ParseFloat(raw, 64)
	}

	var tally attendance.Tally
	var err error
	if tally.TappedIn, err = parseField(data, "tapped_in"); err != nil {
		return 0, err
	}
	if tally.TotalStudents, err = parseField(data, "total_students"); err != nil {
		return 0, err
	}
	return tally.Percentage(), nil
}

func parseField(data map[string]string, field string) (float64, error) {
	raw, ok := data[field]
	if !ok {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("字段 %s 不是数字：%w", field, err)
	}
	return v, nil
}
