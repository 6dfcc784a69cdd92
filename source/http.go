package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"leaderboard/attendance"
)

// HTTPSource 通过 HTTP GET 从固定 URL 读取数据
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (attendance.Values, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建 HTTP 请求失败：%w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送 HTTP 请求失败：%w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("数据服务返回错误: %d, %s", resp.StatusCode, string(body))
	}

	return Decode(resp.Body)
}

func (s *HTTPSource) Name() string { return "http:" + s.url }
