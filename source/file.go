package source

import (
	"context"
	"fmt"
	"os"

	"leaderboard/attendance"
)

// FileSource 从固定路径读取数据文件
type FileSource struct{ path string }

func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

func (s *FileSource) Fetch(ctx context.Context) (attendance.Values, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("打开数据文件失败：%w", err)
	}
	defer file.Close()

	return Decode(file)
}

func (s *FileSource) Name() string { return "file:" + s.path }
