package animation

import (
	"context"
	"image"
	"image/color"
	"time"
)

// Stage 动画操作的对象，由排行榜实现
type Stage interface {
	// SetRowColor 修改某一行数据文本的颜色并立即刷新屏幕
	SetRowColor(row int, c color.RGBA) error
	// ShowImage 临时用一张图片替换整个屏幕的内容
	ShowImage(img image.Image) error
	// Restore 恢复排行榜的显示
	Restore() error
}

// Animation 定义了一个动画序列的行为
type Animation interface {
	// Run 同步执行一次动画，ctx 取消时提前返回
	// stage: 动画操作的屏幕
	// row: 触发动画的行
	Run(ctx context.Context, stage Stage, row int) error
	// Name 返回动画的名称
	Name() string
}

// sleep 等待 d，ctx 取消时返回 false
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false // 动画被停止
	case <-t.C:
		return true
	}
}
