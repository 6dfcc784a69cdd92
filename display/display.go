package display

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
)

// 屏幕尺寸
const (
	Width  = 64
	Height = 32
)

// Display 管理当前显示的根元素和帧缓冲，并把帧推送给 Sink
type Display struct {
	sink  Sink
	frame *image.RGBA
	root  Node

	// 保护 last，供 HTTP 接口并发读取
	mu   sync.RWMutex
	last *image.RGBA
}

// New 创建 64x32 的显示
func New(sink Sink) *Display {
	bounds := image.Rect(0, 0, Width, Height)
	return &Display{
		sink:  sink,
		frame: image.NewRGBA(bounds),
		last:  image.NewRGBA(bounds),
	}
}

// SetRoot 替换当前显示的根元素
func (d *Display) SetRoot(n Node) { d.root = n }

// Root 当前的根元素
func (d *Display) Root() Node { return d.root }

// Bounds 屏幕范围
func (d *Display) Bounds() image.Rectangle { return d.frame.Bounds() }

// Refresh 重新绘制根元素并推送到 Sink
func (d *Display) Refresh() error {
	draw.Draw(d.frame, d.frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if d.root != nil {
		d.root.Draw(d.frame, image.Point{})
	}

	d.mu.Lock()
	copy(d.last.Pix, d.frame.Pix)
	d.mu.Unlock()

	if err := d.sink.Show(d.frame); err != nil {
		return fmt.Errorf("推送帧失败：%w", err)
	}
	return nil
}

// Snapshot 返回最近一次刷新的帧的副本
func (d *Display) Snapshot() *image.RGBA {
	d.mu.RLock()
	defer d.mu.RUnlock()

	img := image.NewRGBA(d.last.Bounds())
	copy(img.Pix, d.last.Pix)
	return img
}

// PNG 把最近一帧编码为 PNG
func (d *Display) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, d.Snapshot()); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败：%w", err)
	}
	return buf.Bytes(), nil
}

// Close 关闭 Sink
func (d *Display) Close() error { return d.sink.Close() }
