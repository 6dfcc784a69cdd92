package animation

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"
)

// FireworksName 烟花动画名称
const FireworksName = "fireworks"

// DefaultGIFDuration GIF 默认播放时长
const DefaultGIFDuration = 5 * time.Second

// 帧延迟为 0 时使用的延迟，与浏览器的处理方式一致
const defaultFrameDelay = 100 * time.Millisecond

// Clip 预先解码好的完整帧序列。
// 目标设备无法在运行时加载 GIF，所以启动时一次性解码。
type Clip struct {
	Frames []*image.RGBA
	Delays []time.Duration
}

// LoadGIF 从文件加载并解码 GIF
func LoadGIF(path string) (*Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 GIF 文件失败：%w", err)
	}
	defer file.Close()

	clip, err := DecodeGIF(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// DecodeGIF 解码所有帧，并按处置方式合成为完整的画面
func DecodeGIF(r io.Reader) (*Clip, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("解码 GIF 失败：%w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("GIF 没有任何帧")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	canvas := image.NewRGBA(bounds)
	clip := &Clip{
		Frames: make([]*image.RGBA, 0, len(g.Image)),
		Delays: make([]time.Duration, 0, len(g.Image)),
	}

	for i, frame := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			copy(previous.Pix, canvas.Pix)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		out := image.NewRGBA(bounds)
		copy(out.Pix, canvas.Pix)
		clip.Frames = append(clip.Frames, out)

		delay := defaultFrameDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		clip.Delays = append(clip.Delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return clip, nil
}

// GIFAnimation 在限定时长内循环播放预先解码的 GIF，结束后恢复排行榜
type GIFAnimation struct {
	name     string
	clip     *Clip
	duration time.Duration
}

func NewGIFAnimation(name string, clip *Clip, duration time.Duration) *GIFAnimation {
	if duration <= 0 {
		duration = DefaultGIFDuration
	}
	return &GIFAnimation{name: name, clip: clip, duration: duration}
}

func (a *GIFAnimation) Name() string { return a.name }

func (a *GIFAnimation) Run(ctx context.Context, stage Stage, row int) (err error) {
	if a.clip == nil || len(a.clip.Frames) == 0 {
		return nil
	}

	defer func() {
		if restoreErr := stage.Restore(); err == nil {
			err = restoreErr
		}
	}()

	// 按帧延迟累计播放时长，不依赖实际耗时
	var elapsed time.Duration
	for i := 0; elapsed < a.duration; i = (i + 1) % len(a.clip.Frames) {
		if err := stage.ShowImage(a.clip.Frames[i]); err != nil {
			return err
		}
		if !sleep(ctx, a.clip.Delays[i]) {
			return nil
		}
		elapsed += a.clip.Delays[i]
	}
	return nil
}
