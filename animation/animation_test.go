package animation

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaderboard/attendance"
)

type fakeStage struct {
	colors   []color.RGBA
	rows     []int
	images   []image.Image
	restores int
	showErr  error
}

func (s *fakeStage) SetRowColor(row int, c color.RGBA) error {
	s.rows = append(s.rows, row)
	s.colors = append(s.colors, c)
	return nil
}

func (s *fakeStage) ShowImage(img image.Image) error {
	s.images = append(s.images, img)
	return s.showErr
}

func (s *fakeStage) Restore() error {
	s.restores++
	return nil
}

func encodeGIF(t *testing.T, frames int, delay int) []byte {
	t.Helper()
	g := &gif.GIF{}
	for i := 0; i < frames; i++ {
		img := image.NewPaletted(image.Rect(0, 0, 8, 4), palette.Plan9)
		img.SetColorIndex(i%8, 0, uint8(i+1))
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func TestRainbowAnimation(t *testing.T) {
	stage := &fakeStage{}
	anim := NewRainbowAnimation(time.Millisecond)
	require.NoError(t, anim.Run(context.Background(), stage, 2))

	require.Len(t, stage.colors, 7)
	for i, c := range attendance.Rainbow {
		assert.Equal(t, attendance.Unpack(c), stage.colors[i])
		assert.Equal(t, 2, stage.rows[i])
	}
	assert.Equal(t, RainbowName, anim.Name())
}

func TestRainbowAnimationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stage := &fakeStage{}
	require.NoError(t, NewRainbowAnimation(time.Hour).Run(ctx, stage, 0))
	assert.Len(t, stage.colors, 1)
}

func TestDecodeGIF(t *testing.T) {
	clip, err := DecodeGIF(bytes.NewReader(encodeGIF(t, 3, 0)))
	require.NoError(t, err)
	require.Len(t, clip.Frames, 3)
	assert.Equal(t, []time.Duration{defaultFrameDelay, defaultFrameDelay, defaultFrameDelay}, clip.Delays)
	assert.Equal(t, image.Rect(0, 0, 8, 4), clip.Frames[0].Bounds())

	// DisposalNone 时前面帧的像素保留下来
	last := clip.Frames[2]
	for x := 0; x < 3; x++ {
		assert.NotZero(t, last.RGBAAt(x, 0).A, "x=%d", x)
	}
}

func TestDecodeGIFInvalid(t *testing.T) {
	_, err := DecodeGIF(bytes.NewReader([]byte("GIF89a nope")))
	assert.Error(t, err)

	_, err = LoadGIF(filepath.Join(t.TempDir(), "missing.gif"))
	assert.Error(t, err)
}

func TestLoadGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fireworks.gif")
	require.NoError(t, os.WriteFile(path, encodeGIF(t, 2, 5), 0o644))

	clip, err := LoadGIF(path)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, clip.Delays)
}

func TestGIFAnimationBoundedByDuration(t *testing.T) {
	clip, err := DecodeGIF(bytes.NewReader(encodeGIF(t, 3, 1)))
	require.NoError(t, err)

	stage := &fakeStage{}
	anim := NewGIFAnimation(FireworksName, clip, 50*time.Millisecond)
	require.NoError(t, anim.Run(context.Background(), stage, 0))

	// 每帧 10ms，50ms 内播放 5 帧，超过帧数后循环
	require.Len(t, stage.images, 5)
	assert.Same(t, clip.Frames[0], stage.images[0])
	assert.Same(t, clip.Frames[0], stage.images[3])
	assert.Equal(t, 1, stage.restores)
}

func TestGIFAnimationRestoresOnError(t *testing.T) {
	clip, err := DecodeGIF(bytes.NewReader(encodeGIF(t, 1, 1)))
	require.NoError(t, err)

	stage := &fakeStage{showErr: errors.New("sink gone")}
	err = NewGIFAnimation(FireworksName, clip, time.Second).Run(context.Background(), stage, 0)
	assert.EqualError(t, err, "sink gone")
	assert.Equal(t, 1, stage.restores)
}

func TestGIFAnimationEmptyClip(t *testing.T) {
	stage := &fakeStage{}
	require.NoError(t, NewGIFAnimation(FireworksName, nil, 0).Run(context.Background(), stage, 0))
	assert.Zero(t, stage.restores)
}

type failingAnimation struct{}

func (failingAnimation) Name() string { return "broken" }

func (failingAnimation) Run(context.Context, Stage, int) error { return errors.New("boom") }

type probeAnimation struct {
	engine  *Engine
	running bool
	current string
}

func (p *probeAnimation) Name() string { return "probe" }

func (p *probeAnimation) Run(context.Context, Stage, int) error {
	p.running = p.engine.IsRunning()
	p.current = p.engine.GetCurrentAnimation()
	return nil
}

func TestEngine(t *testing.T) {
	e := NewEngine()
	probe := &probeAnimation{engine: e}
	e.Register(probe)
	e.Register(NewRainbowAnimation(time.Millisecond))
	e.Register(failingAnimation{})
	e.Register(nil)

	assert.Equal(t, []string{"broken", "probe", "rainbow"}, e.GetRegisteredAnimations())

	require.NoError(t, e.Play(context.Background(), "probe", &fakeStage{}, 0))
	assert.True(t, probe.running)
	assert.Equal(t, "probe", probe.current)
	assert.False(t, e.IsRunning())

	assert.Error(t, e.Play(context.Background(), "missing", &fakeStage{}, 0))
	assert.EqualError(t, e.Play(context.Background(), "broken", &fakeStage{}, 0), "boom")
	assert.False(t, e.IsRunning())
}

func TestEnginePlayCancelled(t *testing.T) {
	e := NewEngine()
	e.Register(NewRainbowAnimation(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.Play(ctx, RainbowName, &fakeStage{}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
