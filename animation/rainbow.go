package animation

import (
	"context"
	"time"

	"leaderboard/attendance"
)

// RainbowName 彩虹动画名称
const RainbowName = "rainbow"

// DefaultRainbowDelay 每种颜色停留的时间
const DefaultRainbowDelay = 300 * time.Millisecond

// RainbowAnimation 依次用七种彩虹色显示触发行的数据
type RainbowAnimation struct {
	delay time.Duration
}

func NewRainbowAnimation(delay time.Duration) *RainbowAnimation {
	if delay <= 0 {
		delay = DefaultRainbowDelay
	}
	return &RainbowAnimation{delay: delay}
}

func (r *RainbowAnimation) Name() string { return RainbowName }

func (r *RainbowAnimation) Run(ctx context.Context, stage Stage, row int) error {
	for _, c := range attendance.Rainbow {
		if err := stage.SetRowColor(row, attendance.Unpack(c)); err != nil {
			return err
		}
		if !sleep(ctx, r.delay) {
			return nil
		}
	}
	return nil
}
