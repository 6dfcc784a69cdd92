package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"leaderboard/animation"
	"leaderboard/attendance"
	"leaderboard/display"
	"leaderboard/source"
)

// 默认参数
const (
	DefaultTick     = 200 * time.Millisecond
	DefaultDemoStep = 1.0 // 5/500
)

// Options 主循环参数
type Options struct {
	Tick         time.Duration // 每次循环后的等待时间
	PollInterval time.Duration // 数据刷新间隔，0 表示每次循环都刷新
	DemoStep     float64       // 演示模式每次推进的百分比
	Celebration  []string      // 达到 100% 时依次播放的动画
}

// Runner 排行榜主循环：刷新数据、检查庆祝条件、更新显示
type Runner struct {
	dataset *attendance.Dataset
	board   *Board
	source  source.Source
	engine  *animation.Engine
	status  *display.StatusLight
	opts    Options
	demo    bool

	lastPoll time.Time

	mu       sync.RWMutex
	snapshot []attendance.ClassRecord
	ticks    uint64
}

// NewRunner 创建主循环，数据集全零开始
func NewRunner(d *display.Display, src source.Source, engine *animation.Engine, status *display.StatusLight, opts Options) *Runner {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.DemoStep <= 0 {
		opts.DemoStep = DefaultDemoStep
	}

	dataset := attendance.NewDataset()
	return &Runner{
		dataset:  dataset,
		board:    NewBoard(d, dataset),
		source:   src,
		engine:   engine,
		status:   status,
		opts:     opts,
		demo:     source.IsDemo(src),
		snapshot: dataset.Snapshot(),
	}
}

// Run 按固定节奏循环，直到 ctx 取消或显示出错
func (r *Runner) Run(ctx context.Context) error {
	log.Printf("🚀 排行榜开始运行 (数据源: %s, 间隔: %s)", r.source.Name(), r.opts.Tick)
	defer func() {
		if err := r.status.Halt(); err != nil {
			log.Printf("⚠️ 关闭状态指示灯失败: %v", err)
		}
	}()

	for {
		if err := r.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				log.Printf("🛑 排行榜已停止")
				return nil
			}
			return err
		}

		t := time.NewTimer(r.opts.Tick)
		select {
		case <-ctx.Done():
			t.Stop()
			log.Printf("🛑 排行榜已停止")
			return nil
		case <-t.C:
		}
	}
}

// Tick 执行一次循环
func (r *Runner) Tick(ctx context.Context) error {
	r.advance(ctx)

	// 先提交最新文本，庆祝动画在此基础上改颜色
	r.board.Update(r.dataset)
	for i, rec := range r.dataset.Records {
		if !rec.Complete() || !rec.MarkCelebrated() {
			continue
		}
		r.publish()
		log.Printf("🎉 %s 出勤率达到 100%%，开始庆祝", rec.Name)
		if err := r.celebrate(ctx, i); err != nil {
			return err
		}
	}

	r.board.Update(r.dataset)
	if err := r.board.Refresh(); err != nil {
		return err
	}
	if err := r.status.Heartbeat(); err != nil {
		log.Printf("⚠️ 状态指示灯心跳失败: %v", err)
	}

	r.mu.Lock()
	r.ticks++
	r.mu.Unlock()
	r.publish()
	return nil
}

// advance 演示模式推进第一行，否则按间隔从数据源刷新
func (r *Runner) advance(ctx context.Context) {
	if r.demo {
		r.dataset.Records[0].Advance(r.opts.DemoStep)
		return
	}

	now := time.Now()
	if !r.lastPoll.IsZero() && now.Sub(r.lastPoll) < r.opts.PollInterval {
		return
	}
	r.lastPoll = now
	r.dataset.Apply(source.Refresh(ctx, r.source))
}

// celebrate 同步播放庆祝动画，期间不处理其他更新
func (r *Runner) celebrate(ctx context.Context, row int) error {
	if err := r.status.Hold(true); err != nil {
		log.Printf("⚠️ 点亮状态指示灯失败: %v", err)
	}
	for _, name := range r.opts.Celebration {
		if err := r.engine.Play(ctx, name, r.board, row); err != nil {
			return fmt.Errorf("播放庆祝动画 %s 失败：%w", name, err)
		}
	}
	return nil
}

func (r *Runner) publish() {
	snap := r.dataset.Snapshot()
	r.mu.Lock()
	r.snapshot = snap
	r.mu.Unlock()
}

// Snapshot 返回最近一次循环后的数据副本，可并发调用
func (r *Runner) Snapshot() []attendance.ClassRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.ClassRecord, len(r.snapshot))
	copy(out, r.snapshot)
	return out
}

// Ticks 已完成的循环次数
func (r *Runner) Ticks() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ticks
}

// SourceName 数据源名称
func (r *Runner) SourceName() string { return r.source.Name() }

// Interval 循环间隔
func (r *Runner) Interval() time.Duration { return r.opts.Tick }
