package animation

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
)

// Engine 管理和执行动画。
// 动画在调用者的 goroutine 中同步执行，执行期间主循环的其他更新全部暂停。
type Engine struct {
	animations    map[string]Animation // 注册的动画
	current       string               // 当前运行的动画名称
	engineMutex   sync.Mutex           // 保护 current
	registerMutex sync.RWMutex         // 保护动画注册表 (animations)
}

// NewEngine 创建一个新的动画引擎
func NewEngine() *Engine {
	return &Engine{animations: make(map[string]Animation)}
}

// Register 注册一个动画
func (e *Engine) Register(anim Animation) {
	e.registerMutex.Lock()
	defer e.registerMutex.Unlock()

	if anim == nil {
		log.Printf("⚠️ 尝试注册一个空动画")
		return
	}

	name := anim.Name()
	if _, exists := e.animations[name]; exists {
		log.Printf("⚠️ 动画 %s 已注册，将被覆盖", name)
	}
	e.animations[name] = anim
	log.Printf("✅ 动画 %s 已注册", name)
}

// getAnimation 安全地获取一个已注册的动画
func (e *Engine) getAnimation(name string) (Animation, bool) {
	e.registerMutex.RLock()
	defer e.registerMutex.RUnlock()
	anim, exists := e.animations[name]
	return anim, exists
}

// Play 执行一个动画，直到动画结束或 ctx 被取消才返回
func (e *Engine) Play(ctx context.Context, name string, stage Stage, row int) error {
	anim, exists := e.getAnimation(name)
	if !exists {
		return fmt.Errorf("❌ 动画 %s 未注册", name)
	}

	e.setCurrent(name)
	defer e.setCurrent("")

	log.Printf("▶️ 第 %d 行动画 %s 已启动", row, name)
	if err := anim.Run(ctx, stage, row); err != nil {
		log.Printf("❌ 第 %d 行动画 %s 执行出错: %v", row, name, err)
		return err
	}

	if ctx.Err() != nil {
		log.Printf("🛑 第 %d 行动画 %s 被停止", row, name)
		return ctx.Err()
	}
	log.Printf("👋 第 %d 行动画 %s 已完成", row, name)
	return nil
}

func (e *Engine) setCurrent(name string) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()
	e.current = name
}

// IsRunning 检查是否有动画在运行
func (e *Engine) IsRunning() bool { return e.GetCurrentAnimation() != "" }

// GetCurrentAnimation 获取当前运行的动画名称
func (e *Engine) GetCurrentAnimation() string {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()
	return e.current
}

// GetRegisteredAnimations 获取已注册的动画名称列表
func (e *Engine) GetRegisteredAnimations() []string {
	e.registerMutex.RLock()
	defer e.registerMutex.RUnlock()

	animations := make([]string, 0, len(e.animations))
	for name := range e.animations {
		animations = append(animations, name)
	}
	sort.Strings(animations)
	return animations
}
