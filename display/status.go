package display

import (
	"fmt"
	"log"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// StatusLight 接在 GPIO 上的状态指示灯。
// 每个循环翻转一次作为心跳，庆祝期间保持点亮。nil 表示未配置，所有方法都是空操作。
type StatusLight struct {
	pin   gpio.PinOut
	level gpio.Level
}

func NewStatusLight(pin gpio.PinOut) *StatusLight { return &StatusLight{pin: pin} }

// OpenStatusLight 按引脚名打开指示灯，name 为空时返回 nil
func OpenStatusLight(name string) (*StatusLight, error) {
	if name == "" {
		return nil, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("初始化 GPIO 失败：%w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("无效的 GPIO 引脚: %s", name)
	}
	log.Printf("💡 状态指示灯使用引脚 %s", p)
	return NewStatusLight(p), nil
}

// Heartbeat 翻转指示灯
func (s *StatusLight) Heartbeat() error {
	if s == nil {
		return nil
	}
	return s.set(!s.level)
}

// Hold 固定点亮或熄灭
func (s *StatusLight) Hold(on bool) error {
	if s == nil {
		return nil
	}
	return s.set(gpio.Level(on))
}

// Halt 熄灭指示灯
func (s *StatusLight) Halt() error { return s.Hold(false) }

func (s *StatusLight) set(l gpio.Level) error {
	if err := s.pin.Out(l); err != nil {
		return fmt.Errorf("设置引脚 %s 失败：%w", s.pin, err)
	}
	s.level = l
	return nil
}
