package display

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"sort"
)

// Sink 接收渲染好的帧，对应具体的显示硬件
type Sink interface {
	Show(frame *image.RGBA) error
	Close() error
}

// NullSink 丢弃所有帧，用于无头运行
type NullSink struct{}

func (NullSink) Show(*image.RGBA) error { return nil }

func (NullSink) Close() error { return nil }

// TerminalSink 用 24 位 ANSI 颜色和半块字符在终端里预览点阵屏，
// 每个字符显示上下两个像素
type TerminalSink struct {
	w *bufio.Writer
}

func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: bufio.NewWriter(w)}
}

func (s *TerminalSink) Show(frame *image.RGBA) error {
	b := frame.Bounds()
	// 光标回到左上角
	fmt.Fprint(s.w, "\x1b[H")
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := frame.RGBAAt(x, y)
			bottom := frame.RGBAAt(x, y+1)
			fmt.Fprintf(s.w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		fmt.Fprint(s.w, "\x1b[0m\n")
	}
	return s.w.Flush()
}

func (s *TerminalSink) Close() error {
	fmt.Fprint(s.w, "\x1b[0m")
	return s.w.Flush()
}

var sinks = map[string]func() (Sink, error){
	"null": func() (Sink, error) { return NullSink{}, nil },
	"terminal": func() (Sink, error) {
		// 清屏一次，之后每帧只移动光标
		fmt.Fprint(os.Stdout, "\x1b[2J")
		return NewTerminalSink(os.Stdout), nil
	},
}

// RegisterSink 注册显示输出类型
func RegisterSink(name string, constructor func() (Sink, error)) { sinks[name] = constructor }

// NewSink 按名称创建显示输出
func NewSink(name string) (Sink, error) {
	constructor, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("未知的显示输出: %s", name)
	}
	return constructor()
}

// GetSupportedSinks 获取支持的显示输出列表
func GetSupportedSinks() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
