package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Node 场景中可绘制的元素
type Node interface {
	// Draw 以 origin 为原点把自己画到 dst 上
	Draw(dst *image.RGBA, origin image.Point)
}

// Group 一组带偏移的子元素
type Group struct {
	X, Y     int
	Children []Node
}

func NewGroup(x, y int) *Group { return &Group{X: x, Y: y} }

// Append 添加子元素
func (g *Group) Append(n Node) { g.Children = append(g.Children, n) }

// Len 子元素数量
func (g *Group) Len() int { return len(g.Children) }

func (g *Group) Draw(dst *image.RGBA, origin image.Point) {
	o := origin.Add(image.Pt(g.X, g.Y))
	for _, child := range g.Children {
		child.Draw(dst, o)
	}
}

// Label 单行文本，X/Y 为文本左上角
type Label struct {
	X, Y  int
	Text  string
	Color color.RGBA
	Face  font.Face
}

func NewLabel(text string, c color.RGBA) *Label {
	return &Label{Text: text, Color: c, Face: Face()}
}

// Set 同时更新文本和颜色
func (l *Label) Set(text string, c color.RGBA) {
	l.Text = text
	l.Color = c
}

// Width 文本宽度（像素）
func (l *Label) Width() int {
	return font.MeasureString(l.Face, l.Text).Ceil()
}

func (l *Label) Draw(dst *image.RGBA, origin image.Point) {
	ascent := l.Face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.Color),
		Face: l.Face,
		Dot:  fixed.P(origin.X+l.X, origin.Y+l.Y+ascent),
	}
	d.DrawString(l.Text)
}

// Tile 显示一张图片，例如 GIF 的一帧
type Tile struct {
	X, Y  int
	Image image.Image
}

func (t *Tile) Draw(dst *image.RGBA, origin image.Point) {
	if t.Image == nil {
		return
	}
	b := t.Image.Bounds()
	r := image.Rectangle{Min: origin.Add(image.Pt(t.X, t.Y)), Max: origin.Add(image.Pt(t.X, t.Y)).Add(b.Size())}
	draw.Draw(dst, r, t.Image, b.Min, draw.Over)
}
