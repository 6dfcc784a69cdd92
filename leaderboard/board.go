package leaderboard

import (
	"fmt"
	"image"
	"image/color"

	"leaderboard/attendance"
	"leaderboard/display"
)

// 根元素偏移，随字体变化
const (
	rootOffsetX = 0
	rootOffsetY = 1
)

// dataColumn 数据列的横坐标，即 宽度/2.3 取整，屏幕从中间偏左分成两列
const dataColumn = display.Width * 10 / 23

// Row 一行：左边是年级名称，右边是数据
type Row struct {
	group *display.Group
	label *display.Label
	data  *display.Label
}

func newRow(root *display.Group, name, data string) *Row {
	n := root.Len()
	r := &Row{
		group: display.NewGroup(0, display.Height*n/len(attendance.Classes)),
		label: display.NewLabel(name, attendance.Unpack(attendance.White)),
		data:  display.NewLabel(data, attendance.Unpack(attendance.White)),
	}
	r.data.X = dataColumn
	r.group.Append(r.label)
	r.group.Append(r.data)
	root.Append(r.group)
	return r
}

// Update 更新数据文本和颜色
func (r *Row) Update(text string, c color.RGBA) { r.data.Set(text, c) }

// Board 排行榜的显示部分，实现 animation.Stage
type Board struct {
	display *display.Display
	root    *display.Group
	rows    []*Row
}

// NewBoard 为数据集中的每个年级创建一行，并把排行榜设为根元素
func NewBoard(d *display.Display, dataset *attendance.Dataset) *Board {
	b := &Board{
		display: d,
		root:    display.NewGroup(rootOffsetX, rootOffsetY),
	}
	for _, r := range dataset.Records {
		b.rows = append(b.rows, newRow(b.root, r.Name, "0/0"))
	}
	d.SetRoot(b.root)
	return b
}

// Rows 行数
func (b *Board) Rows() int { return len(b.rows) }

// Update 把数据集的文本和颜色提交到每一行
func (b *Board) Update(dataset *attendance.Dataset) {
	for i, r := range dataset.Records {
		if i >= len(b.rows) {
			break
		}
		b.rows[i].Update(r.Text(), attendance.Unpack(r.Color()))
	}
}

// Refresh 重新绘制屏幕
func (b *Board) Refresh() error { return b.display.Refresh() }

// SetRowColor 修改一行数据的颜色并刷新
func (b *Board) SetRowColor(row int, c color.RGBA) error {
	if row < 0 || row >= len(b.rows) {
		return fmt.Errorf("行号超出范围: %d", row)
	}
	b.rows[row].data.Color = c
	return b.display.Refresh()
}

// ShowImage 临时用图片替换排行榜
func (b *Board) ShowImage(img image.Image) error {
	b.display.SetRoot(&display.Tile{Image: img})
	return b.display.Refresh()
}

// Restore 恢复排行榜为根元素
func (b *Board) Restore() error {
	b.display.SetRoot(b.root)
	return b.display.Refresh()
}
