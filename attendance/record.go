package attendance

import (
	"fmt"
	"math"
)

// 百分比上下限
const (
	MinPercentage = 0.0
	MaxPercentage = 100.0
)

// ClassRecord 一个年级的出勤状态
type ClassRecord struct {
	Key        string  `json:"key"`        // 数据源中的键，例如 "freshmen"
	Name       string  `json:"name"`       // 屏幕上显示的名称，例如 "FSMN"
	Percentage float64 `json:"percentage"` // 出勤百分比 [0,100]
	Celebrated bool    `json:"celebrated"` // 是否已经庆祝过
}

// clamp 把百分比限制在 [0,100]
func clamp(p float64) float64 {
	if math.IsNaN(p) || p < MinPercentage {
		return MinPercentage
	}
	if p > MaxPercentage {
		return MaxPercentage
	}
	return p
}

// SetPercentage 设置百分比
func (r *ClassRecord) SetPercentage(p float64) { r.Percentage = clamp(p) }

// Advance 按步长推进百分比，最多到 100
func (r *ClassRecord) Advance(step float64) { r.Percentage = clamp(r.Percentage + step) }

// Complete 是否已达到 100%
func (r *ClassRecord) Complete() bool { return r.Percentage >= MaxPercentage }

// MarkCelebrated 标记为已庆祝。只有第一次调用返回 true，之后永远不会重置。
func (r *ClassRecord) MarkCelebrated() bool {
	if r.Celebrated {
		return false
	}
	r.Celebrated = true
	return true
}

// Text 数据列显示的文本
func (r *ClassRecord) Text() string { return fmt.Sprintf("%.1f%%", r.Percentage) }

// Color 数据列显示的颜色
func (r *ClassRecord) Color() uint32 { return ColorFor(r.Percentage) }

// Tally 数据文件里的原始计数
type Tally struct {
	TappedIn      float64 `json:"tapped_in"`
	TotalStudents float64 `json:"total_students"`
}

// Percentage 计算出勤百分比，总人数为 0 时返回 0
func (t Tally) Percentage() float64 {
	if t.TotalStudents <= 0 {
		return 0
	}
	return clamp(t.TappedIn / t.TotalStudents * 100)
}
