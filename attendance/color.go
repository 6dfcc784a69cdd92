package attendance

import "image/color"

// Pack 把 RGB 打包成 0xRRGGBB
func Pack(red, green, blue uint8) uint32 {
	return uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// Unpack 把 0xRRGGBB 转成 color.RGBA
func Unpack(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// ColorFor 百分比到颜色的线性映射：0% 纯红，100% 纯绿，蓝色恒为 0。
// 绿色分量截断取整，红色取其补数，因此 red+green 恒等于 255。
func ColorFor(p float64) uint32 {
	green := uint8(255 * (clamp(p) / 100))
	return Pack(255-green, green, 0)
}

// RGBAFor 同 ColorFor，返回 color.RGBA
func RGBAFor(p float64) color.RGBA { return Unpack(ColorFor(p)) }

// Rainbow 庆祝时依次显示的七种颜色
var Rainbow = []uint32{
	Pack(255, 0, 0),
	Pack(255, 127, 0),
	Pack(255, 255, 0),
	Pack(0, 255, 0),
	Pack(0, 0, 255),
	Pack(75, 0, 130),
	Pack(143, 0, 255),
}

// White 标签默认颜色
const White uint32 = 0xFFFFFF
