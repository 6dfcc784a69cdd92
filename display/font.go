package display

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// 字形尺寸：5x7 点阵，行高 8，四行正好填满 32 像素高的屏幕
const (
	glyphWidth   = 5
	glyphAscent  = 7
	glyphDescent = 1
	glyphAdvance = 6
	lineHeight   = glyphAscent + glyphDescent
)

// 每个字形 7 行，'#' 为点亮的像素
var glyphs = map[rune][glyphAscent]string{
	' ': {"     ", "     ", "     ", "     ", "     ", "     ", "     "},
	'%': {"##  #", "##  #", "   # ", "  #  ", " #   ", "#  ##", "#  ##"},
	'.': {"     ", "     ", "     ", "     ", "     ", " ##  ", " ##  "},
	'/': {"    #", "    #", "   # ", "  #  ", " #   ", "#    ", "#    "},
	'0': {" ### ", "#   #", "#  ##", "# # #", "##  #", "#   #", " ### "},
	'1': {"  #  ", " ##  ", "  #  ", "  #  ", "  #  ", "  #  ", " ### "},
	'2': {" ### ", "#   #", "    #", "   # ", "  #  ", " #   ", "#####"},
	'3': {"#####", "   # ", "  #  ", "   # ", "    #", "#   #", " ### "},
	'4': {"   # ", "  ## ", " # # ", "#  # ", "#####", "   # ", "   # "},
	'5': {"#####", "#    ", "#### ", "    #", "    #", "#   #", " ### "},
	'6': {"  ## ", " #   ", "#    ", "#### ", "#   #", "#   #", " ### "},
	'7': {"#####", "    #", "   # ", "  #  ", " #   ", " #   ", " #   "},
	'8': {" ### ", "#   #", "#   #", " ### ", "#   #", "#   #", " ### "},
	'9': {" ### ", "#   #", "#   #", " ####", "    #", "   # ", " ##  "},
	':': {"     ", " ##  ", " ##  ", "     ", " ##  ", " ##  ", "     "},
	'A': {" ### ", "#   #", "#   #", "#####", "#   #", "#   #", "#   #"},
	'B': {"#### ", "#   #", "#   #", "#### ", "#   #", "#   #", "#### "},
	'C': {" ### ", "#   #", "#    ", "#    ", "#    ", "#   #", " ### "},
	'D': {"###  ", "#  # ", "#   #", "#   #", "#   #", "#  # ", "###  "},
	'E': {"#####", "#    ", "#    ", "#### ", "#    ", "#    ", "#####"},
	'F': {"#####", "#    ", "#    ", "#### ", "#    ", "#    ", "#    "},
	'G': {" ### ", "#   #", "#    ", "# ###", "#   #", "#   #", " ####"},
	'H': {"#   #", "#   #", "#   #", "#####", "#   #", "#   #", "#   #"},
	'I': {" ### ", "  #  ", "  #  ", "  #  ", "  #  ", "  #  ", " ### "},
	'J': {"  ###", "   # ", "   # ", "   # ", "   # ", "#  # ", " ##  "},
	'K': {"#   #", "#  # ", "# #  ", "##   ", "# #  ", "#  # ", "#   #"},
	'L': {"#    ", "#    ", "#    ", "#    ", "#    ", "#    ", "#####"},
	'M': {"#   #", "## ##", "# # #", "# # #", "#   #", "#   #", "#   #"},
	'N': {"#   #", "#   #", "##  #", "# # #", "#  ##", "#   #", "#   #"},
	'O': {" ### ", "#   #", "#   #", "#   #", "#   #", "#   #", " ### "},
	'P': {"#### ", "#   #", "#   #", "#### ", "#    ", "#    ", "#    "},
	'Q': {" ### ", "#   #", "#   #", "#   #", "# # #", "#  # ", " ## #"},
	'R': {"#### ", "#   #", "#   #", "#### ", "# #  ", "#  # ", "#   #"},
	'S': {" ####", "#    ", "#    ", " ### ", "    #", "    #", "#### "},
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  ", "  #  ", "  #  "},
	'U': {"#   #", "#   #", "#   #", "#   #", "#   #", "#   #", " ### "},
	'V': {"#   #", "#   #", "#   #", "#   #", "#   #", " # # ", "  #  "},
	'W': {"#   #", "#   #", "#   #", "# # #", "# # #", "# # #", " # # "},
	'X': {"#   #", "#   #", " # # ", "  #  ", " # # ", "#   #", "#   #"},
	'Y': {"#   #", "#   #", " # # ", "  #  ", "  #  ", "  #  ", "  #  "},
	'Z': {"#####", "    #", "   # ", "  #  ", " #   ", "#    ", "#####"},
}

// 字形在掩码中的排列顺序，每段为连续的码位
var glyphRanges = [][2]rune{
	{' ', ' '},
	{'%', '%'},
	{'.', ':'},
	{'A', 'Z'},
}

var (
	faceOnce sync.Once
	face     *basicfont.Face
)

// Face 返回内置的 5x7 点阵字体
func Face() font.Face {
	faceOnce.Do(func() { face = buildFace() })
	return face
}

func buildFace() *basicfont.Face {
	var count int
	for _, r := range glyphRanges {
		count += int(r[1]-r[0]) + 1
	}

	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, count*lineHeight))
	ranges := make([]basicfont.Range, 0, len(glyphRanges))

	offset := 0
	for _, r := range glyphRanges {
		// basicfont.Range 的 High 不包含在内
		ranges = append(ranges, basicfont.Range{Low: r[0], High: r[1] + 1, Offset: offset})
		for c := r[0]; c <= r[1]; c++ {
			rows := glyphs[c]
			top := offset * lineHeight
			for y, line := range rows {
				for x, px := range line {
					if px == '#' {
						mask.Pix[(top+y)*mask.Stride+x] = 0xFF
					}
				}
			}
			offset++
		}
	}

	return &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  lineHeight,
		Ascent:  glyphAscent,
		Descent: glyphDescent,
		Mask:    mask,
		Ranges:  ranges,
	}
}
