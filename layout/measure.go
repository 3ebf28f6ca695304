package layout

import "unicode/utf8"

// FontClass 标识测量与绘制使用的字体角色。
type FontClass int

const (
	FontRegular FontClass = iota // 正文字体
	FontBold                     // 标题/加粗字体
)

// Measurer 返回文本在给定字体角色与字号下的渲染宽度（像素）。
// 渲染后端（renderer/canvas）提供精确的字形推进量实现；
// 没有字体后端时可用 HeuristicWidth 兜底，布局算法对两者一视同仁。
type Measurer interface {
	TextWidth(text string, class FontClass, size float64) float64
}

// HeuristicWidth 是测量后端不可用时的估宽兜底：字符数 × 字号。
// 对 CJK 全角字符恰好成立，对拉丁字符偏宽，但保证换行永不阻塞。
func HeuristicWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size
}

// HeuristicMeasurer 以 HeuristicWidth 实现 Measurer，主要用于测试与降级路径。
type HeuristicMeasurer struct{}

// TextWidth 实现 Measurer。
func (HeuristicMeasurer) TextWidth(text string, _ FontClass, size float64) float64 {
	return HeuristicWidth(text, size)
}
