package layout

// LineKind 标识一行文本来源于哪类内容块。
type LineKind int

const (
	LineParagraph LineKind = iota // 正文行
	LineTitle                     // 小节标题行
)

// Line 是换行之后的最终排版行：文本内容、来源块类型与渲染字号。
// 一个内容块可能产生 0、1 或多行。
type Line struct {
	Content  string
	Kind     LineKind
	FontSize float64
}
