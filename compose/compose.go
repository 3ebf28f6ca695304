// Package compose 把内容块流组版为页面序列。组版是纯计算：只决定
// 每一行落在哪一页的哪个坐标，不触碰任何像素；随后渲染器可以逐页
// 独立栅格化。
package compose

import (
	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/markup"
	"github.com/ByLCY/redpaper/style"
)

// Cover 是封面的组版结果：最终标题行与自适应字号。
type Cover struct {
	Lines    []string
	FontSize float64
}

// PlacedLine 是已定位的排版行。X/Y 为行左上角的页面坐标。
type PlacedLine struct {
	Line layout.Line
	X, Y float64
}

// Page 为一页正文的组版结果，Number 从 1 起严格递增。
type Page struct {
	Number int
	Lines  []PlacedLine
}

// Deck 聚合一次生成任务的全部组版产物，交由渲染器消费。
type Deck struct {
	Style  style.Descriptor
	Config layout.Config
	Header string
	Footer string
	Cover  Cover
	Pages  []Page
}

// 自动换行标题的固定预算：每行 7 字、最多 3 行，与会话层判定手动分行
// 可接受性用的预算一致；超宽由字号自适应兜底，与变体几何无关。
const (
	autoWrapRunes    = 7
	autoWrapMaxLines = 3
)

// BuildCover 对标题做取行与字号自适应，产出封面组版结果。
// mode 由调用方显式指定（手动分行 / 自动换行），见 layout.TitleMode。
func BuildCover(title string, mode layout.TitleMode, st style.Descriptor, cfg layout.Config, m layout.Measurer) Cover {
	cl := st.CoverLayout()
	maxWidth := cfg.Width - cl.WidthInset

	maxLines := cl.MaxLines
	if mode == layout.TitleAutoWrap {
		maxLines = autoWrapMaxLines
	}
	lines := layout.TitleLines(title, mode, autoWrapRunes, maxLines)
	size := layout.FitTitleSize(lines, m, layout.FontBold, cl.BaseSize, cl.MinSize, maxWidth)
	return Cover{Lines: lines, FontSize: size}
}

// composerState 是组版状态机的状态。状态只在 place/flush 内迁移。
type composerState int

const (
	stateFilling  composerState = iota // 当前页接收内容
	stateOverflow                      // 下一行放不下，待落盘
	stateFlushed                       // 当前页已收束，即将开新页
)

// composer 维护逐页游标。同一时刻只有一页处于 Filling 状态。
type composer struct {
	cfg     layout.Config
	pages   []Page
	current Page
	cursorY float64
	state   composerState
}

func newComposer(cfg layout.Config) *composer {
	return &composer{
		cfg:     cfg,
		current: Page{Number: 1},
		cursorY: cfg.ContentTop(),
		state:   stateFilling,
	}
}

// place 在当前页放置一行；放不下时先收束当前页再放到新页首行。
// 一行永远不会被拆到两页。
func (c *composer) place(line layout.Line, height float64) {
	if c.cursorY+height > c.cfg.ContentBottom() {
		c.state = stateOverflow
		c.flush()
	}
	c.current.Lines = append(c.current.Lines, PlacedLine{
		Line: line,
		X:    c.cfg.CardMarginOuter + c.cfg.CardPaddingInner,
		Y:    c.cursorY,
	})
	c.cursorY += height
}

// advance 只消耗纵向空间（空行块），必要时同样触发换页。
func (c *composer) advance(height float64) {
	if c.cursorY+height > c.cfg.ContentBottom() {
		c.state = stateOverflow
		c.flush()
	}
	c.cursorY += height
}

// flush 收束当前页并开启新页，游标回到卡片顶部内边距。
func (c *composer) flush() {
	c.state = stateFlushed
	c.pages = append(c.pages, c.current)
	c.current = Page{Number: c.current.Number + 1}
	c.cursorY = c.cfg.ContentTop()
	c.state = stateFilling
}

// finish 落盘最后一页（即使几乎为空也不向前合并），返回全部页面。
func (c *composer) finish() []Page {
	c.pages = append(c.pages, c.current)
	return c.pages
}

// BuildBody 将内容块流换行并分页。每个非空内容块至少产出一行；
// 空行块只消耗纵向空间。
func BuildBody(blocks []markup.Block, cfg layout.Config, m layout.Measurer) []Page {
	c := newComposer(cfg)
	width := cfg.ContentWidth()

	for _, block := range blocks {
		switch block.Kind {
		case markup.KindSpacer:
			c.advance(cfg.SpacerHeight())
		case markup.KindHeading:
			for _, line := range blockLines(block.Text, layout.FontBold, cfg.TitleFontSize, width, m) {
				c.place(layout.Line{Content: line, Kind: layout.LineTitle, FontSize: cfg.TitleFontSize}, cfg.TitleLineHeight())
			}
		default:
			for _, line := range blockLines(block.Text, layout.FontRegular, cfg.BodyFontSize, width, m) {
				c.place(layout.Line{Content: line, Kind: layout.LineParagraph, FontSize: cfg.BodyFontSize}, cfg.BodyLineHeight())
			}
		}
	}
	return c.finish()
}

// blockLines 对单个内容块换行。空块也保证产出一行，内容不会被静默丢弃。
func blockLines(text string, class layout.FontClass, size, width float64, m layout.Measurer) []string {
	lines := layout.BreakLines(layout.Tokenize(text), m, class, size, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Build 组装完整的 Deck：封面 + 分页正文。
func Build(title, body string, mode layout.TitleMode, st style.Descriptor, cfg layout.Config, header, footer string, m layout.Measurer) *Deck {
	return &Deck{
		Style:  st,
		Config: cfg,
		Header: header,
		Footer: footer,
		Cover:  BuildCover(title, mode, st, cfg, m),
		Pages:  BuildBody(markup.Parse(body), cfg, m),
	}
}
