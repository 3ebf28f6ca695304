package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/redpaper/compose"
	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/style"
)

// coverPainters 按版式变体分发封面绘制例程。注册表保证变体标签合法，
// 这里对每个规范变体都必须有一项（有测试守护完整性）。
var coverPainters = map[style.Variant]func(*Renderer, *painter, *compose.Deck){
	style.VariantFlat:        (*Renderer).coverFlat,
	style.VariantCard:        (*Renderer).coverCard,
	style.VariantCardOutline: (*Renderer).coverCardOutline,
	style.VariantCardMinimal: (*Renderer).coverCardMinimal,
	style.VariantMagazine:    (*Renderer).coverMagazine,
	style.VariantQuote:       (*Renderer).coverQuote,
	style.VariantStickyNote:  (*Renderer).coverStickyNote,
	style.VariantCardStyle:   (*Renderer).coverCardStyle,
	style.VariantPostit:      (*Renderer).coverPostit,
	style.VariantTicket:      (*Renderer).coverTicket,
}

// pillBehindLine 给出封面标题第 index 行（共 total 行）是否垫强调色药丸：
// 多行标题首行保持素色、续行垫底，单行标题同样垫底。
func pillBehindLine(index, total int) bool {
	return index > 0 || total == 1
}

// coverTitleWithPill 按变体几何绘制标题行，并按 pillBehindLine 的规则
// 在行文字后方先铺一块圆角强调色底。
func (r *Renderer) coverTitleWithPill(p *painter, d *compose.Deck) {
	st := d.Style
	cl := st.CoverLayout()
	size := d.Cover.FontSize
	lineHeight := size + cl.ExtraLeading
	y := cl.StartY
	for i, line := range d.Cover.Lines {
		w := r.TextWidth(line, layout.FontBold, size)
		x := cl.MarginX
		if cl.Centered {
			x = (d.Config.Width - w) / 2
		}
		if pillBehindLine(i, len(d.Cover.Lines)) {
			p.fillRoundedRect(x-10, y+10, w+20, size+10, 10, rgb(st.Accent))
		}
		p.text(x, y, size, layout.FontBold, rgb(st.Text), line)
		y += lineHeight
	}
}

// coverTitle 按变体的封面几何绘制标题行（无强调效果的通用路径）。
func (p *painter) coverTitle(d *compose.Deck, col color.Color) {
	cl := d.Style.CoverLayout()
	size := d.Cover.FontSize
	lineHeight := size + cl.ExtraLeading
	y := cl.StartY
	for _, line := range d.Cover.Lines {
		if cl.Centered {
			p.textCentered(d.Config.Width/2, y, size, layout.FontBold, col, line)
		} else {
			p.text(cl.MarginX, y, size, layout.FontBold, col, line)
		}
		y += lineHeight
	}
}

// coverFlat：顶部深色横幅 + 左对齐标题（带投影）+ 底部强调短线。
func (r *Renderer) coverFlat(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cl := st.CoverLayout()

	p.fillRect(0, 0, cfg.Width, 200, rgb(st.Text))
	p.text(60, 60, 40, layout.FontBold, canvas.White, d.Header)

	size := d.Cover.FontSize
	lineHeight := size + cl.ExtraLeading
	y := cl.StartY
	for _, line := range d.Cover.Lines {
		p.text(cl.MarginX+5, y+5, size, layout.FontBold, canvas.Hex("#DDDDDD"), line)
		p.text(cl.MarginX, y, size, layout.FontBold, rgb(st.Text), line)
		y += lineHeight
	}

	finalY := cl.StartY + float64(len(d.Cover.Lines))*lineHeight + 50
	p.line(cl.MarginX, finalY, cl.MarginX+200, finalY, 10, rgb(st.Accent))
}

// coverCard：顶部强调条 + 投影卡片 + 居中标题（逐行强调底纹）。
func (r *Renderer) coverCard(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cx, cy := 80.0, 250.0
	cw, ch := cfg.Width-160, cfg.Height-500

	p.fillRect(0, 0, cfg.Width, 50, rgb(st.Accent))
	if st.Shadow != nil {
		p.fillRoundedRect(cx+15, cy+15, cw, ch, 40, rgb(*st.Shadow))
	}
	p.fillRoundedRect(cx, cy, cw, ch, 40, rgb(st.Card))
	for i := 0; i < 3; i++ {
		p.fillCircle(cx+60+float64(i)*30, cy+60, 10, rgb(st.Accent))
	}

	r.centeredTitleWithHighlight(p, d, cx, cy, ch, rgba(st.Accent, 0.15), false)
	p.textRight(cfg.Width-100, cfg.Height-150, cfg.FooterFontSize, layout.FontRegular, rgb(st.Header), d.Footer)
}

// coverCardOutline：描边卡片 + 窗口控制圆点 + 双重描边标题。
func (r *Renderer) coverCardOutline(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cx, cy := 80.0, 250.0
	cw, ch := cfg.Width-160, cfg.Height-500

	p.fillRoundedRect(cx, cy, cw, ch, 20, rgb(st.Card))
	p.strokeRoundedRect(cx, cy, cw, ch, 20, 4, rgb(st.Accent))
	p.fillCircle(cx+50, cy+50, 10, canvas.Hex("#FF5F56"))
	p.fillCircle(cx+90, cy+50, 10, canvas.Hex("#FFBD2E"))
	p.fillCircle(cx+130, cy+50, 10, canvas.Hex("#27C93F"))

	cl := st.CoverLayout()
	size := d.Cover.FontSize
	lineHeight := size + cl.ExtraLeading
	startY := cy + (ch-float64(len(d.Cover.Lines))*lineHeight)/2
	y := startY
	for _, line := range d.Cover.Lines {
		w := r.TextWidth(line, layout.FontBold, size)
		x := (cfg.Width - w) / 2
		// 错位双重描边制造辉光感
		p.text(x, y, size, layout.FontBold, rgb(st.Accent), line)
		p.text(x-2, y-2, size, layout.FontBold, rgb(st.Text), line)
		y += lineHeight
	}

	p.textCentered(cfg.Width/2, cfg.Height-150, cfg.FooterFontSize, layout.FontRegular, rgb(st.Accent), ">>> "+d.Footer+" <<<")
}

// coverCardMinimal：素色卡片 + 顶部图标占位 + 首行底纹强调。
func (r *Renderer) coverCardMinimal(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cx, cy := 100.0, 300.0
	cw, ch := cfg.Width-200, cfg.Height-600

	p.fillRect(cx, cy, cw, ch, rgb(st.Card))
	p.fillEllipse(cfg.Width/2, cy-20, 80, 80, canvas.White)

	r.centeredTitleWithHighlight(p, d, cx, cy, ch, rgba(st.Accent, 0.2), true)
	p.textRight(cfg.Width-100, cfg.Height-150, cfg.FooterFontSize, layout.FontRegular, canvas.Hex("#999999"), d.Footer)
}

// coverMagazine：左侧强调色竖条 + 期刊标语 + 大号左对齐标题。
func (r *Renderer) coverMagazine(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cl := st.CoverLayout()

	p.fillRect(0, 0, 100, cfg.Height, rgb(st.Accent))
	p.fillRect(100, 0, cfg.Width-100, cfg.Height, rgb(st.Card))
	p.text(150, 100, 60, layout.FontBold, rgb(st.Accent), "ISSUE 01")

	p.coverTitle(d, rgb(st.Text))

	p.fillRect(cl.MarginX, cfg.Height-300, cfg.Width-100-cl.MarginX, 10, canvas.Black)
	p.textRight(cfg.Width-100, cfg.Height-250, 50, layout.FontBold, canvas.Black, d.Footer)
}

// coverQuote：大圆角底卡 + 首尾引号 + 左对齐标题（续行垫强调色药丸）。
func (r *Renderer) coverQuote(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config

	p.fillRoundedRect(40, 40, cfg.Width-80, cfg.Height-80, 60, rgb(st.Card))
	p.text(80, 80, 120, layout.FontBold, rgb(st.Accent), "“")
	p.text(80, cfg.Height-220, 120, layout.FontBold, rgb(st.Accent), "”")

	r.coverTitleWithPill(p, d)
}

// coverStickyNote：强调色外框 + 白色内卡 + 横格线。
func (r *Renderer) coverStickyNote(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	margin := 60.0
	innerMargin := margin + 30
	innerTop := margin + 100

	p.fillRoundedRect(margin, margin, cfg.Width-2*margin, cfg.Height-2*margin, 40, rgb(st.Accent))
	p.fillRoundedRect(innerMargin, innerTop, cfg.Width-2*innerMargin, cfg.Height-innerMargin-30-innerTop, 30, rgb(st.Card))

	p.text(innerMargin+20, margin+25, 36, layout.FontBold, canvas.Hex("#666666"), "Sticky Notes")
	p.fillEllipse(cfg.Width/2, margin+40, 15, 15, canvas.Hex("#FFB800"))
	p.text(cfg.Width-innerMargin-160, margin+25, 36, layout.FontBold, canvas.Hex("#666666"), "AI Daily")

	for i := 0; i < 12; i++ {
		y := innerTop + 60 + float64(i)*85
		if y < cfg.Height-innerMargin-100 {
			p.line(innerMargin+30, y, cfg.Width-innerMargin-30, y, 2, canvas.Hex("#E0E0E0"))
		}
	}

	p.coverTitle(d, rgb(st.Text))
}

// coverCardStyle：满铺底色 + 白色圆角卡片 + 卡片下方双标签。
func (r *Renderer) coverCardStyle(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cardMargin := 80.0
	cardTop := 100.0
	cardBottom := cfg.Height - 180

	p.fillRoundedRect(cardMargin, cardTop, cfg.Width-2*cardMargin, cardBottom-cardTop, 40, rgb(st.Card))
	p.text(cardMargin+40, cardBottom+40, 36, layout.FontBold, canvas.White, "Monday")
	p.text(cfg.Width-cardMargin-180, cardBottom+40, 36, layout.FontBold, canvas.White, "Text Note")

	p.coverTitle(d, rgb(st.Text))
}

// coverPostit：投影多边形 + 便签主体 + 右上角胶带 + 右下角手写签名。
func (r *Renderer) coverPostit(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	m := 60.0

	p.fillPolygon([]point{
		{m + 15, m + 20}, {cfg.Width - m + 8, m + 15},
		{cfg.Width - m + 12, cfg.Height - m + 8}, {m + 8, cfg.Height - m + 12},
	}, canvas.Hex("#E0E0E0"))
	p.fillRect(m, m, cfg.Width-2*m, cfg.Height-2*m, rgb(st.Card))

	tapeX, tapeY := cfg.Width-m-60, m-15
	p.fillPolygon([]point{
		{tapeX, tapeY}, {tapeX + 100, tapeY - 10},
		{tapeX + 105, tapeY + 50}, {tapeX - 5, tapeY + 60},
	}, canvas.Hex("#F5DEB3"))

	p.coverTitle(d, rgb(st.Text))
	p.text(cfg.Width-m-200, cfg.Height-m-80, 40, layout.FontRegular, canvas.Hex("#CC6699"), "...Note!")
}

// coverTicket：满铺底色 + 票据卡片 + 顶部色条 + 底部锯齿撕边，
// 标题续行垫强调色药丸。
func (r *Renderer) coverTicket(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	cardMargin := 80.0
	cardTop := 100.0
	cardBottom := cfg.Height - 100

	p.fillRoundedRect(cardMargin, cardTop, cfg.Width-2*cardMargin, cardBottom-cardTop, 30, rgb(st.Card))
	p.fillRect(cardMargin, cardTop, cfg.Width-2*cardMargin, 50, rgb(st.Accent))

	toothSize := 25.0
	for i := 0.0; cardMargin+i*toothSize < cfg.Width-cardMargin; i++ {
		cx := cardMargin + i*toothSize + toothSize/2
		p.fillPolygon([]point{
			{cx - toothSize/2, cardBottom}, {cx, cardBottom + toothSize}, {cx + toothSize/2, cardBottom},
		}, rgb(st.Background))
	}

	p.text(cardMargin+30, cardBottom-80, 32, layout.FontBold, canvas.Hex("#AAAAAA"), "MONDAY")
	p.text(cfg.Width-cardMargin-100, cardBottom-80, 32, layout.FontBold, canvas.Hex("#AAAAAA"), "###")

	r.coverTitleWithPill(p, d)
}

// centeredTitleWithHighlight 在卡片内垂直居中（或从变体的 StartY 起）
// 绘制居中标题，并给标题行加半透明底纹；firstLineOnly 为真时只给首行。
func (r *Renderer) centeredTitleWithHighlight(p *painter, d *compose.Deck, cx, cy, ch float64, highlight color.Color, firstLineOnly bool) {
	st := d.Style
	cfg := d.Config
	cl := st.CoverLayout()
	size := d.Cover.FontSize
	lineHeight := size + cl.ExtraLeading

	startY := cl.StartY
	if cl.CenterBlock {
		startY = cy + (ch-float64(len(d.Cover.Lines))*lineHeight)/2
	}

	y := startY
	for i, line := range d.Cover.Lines {
		w := r.TextWidth(line, layout.FontBold, size)
		x := (cfg.Width - w) / 2
		if !firstLineOnly || i == 0 {
			p.fillRect(x+10, y+size-30, w, 30, highlight)
		}
		p.text(x, y, size, layout.FontBold, rgb(st.Text), line)
		y += lineHeight
	}
}
