package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/redpaper/compose"
	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/style"
)

// drawPageChrome 绘制正文页的背景与卡片装饰。卡片几何来自配置，
// 装饰按版式变体区分；所有变体共用同一套文本区域。
func (r *Renderer) drawPageChrome(p *painter, d *compose.Deck) {
	st := d.Style
	cfg := d.Config
	p.fillRect(0, 0, cfg.Width, cfg.Height, rgb(st.Background))

	x, y := cfg.CardMarginOuter, cfg.CardTop
	w, h := cfg.CardWidth(), cfg.CardHeight()

	switch st.Variant {
	case style.VariantCard:
		if st.Shadow != nil {
			p.fillRoundedRect(x+15, y+15, w, h, 30, rgb(*st.Shadow))
		}
		p.fillRoundedRect(x, y, w, h, 30, rgb(st.Card))
	case style.VariantCardOutline:
		p.fillRoundedRect(x, y, w, h, 20, rgb(st.Card))
		p.strokeRoundedRect(x, y, w, h, 20, 2, rgb(st.Accent))
	case style.VariantMagazine:
		p.fillRect(x, y, w, h, canvas.White)
		p.strokeRect(x, y, w, h, 4, canvas.Black)
	case style.VariantFlat, style.VariantQuote:
		// 浅底配色：白卡加一圈浅灰描边，避免卡片与背景融为一体
		p.fillRoundedRect(x, y, w, h, 30, canvas.White)
		p.strokeRoundedRect(x, y, w, h, 30, 2, canvas.Hex("#E0E0E0"))
	default:
		p.fillRoundedRect(x, y, w, h, 30, rgb(st.Card))
	}
}

// drawPageHeader 在卡片上方绘制页眉。
func (r *Renderer) drawPageHeader(p *painter, d *compose.Deck) {
	if d.Header == "" {
		return
	}
	p.text(d.Config.CardMarginOuter, 60, d.Config.HeaderFontSize, layout.FontBold, rgb(d.Style.Header), d.Header)
}

// drawPageLines 绘制一页内已定位的全部文本行。
func (r *Renderer) drawPageLines(p *painter, d *compose.Deck, page compose.Page) {
	for _, pl := range page.Lines {
		if pl.Line.Content == "" {
			continue
		}
		class := layout.FontRegular
		col := bodyTextColor(d.Style)
		if pl.Line.Kind == layout.LineTitle {
			class = layout.FontBold
			col = headingTextColor(d.Style)
		}
		p.text(pl.X, pl.Y, pl.Line.FontSize, class, col, pl.Line.Content)
	}
}

// bodyTextColor 返回正文行颜色：深色卡片用浅灰，纯黑主题保持纯黑，
// 其余统一压到深灰以保证可读性。
func bodyTextColor(st style.Descriptor) color.Color {
	if st.Variant == style.VariantCardOutline {
		return canvas.Hex("#DDDDDD")
	}
	if st.Text == (style.RGB{}) {
		return canvas.Black
	}
	return canvas.Hex("#333333")
}

// headingTextColor 返回小节标题颜色。
func headingTextColor(st style.Descriptor) color.Color {
	if st.Variant == style.VariantCardOutline {
		return rgb(st.Accent)
	}
	return rgb(st.Text)
}
