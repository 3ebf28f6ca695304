// Package canvasrenderer 基于 github.com/tdewolff/canvas 渲染组版结果。
// 画布单位与像素一一对应：构建时按 1 单位 = 1 像素布置内容，栅格化
// 使用 DPMM(1.0)，因此输出图像的像素尺寸严格等于配置的画布尺寸。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/redpaper/compose"
	"github.com/ByLCY/redpaper/fonts"
	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/renderer"
)

// pxToPt 把像素字号换算为字体系统使用的 pt。画布单位按毫米处理，
// 1 单位即 1 像素，故换算系数与 mm→pt 相同。
const pxToPt = 72.0 / 25.4

// Options 配置 canvas 渲染器。字体路径为空时自动探测系统中文字体，
// 探测失败退回内置字体；任何字体问题都不会使渲染失败。
type Options struct {
	RegularFontPath string
	BoldFontPath    string
}

// Renderer 通过 tdewolff/canvas 绘制封面与正文页，同时充当排版阶段的
// 文本测量器。字体族按字重懒加载并缓存，测量与渲染共享同一套字体。
type Renderer struct {
	opts Options

	fontMu   sync.Mutex
	families map[layout.FontClass]*canvas.FontFamily
	failed   map[layout.FontClass]bool
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// NewRenderer 创建渲染器。
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts:     opts,
		families: map[layout.FontClass]*canvas.FontFamily{},
		failed:   map[layout.FontClass]bool{},
	}
}

// TextWidth 实现 layout.Measurer：返回文本按给定字重与像素字号渲染后
// 的宽度（像素）。字体不可用时退回 "字符数 × 字号" 的保守估计。
func (r *Renderer) TextWidth(text string, class layout.FontClass, size float64) float64 {
	if text == "" {
		return 0
	}
	family := r.family(class)
	if family == nil {
		return layout.HeuristicWidth(text, size)
	}
	face := family.Face(size*pxToPt, canvas.Black, styleFor(class), canvas.FontNormal)
	w := face.TextWidth(text)
	if w <= 0 {
		return layout.HeuristicWidth(text, size)
	}
	return w
}

// RenderCover 渲染封面：先铺底色，再按样式变体绘制装饰与标题，
// 全部内容在内存中合成后一次性编码为 PNG。
func (r *Renderer) RenderCover(deck *compose.Deck) ([]byte, error) {
	if deck == nil {
		return nil, fmt.Errorf("组版结果为空")
	}
	c := canvas.New(deck.Config.Width, deck.Config.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，与组版坐标一致

	p := &painter{ctx: ctx, r: r}
	p.fillRect(0, 0, deck.Config.Width, deck.Config.Height, rgb(deck.Style.Background))

	draw, ok := coverPainters[deck.Style.Variant]
	if !ok {
		return nil, fmt.Errorf("样式 %s 的版式变体 %q 没有封面绘制例程", deck.Style.ID, deck.Style.Variant)
	}
	draw(r, p, deck)
	return encodePNG(c)
}

// RenderPage 渲染第 index 页正文（index 从 0 起）。
func (r *Renderer) RenderPage(deck *compose.Deck, index int) ([]byte, error) {
	if deck == nil {
		return nil, fmt.Errorf("组版结果为空")
	}
	if index < 0 || index >= len(deck.Pages) {
		return nil, fmt.Errorf("页索引 %d 超出范围（共 %d 页）", index, len(deck.Pages))
	}
	c := canvas.New(deck.Config.Width, deck.Config.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	p := &painter{ctx: ctx, r: r}
	r.drawPageChrome(p, deck)
	r.drawPageHeader(p, deck)
	r.drawPageLines(p, deck, deck.Pages[index])
	return encodePNG(c)
}

// family 懒加载并缓存指定字重的字体族。加载失败只记录一次，
// 后续测量走估宽、绘制跳过，不向调用方传播错误。
func (r *Renderer) family(class layout.FontClass) *canvas.FontFamily {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if f, ok := r.families[class]; ok {
		return f
	}
	if r.failed[class] {
		return nil
	}

	data := r.fontBytes(class)
	family := canvas.NewFontFamily(familyName(class))
	if err := family.LoadFont(data, 0, styleFor(class)); err != nil {
		r.failed[class] = true
		return nil
	}
	r.families[class] = family
	return family
}

// fontBytes 按 "显式路径 → 系统探测 → 内置字体" 的顺序解析字体数据。
func (r *Renderer) fontBytes(class layout.FontClass) []byte {
	path := r.opts.RegularFontPath
	if class == layout.FontBold {
		path = r.opts.BoldFontPath
	}
	if path != "" {
		if data, err := fonts.Resolve(path); err == nil {
			return data
		}
	}
	if class == layout.FontBold {
		return fonts.Bold()
	}
	return fonts.Regular()
}

// face 返回指定字重、像素字号与颜色的字体面；字体不可用时返回 nil。
func (r *Renderer) face(class layout.FontClass, size float64, col color.Color) *canvas.FontFace {
	family := r.family(class)
	if family == nil {
		return nil
	}
	return family.Face(size*pxToPt, col, styleFor(class), canvas.FontNormal)
}

func styleFor(class layout.FontClass) canvas.FontStyle {
	if class == layout.FontBold {
		return canvas.FontBold
	}
	return canvas.FontRegular
}

func familyName(class layout.FontClass) string {
	if class == layout.FontBold {
		return "redpaper-bold"
	}
	return "redpaper-regular"
}

// encodePNG 栅格化整张画布并编码。DPMM(1.0) 使像素尺寸等于画布尺寸。
func encodePNG(c *canvas.Canvas) ([]byte, error) {
	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}
