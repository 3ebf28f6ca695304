// Package style 定义图文模板的样式描述与注册表。
// 每个样式由一套配色（背景/卡片/正文/强调，可选阴影）加一个版式变体标签
// 组成；变体标签决定封面构图与正文卡片装饰的绘制例程。
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB 采用 0-255 的三通道颜色。
type RGB struct {
	R, G, B uint8
}

// ParseHex 解析 6 位十六进制颜色（可带 # 前缀）。
func ParseHex(s string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("颜色值 %q 不是 6 位十六进制", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("颜色值 %q 无法解析: %w", s, err)
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Variant 是版式变体标签，对应一套封面与正文卡片的绘制例程。
type Variant string

// 固定变体集合。注册时校验，渲染阶段可以假定标签一定合法。
const (
	VariantFlat        Variant = "flat"
	VariantCard        Variant = "card"
	VariantCardOutline Variant = "card-outline"
	VariantCardMinimal Variant = "card-minimal"
	VariantMagazine    Variant = "magazine"
	VariantQuote       Variant = "quote-style"
	VariantStickyNote  Variant = "sticky-note"
	VariantCardStyle   Variant = "card-style"
	VariantPostit      Variant = "postit-style"
	VariantTicket      Variant = "ticket-style"
)

// variantAliases 兼容历史样式表里的旧写法，仅在注册时归一化。
var variantAliases = map[Variant]Variant{
	"magazine_layout": VariantMagazine,
	"receipt-style":   VariantTicket,
}

// Variants 按固定顺序返回全部规范变体标签。
func Variants() []Variant {
	return []Variant{
		VariantFlat, VariantCard, VariantCardOutline, VariantCardMinimal,
		VariantMagazine, VariantQuote, VariantStickyNote, VariantCardStyle,
		VariantPostit, VariantTicket,
	}
}

// normalizeVariant 把别名映射到规范标签；未知标签返回 false。
func normalizeVariant(v Variant) (Variant, bool) {
	if canon, ok := variantAliases[v]; ok {
		return canon, true
	}
	for _, known := range Variants() {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Descriptor 是一个已注册样式的完整描述。颜色在注册时完成解析，
// 渲染阶段不再处理十六进制文本。
type Descriptor struct {
	ID         string
	Background RGB
	Card       RGB
	Text       RGB
	Accent     RGB
	Header     RGB
	Shadow     *RGB // 为空表示该样式无投影
	Variant    Variant
}

// CoverLayout 是变体的封面标题排版参数（纯数据，供组版阶段使用）。
type CoverLayout struct {
	// MarginX 为标题左边距；Centered 为真时逐行水平居中，忽略 MarginX。
	MarginX  float64
	Centered bool
	// StartY 为首行纵坐标；CenterBlock 为真时整块标题在卡片区内垂直居中。
	StartY      float64
	CenterBlock bool
	// ExtraLeading 为行高在字号之上的附加量。
	ExtraLeading float64
	// WidthInset 为标题最大行宽相对画布宽度的总收缩量。
	WidthInset float64
	BaseSize   float64
	MinSize    float64
	MaxLines   int
}

// coverLayouts 逐变体给出封面标题几何。数值沿用既有模板的视觉效果。
var coverLayouts = map[Variant]CoverLayout{
	VariantFlat:        {MarginX: 100, StartY: 500, ExtraLeading: 40, WidthInset: 200, BaseSize: 120, MinSize: 75, MaxLines: 4},
	VariantCard:        {Centered: true, CenterBlock: true, ExtraLeading: 50, WidthInset: 260, BaseSize: 130, MinSize: 75, MaxLines: 4},
	VariantCardOutline: {Centered: true, CenterBlock: true, ExtraLeading: 50, WidthInset: 260, BaseSize: 130, MinSize: 75, MaxLines: 4},
	VariantCardMinimal: {Centered: true, StartY: 450, ExtraLeading: 50, WidthInset: 300, BaseSize: 130, MinSize: 75, MaxLines: 4},
	VariantMagazine:    {MarginX: 130, StartY: 400, ExtraLeading: 40, WidthInset: 190, BaseSize: 160, MinSize: 90, MaxLines: 5},
	VariantQuote:       {MarginX: 120, StartY: 400, ExtraLeading: 40, WidthInset: 240, BaseSize: 110, MinSize: 65, MaxLines: 4},
	VariantStickyNote:  {MarginX: 140, StartY: 360, ExtraLeading: 30, WidthInset: 280, BaseSize: 100, MinSize: 65, MaxLines: 4},
	VariantCardStyle:   {MarginX: 160, StartY: 350, ExtraLeading: 40, WidthInset: 320, BaseSize: 110, MinSize: 65, MaxLines: 4},
	VariantPostit:      {MarginX: 140, StartY: 400, ExtraLeading: 40, WidthInset: 280, BaseSize: 100, MinSize: 65, MaxLines: 4},
	VariantTicket:      {MarginX: 160, StartY: 350, ExtraLeading: 40, WidthInset: 320, BaseSize: 110, MinSize: 65, MaxLines: 4},
}

// CoverLayout 返回该样式变体的封面标题几何。
func (d Descriptor) CoverLayout() CoverLayout { return coverLayouts[d.Variant] }
