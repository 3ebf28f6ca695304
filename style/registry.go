package style

import (
	"fmt"
	"sort"
)

// DefaultID 是未识别模板标识时回退使用的样式。
const DefaultID = "tech_card"

// Registry 按模板标识保存样式描述。查找永不失败：未注册的标识
// 解析为默认样式。
type Registry struct {
	styles map[string]Descriptor
}

// rawStyle 是内置样式表的声明形式，颜色以十六进制文本给出，
// 在注册时统一解析校验。
type rawStyle struct {
	id         string
	background string
	card       string
	text       string
	accent     string
	header     string
	shadow     string // 空串表示无投影
	variant    Variant
}

// builtinStyles 为全部内置模板。配色沿用既有模板，不可随意改动。
var builtinStyles = []rawStyle{
	{"breath", "#F6F7F9", "#F6F7F9", "#333333", "#FF2442", "#666666", "", VariantFlat},
	{"tech_card", "#F0F5FF", "#FFFFFF", "#1E293B", "#2563EB", "#64748B", "#DBEAFE", VariantCard},
	{"receipt", "#0099FF", "#FFFFFF", "#000000", "#FFE66D", "#FFFFFF", "", "receipt-style"},
	{"quote", "#D4F5D4", "#FFFFFF", "#333333", "#FFADD2", "#2E7D32", "", VariantQuote},
	{"cyber", "#0F172A", "#1E293B", "#F1F5F9", "#00E5FF", "#94A3B8", "#000000", VariantCardOutline},
	{"notion", "#F7F7F5", "#FFFFFF", "#37352F", "#E16259", "#787774", "#E0E0E0", VariantCardMinimal},
	{"magazine", "#EAEAEA", "#FFFFFF", "#000000", "#FF4500", "#000000", "#000000", "magazine_layout"},
	{"quote_blue", "#FAF8F5", "#FAF8F5", "#1A56DB", "#1A56DB", "#1A56DB", "", VariantQuote},
	{"sticky", "#FFD966", "#FFFFFF", "#333333", "#FFD966", "#666666", "", VariantStickyNote},
	{"card_blue", "#4285F4", "#FFFFFF", "#000000", "#4285F4", "#4285F4", "", VariantCardStyle},
	{"postit", "#E8F5B4", "#FFE4EC", "#333333", "#C5D99A", "#999999", "#CCCCCC", VariantPostit},
	{"ticket", "#2ECC71", "#FFFFFF", "#000000", "#2ECC71", "#2ECC71", "", VariantTicket},
}

// NewRegistry 创建并装载全部内置样式。内置表在任何构建下都应合法，
// 装载失败属于编程错误，直接 panic。
func NewRegistry() *Registry {
	r := &Registry{styles: map[string]Descriptor{}}
	for _, raw := range builtinStyles {
		if err := r.register(raw); err != nil {
			panic(fmt.Sprintf("内置样式 %s 非法: %v", raw.id, err))
		}
	}
	return r
}

// register 解析并校验一条样式声明。非法颜色与未知变体标签在此拒绝，
// 渲染阶段不再做任何样式校验。
func (r *Registry) register(raw rawStyle) error {
	if raw.id == "" {
		return fmt.Errorf("样式缺少标识")
	}
	variant, ok := normalizeVariant(raw.variant)
	if !ok {
		return fmt.Errorf("未知版式变体 %q", raw.variant)
	}

	d := Descriptor{ID: raw.id, Variant: variant}
	var err error
	if d.Background, err = ParseHex(raw.background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if d.Card, err = ParseHex(raw.card); err != nil {
		return fmt.Errorf("card: %w", err)
	}
	if d.Text, err = ParseHex(raw.text); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if d.Accent, err = ParseHex(raw.accent); err != nil {
		return fmt.Errorf("accent: %w", err)
	}
	if d.Header, err = ParseHex(raw.header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if raw.shadow != "" {
		c, err := ParseHex(raw.shadow)
		if err != nil {
			return fmt.Errorf("shadow: %w", err)
		}
		d.Shadow = &c
	}

	r.styles[d.ID] = d
	return nil
}

// Lookup 返回模板标识对应的样式；未注册的标识回退到默认样式，永不报错。
func (r *Registry) Lookup(id string) Descriptor {
	if d, ok := r.styles[id]; ok {
		return d
	}
	return r.styles[DefaultID]
}

// IDs 返回全部已注册的模板标识（字典序）。
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.styles))
	for id := range r.styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
