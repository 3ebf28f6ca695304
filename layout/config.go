package layout

// 本文件定义渲染画布与卡片的几何配置。所有长度单位均为像素（px）。
// 配置在引擎构造时注入，运行期不可变，便于测试时替换尺寸与字号。

// Config 描述一次生成任务使用的画布尺寸、字号与卡片几何。
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	BodyFontSize  float64 `toml:"body_font_size"`
	TitleFontSize float64 `toml:"title_font_size"`
	LineSpacing   float64 `toml:"line_spacing"`
	ParaSpacing   float64 `toml:"para_spacing"`

	// 正文卡片几何：卡片左右外边距、卡片内边距与卡片顶部纵坐标。
	CardMarginOuter  float64 `toml:"card_margin_outer"`
	CardPaddingInner float64 `toml:"card_padding_inner"`
	CardTop          float64 `toml:"card_top"`
	// CardBottomGap 为卡片底边到画布底边的距离。
	CardBottomGap float64 `toml:"card_bottom_gap"`

	HeaderFontSize float64 `toml:"header_font_size"`
	FooterFontSize float64 `toml:"footer_font_size"`
}

// DefaultConfig 返回小红书图文的默认几何：1242×1660 像素画布。
func DefaultConfig() Config {
	return Config{
		Width:            1242,
		Height:           1660,
		BodyFontSize:     48,
		TitleFontSize:    52,
		LineSpacing:      22,
		ParaSpacing:      44,
		CardMarginOuter:  50,
		CardPaddingInner: 50,
		CardTop:          150,
		CardBottomGap:    50,
		HeaderFontSize:   40,
		FooterFontSize:   40,
	}
}

// CardWidth 返回正文卡片宽度。
func (c Config) CardWidth() float64 { return c.Width - 2*c.CardMarginOuter }

// CardHeight 返回正文卡片高度。
func (c Config) CardHeight() float64 { return c.Height - c.CardTop - c.CardBottomGap }

// ContentWidth 返回卡片内可排版文本的最大行宽。
func (c Config) ContentWidth() float64 {
	return c.Width - 2*c.CardMarginOuter - 2*c.CardPaddingInner
}

// ContentTop 返回卡片内第一行文本的纵坐标。
func (c Config) ContentTop() float64 { return c.CardTop + c.CardPaddingInner }

// ContentBottom 返回卡片内可用区域的底部边界，超过该值必须换页。
func (c Config) ContentBottom() float64 {
	return c.CardTop + c.CardHeight() - c.CardPaddingInner
}

// TitleLineHeight 返回小节标题行占用的纵向高度。
func (c Config) TitleLineHeight() float64 { return c.TitleFontSize + c.LineSpacing + 10 }

// BodyLineHeight 返回正文行占用的纵向高度。
func (c Config) BodyLineHeight() float64 { return c.BodyFontSize + c.LineSpacing }

// SpacerHeight 返回段落间空行占用的纵向高度。
func (c Config) SpacerHeight() float64 { return c.ParaSpacing }
