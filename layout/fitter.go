package layout

import "strings"

// 本文件实现封面标题的两种取行模式与自适应字号搜索。
// 两种模式由调用方显式选择（手动分行 / 自动换行），引擎不再靠启发式
// 猜测作者意图；见 TitleMode。

// fitStep 是字号搜索的步长。
const fitStep = 5

// manualFallbackRunes 是标题完全不可用时的截断兜底长度。
const manualFallbackRunes = 15

// manualToleranceRunes 是手动分行可接受性校验允许超出预算的字符数。
const manualToleranceRunes = 3

// TitleMode 标识封面标题的取行方式。
type TitleMode int

const (
	// TitleManual 信任调用方给出的换行，逐行原样使用。
	TitleManual TitleMode = iota
	// TitleAutoWrap 忽略已有换行，按每行字符预算重新贪心分行。
	TitleAutoWrap
)

// NormalizeTitle 把字面量 "\n" 转义序列还原为真实换行。
// 上游（AI 产出或配置文件）常以转义形式携带换行意图。
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(title, `\n`, "\n")
}

// TitleLines 按指定模式把标题拆成封面行。两种模式都保证至少返回一个
// 非空行（空标题时返回截断兜底），行数不超过 maxLines。
func TitleLines(title string, mode TitleMode, runesPerLine, maxLines int) []string {
	if mode == TitleAutoWrap {
		return autoWrapTitle(title, runesPerLine, maxLines)
	}
	return manualTitleLines(title, maxLines)
}

// ManualAcceptable 判断标题自带的分行是否可直接信任：存在多行，且每个
// 非空行长度不超过预算加上小容差。调用方据此在两种模式间选择。
func ManualAcceptable(title string, runesPerLine int) bool {
	lines := strings.Split(title, "\n")
	if len(lines) < 2 {
		return false
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len([]rune(line)) > runesPerLine+manualToleranceRunes {
			return false
		}
	}
	return true
}

// manualTitleLines 信任调用方分行：去掉空行与首尾空白后逐行返回。
func manualTitleLines(title string, maxLines int) []string {
	var lines []string
	for _, line := range strings.Split(title, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxLines {
			break
		}
	}
	if len(lines) == 0 {
		return []string{truncateRunes(title, manualFallbackRunes)}
	}
	return lines
}

// autoWrapTitle 按每行字符预算对标题重新贪心分行。英文单词作为整体参与
// 分配，最后一行吸收全部剩余内容（不产生第 maxLines+1 行）。
func autoWrapTitle(title string, runesPerLine, maxLines int) []string {
	flat := strings.ReplaceAll(title, "\n", "")
	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}

	for _, token := range Tokenize(flat) {
		if strings.TrimSpace(token) == "" {
			continue
		}
		n := len([]rune(token))
		if lineLen+n <= runesPerLine || line.Len() == 0 || len(lines) >= maxLines-1 {
			line.WriteString(token)
			lineLen += n
			continue
		}
		flush()
		line.WriteString(token)
		lineLen = n
	}
	flush()

	if len(lines) == 0 {
		return []string{truncateRunes(title, manualFallbackRunes)}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// FitTitleSize 在 [min, base] 的步进区间内搜索能令所有行宽都不超过
// maxWidth 的最大字号；全部失败时返回 min（超宽被接受，不再继续缩小）。
func FitTitleSize(lines []string, m Measurer, class FontClass, base, min, maxWidth float64) float64 {
	for size := base; size >= min; size -= fitStep {
		if allLinesFit(lines, m, class, size, maxWidth) {
			return size
		}
	}
	return min
}

func allLinesFit(lines []string, m Measurer, class FontClass, size, maxWidth float64) bool {
	for _, line := range lines {
		if measure(m, line, class, size) > maxWidth {
			return false
		}
	}
	return true
}

func truncateRunes(s string, n int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", ""))
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
