package layout

import "strings"

// 孤行标点：闭合括号与句末标点（ASCII 与全角两套），不允许出现在行首。
const orphanPunctuation = ".,;!?)]}。，；！？、）】"

// orphanWidthLimit 是孤行标点允许超出行宽预算的宽度上限（px）。
const orphanWidthLimit = 60

// BreakLines 对 token 序列做贪心换行，返回覆盖整个输入的行列表。
// 规则：
//   - 累计宽度不超过 maxWidth 时直接追加；
//   - 放不下的孤行标点且自身宽度小于阈值时仍追加到当前行（行首永不出现
//     孤立的闭合标点）；
//   - 放不下的纯空白 token 直接丢弃（行首永不出现空格）；
//   - 其余情况收束当前行，token 成为新行的第一个单元。
//
// 单个 token 宽于 maxWidth 时作为超宽行原样输出，不拆分也不丢弃。
func BreakLines(tokens []string, m Measurer, class FontClass, size, maxWidth float64) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0.0

	for _, token := range tokens {
		w := measure(m, token, class, size)
		if lineWidth+w <= maxWidth {
			line.WriteString(token)
			lineWidth += w
			continue
		}

		switch {
		case isOrphanPunct(token) && w < orphanWidthLimit:
			line.WriteString(token)
			lineWidth += w
		case strings.TrimSpace(token) == "":
			// 行尾空白在换行处静默吞掉
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(token)
			lineWidth = w
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// measure 优先使用注入的测量后端，缺失时退回字符数估宽。
func measure(m Measurer, text string, class FontClass, size float64) float64 {
	if m == nil {
		return HeuristicWidth(text, size)
	}
	return m.TextWidth(text, class, size)
}

func isOrphanPunct(token string) bool {
	runes := []rune(token)
	return len(runes) == 1 && strings.ContainsRune(orphanPunctuation, runes[0])
}
