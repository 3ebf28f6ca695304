package layout

import "strings"

// Tokenize 将文本拆成换行算法使用的原子单元：
//   - 连续的 ASCII 字母/数字/“-”“_”“.” 合并为一个单元（英文单词、数字、
//     点号标识符不可在中间断开）；
//   - 其余任意字符（含全部 CJK/全角字符）各自成为一个单元，使中文可以
//     逐字换行，符合东亚排版习惯；
//   - 空白字符保留为独立单元，由换行阶段决定丢弃。
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for _, r := range text {
		if isWordRune(r) {
			word.WriteRune(r)
			continue
		}
		flush()
		tokens = append(tokens, string(r))
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	default:
		return false
	}
}
