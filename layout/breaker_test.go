package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// breakText 是测试辅助：按估宽测量器换行。
func breakText(text string, size, maxWidth float64) []string {
	return BreakLines(Tokenize(text), HeuristicMeasurer{}, FontRegular, size, maxWidth)
}

// 无空白文本换行后重新拼接必须还原输入（无损回流）。
func TestBreakLinesLosslessReflow(t *testing.T) {
	text := "微服务的可观测性建设需要日志指标与链路追踪三者互相配合才能定位问题"
	lines := breakText(text, 10, 100)
	if got := strings.Join(lines, ""); got != text {
		t.Fatalf("换行后拼接与输入不符:\ngot=%q\nwant=%q", got, text)
	}
	if len(lines) < 2 {
		t.Fatalf("预期发生换行, lines=%v", lines)
	}
}

// 每行宽度不超过预算；超出者只能是孤行标点追加或单 token 超宽行。
func TestBreakLinesWidthBound(t *testing.T) {
	const size, maxWidth = 10.0, 100.0
	text := "分布式系统中的一致性协议，例如 Raft 与 Paxos，都依赖多数派确认。"
	for _, line := range breakText(text, size, maxWidth) {
		w := HeuristicWidth(line, size)
		if w <= maxWidth {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(line)
		singleToken := len(Tokenize(line)) == 1
		if !singleToken && !strings.ContainsRune(orphanPunctuation, last) {
			t.Errorf("行 %q 宽 %.0f 超出预算且非孤行标点/超宽 token", line, w)
		}
	}
}

// 放不下的句末标点要追加到当前行，行首永不出现孤立标点。
func TestBreakLinesOrphanPunctuationAppended(t *testing.T) {
	// 5 个汉字恰好占满预算，句号放不下但必须跟在行尾
	lines := breakText("这是一句话。", 10, 50)
	if len(lines) != 1 {
		t.Fatalf("句号应追加而不是另起一行: %v", lines)
	}
	if !strings.HasSuffix(lines[0], "。") {
		t.Fatalf("行尾缺少句号: %q", lines[0])
	}
	for _, line := range lines {
		r, _ := utf8.DecodeRuneInString(line)
		if strings.ContainsRune(orphanPunctuation, r) {
			t.Errorf("行首出现孤立标点: %q", line)
		}
	}
}

// 孤行标点自身过宽时不享受追加豁免。
func TestBreakLinesOrphanTooWideBreaksNormally(t *testing.T) {
	// 字号 70 使句号宽度达到 70，超过 60 的豁免阈值
	lines := breakText("好好。", 70, 140)
	if len(lines) != 2 {
		t.Fatalf("超宽标点应正常换行: %v", lines)
	}
	if lines[1] != "。" {
		t.Fatalf("第二行应为句号: %v", lines)
	}
}

// 换行点处的空白被丢弃，行首行尾不出现空格。
func TestBreakLinesDropsWhitespaceAtBreak(t *testing.T) {
	lines := breakText("hello world again", 10, 55)
	if len(lines) != 3 {
		t.Fatalf("预期 3 行: %v", lines)
	}
	for _, line := range lines {
		if line != strings.TrimSpace(line) {
			t.Errorf("行首尾残留空白: %q", line)
		}
	}
	if got := strings.Join(lines, ""); got != "helloworldagain" {
		t.Fatalf("除空白外内容不得丢失: %q", got)
	}
}

// 单个超宽 token 原样输出为一行，不拆分。
func TestBreakLinesOverwideTokenKept(t *testing.T) {
	lines := breakText("短 verylongidentifier 短", 10, 80)
	found := false
	for _, line := range lines {
		if line == "verylongidentifier" {
			found = true
		}
	}
	if !found {
		t.Fatalf("超宽 token 应独占一行且不拆分: %v", lines)
	}
}

// 未注入测量器时退回估宽，不会崩溃。
func TestBreakLinesNilMeasurer(t *testing.T) {
	lines := BreakLines(Tokenize("你好世界"), nil, FontRegular, 10, 20)
	if len(lines) != 2 {
		t.Fatalf("估宽兜底换行结果不符: %v", lines)
	}
}

func TestBreakLinesEmptyInput(t *testing.T) {
	if lines := breakText("", 10, 100); len(lines) != 0 {
		t.Fatalf("空输入应返回零行: %v", lines)
	}
}
