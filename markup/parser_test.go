package markup

import (
	"reflect"
	"testing"
)

func TestParseClassifiesLines(t *testing.T) {
	body := "# 今日要点\n正文第一段\n1. 编号小节\n2024 年不是标题"
	got := Parse(body)
	want := []Block{
		{Kind: KindHeading, Text: "今日要点"},
		{Kind: KindParagraph, Text: "正文第一段"},
		{Kind: KindHeading, Text: "1. 编号小节"},
		{Kind: KindParagraph, Text: "2024 年不是标题"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("解析结果不符:\ngot=%v\nwant=%v", got, want)
	}
}

// "数字." 要在前 3 个字符内出现才算编号标题。
func TestParseNumberedHeadingWindow(t *testing.T) {
	got := Parse("1.开头\n12. 两位数\n1234. 太远")
	if got[0].Kind != KindHeading || got[1].Kind != KindHeading {
		t.Fatalf("编号标题识别失败: %v", got)
	}
	if got[2].Kind != KindParagraph {
		t.Fatalf("点号超出窗口仍被当作标题: %v", got[2])
	}
}

func TestParseSpacers(t *testing.T) {
	got := Parse("甲\n\n乙")
	want := []Block{
		{Kind: KindParagraph, Text: "甲"},
		{Kind: KindSpacer},
		{Kind: KindParagraph, Text: "乙"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("单空行应产出一个空行块:\ngot=%v\nwant=%v", got, want)
	}

	got = Parse("甲\n\n\n乙")
	spacers := 0
	for _, b := range got {
		if b.Kind == KindSpacer {
			spacers++
		}
	}
	if spacers != 2 {
		t.Fatalf("两个连续空行应产出两个空行块: %v", got)
	}
}

// 仅含空白的行与真正的空行等价。
func TestParseWhitespaceOnlyLine(t *testing.T) {
	got := Parse("甲\n   \n乙")
	if len(got) != 3 || got[1].Kind != KindSpacer {
		t.Fatalf("空白行应归类为空行块: %v", got)
	}
}

func TestParseStripsHeadingMarkers(t *testing.T) {
	got := Parse("## 二级标记也剥掉")
	if len(got) != 1 || got[0].Kind != KindHeading || got[0].Text != "二级标记也剥掉" {
		t.Fatalf("标题记号未剥除: %v", got)
	}
}

func TestParseEmptyBody(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("空正文应返回零块: %v", got)
	}
}

// 语法路径与逐行降级路径对常规输入给出一致结果。
func TestParseFallbackConsistency(t *testing.T) {
	body := "# 标题\n正文\n\n1. 小节\n继续"
	if got, fallback := Parse(body), parseByLines(body); !reflect.DeepEqual(got, fallback) {
		t.Fatalf("两条解析路径结果不一致:\n语法=%v\n逐行=%v", got, fallback)
	}
}

func TestIsNumberedHeading(t *testing.T) {
	cases := map[string]bool{
		"1. 要点":   true,
		"9.总结":    true,
		"12. 目录":  true,
		"2024 回顾": false,
		"非数字开头":   false,
		"":        false,
	}
	for in, want := range cases {
		if got := isNumberedHeading(in); got != want {
			t.Errorf("isNumberedHeading(%q)=%v want=%v", in, got, want)
		}
	}
}
