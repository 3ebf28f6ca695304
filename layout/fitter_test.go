package layout

import (
	"reflect"
	"testing"
)

func TestNormalizeTitle(t *testing.T) {
	if got := NormalizeTitle(`红警\n开发记录`); got != "红警\n开发记录" {
		t.Fatalf("字面量换行未还原: %q", got)
	}
}

// 手动分行可信时必须逐行原样使用，不得重排。
func TestTitleLinesManualTrust(t *testing.T) {
	title := "红警\n开发记录"
	if !ManualAcceptable(title, 7) {
		t.Fatalf("%q 的手动分行应被接受", title)
	}
	got := TitleLines(title, TitleManual, 7, 4)
	want := []string{"红警", "开发记录"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("手动分行被改写: got=%v want=%v", got, want)
	}
}

func TestManualAcceptableRejectsSingleLine(t *testing.T) {
	if ManualAcceptable("没有换行的标题", 7) {
		t.Fatal("单行标题不应按手动分行处理")
	}
}

// 某行超出预算加容差时整体拒绝手动分行。
func TestManualAcceptableTolerance(t *testing.T) {
	if !ManualAcceptable("一二三四五六七八九十\n短", 7) {
		t.Fatal("超出预算 3 字以内应在容差内")
	}
	if ManualAcceptable("一二三四五六七八九十一\n短", 7) {
		t.Fatal("超出预算 4 字应被拒绝")
	}
}

// 手动分行全为空时退回截断兜底。
func TestTitleLinesManualFallbackTruncate(t *testing.T) {
	got := TitleLines("   \n\t\n ", TitleManual, 7, 4)
	if len(got) != 1 {
		t.Fatalf("兜底应恰好产出一行: %v", got)
	}
	if n := len([]rune(got[0])); n > manualFallbackRunes {
		t.Fatalf("兜底行超出截断上限 %d: %q", manualFallbackRunes, got[0])
	}
}

// 手动模式行数超过上限时截断到 maxLines。
func TestTitleLinesManualCapsMaxLines(t *testing.T) {
	got := TitleLines("一\n二\n三\n四\n五", TitleManual, 7, 4)
	if len(got) != 4 {
		t.Fatalf("手动分行应截断到 4 行: %v", got)
	}
}

// 自动换行按字符预算贪心分行，最后一行吸收剩余内容。
func TestTitleLinesAutoWrap(t *testing.T) {
	got := TitleLines("人工智能周报深度解读", TitleAutoWrap, 4, 3)
	want := []string{"人工智能", "周报深度", "解读"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("自动换行结果不符: got=%v want=%v", got, want)
	}
}

// 自动换行不拆英文单词。
func TestTitleLinesAutoWrapKeepsWords(t *testing.T) {
	got := TitleLines("Go语言实战指南", TitleAutoWrap, 4, 3)
	want := []string{"Go语言", "实战指南"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("英文单词被拆开: got=%v want=%v", got, want)
	}
}

// 自动换行最多产出 maxLines 行，超出部分并入末行而不是溢出。
func TestTitleLinesAutoWrapMaxLines(t *testing.T) {
	got := TitleLines("一二三四五六七八九十一二三四五六", TitleAutoWrap, 4, 3)
	if len(got) != 3 {
		t.Fatalf("行数超出上限: %v", got)
	}
}

// 字号搜索返回能容纳全部行的最大步进字号。
func TestFitTitleSizeStepsDown(t *testing.T) {
	lines := []string{"一二三四五六"}
	got := FitTitleSize(lines, HeuristicMeasurer{}, FontBold, 120, 75, 500)
	if got != 80 {
		t.Fatalf("字号搜索结果不符: got=%.0f want=80", got)
	}
}

// 基准字号已放得下时不缩小。
func TestFitTitleSizeKeepsBase(t *testing.T) {
	got := FitTitleSize([]string{"短标题"}, HeuristicMeasurer{}, FontBold, 120, 75, 1000)
	if got != 120 {
		t.Fatalf("无需缩小时应返回基准字号: got=%.0f", got)
	}
}

// 最小字号仍超宽时接受超宽，返回最小字号而不是继续缩小。
func TestFitTitleSizeFloorsAtMin(t *testing.T) {
	lines := []string{"一二三四五六七八九十一二三四五六七八九十"}
	got := FitTitleSize(lines, HeuristicMeasurer{}, FontBold, 120, 75, 100)
	if got != 75 {
		t.Fatalf("应停在最小字号: got=%.0f", got)
	}
}

// 字号对行宽单调：更大的字号绝不使任何行变窄。
func TestFitMonotonicity(t *testing.T) {
	m := HeuristicMeasurer{}
	line := "排版引擎字号单调性"
	prev := 0.0
	for size := 75.0; size <= 120; size += 5 {
		w := m.TextWidth(line, FontBold, size)
		if w < prev {
			t.Fatalf("字号 %.0f 下行宽 %.0f 小于更小字号的 %.0f", size, w, prev)
		}
		prev = w
	}
}
