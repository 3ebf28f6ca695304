package layout

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeMergesASCIIWordRuns(t *testing.T) {
	got := Tokenize("Go-1.21_rc测试")
	want := []string{"Go-1.21_rc", "测", "试"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("分词结果不符: got=%v want=%v", got, want)
	}
}

func TestTokenizeCJKPerRune(t *testing.T) {
	got := Tokenize("红警开发")
	if len(got) != 4 {
		t.Fatalf("CJK 应逐字成元: %v", got)
	}
}

func TestTokenizeKeepsWhitespace(t *testing.T) {
	got := Tokenize("a b")
	want := []string{"a", " ", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("空白应保留为独立单元: got=%v want=%v", got, want)
	}
}

func TestTokenizeFullWidthPunctSeparate(t *testing.T) {
	got := Tokenize("好。")
	want := []string{"好", "。"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("全角标点应独立成元: got=%v want=%v", got, want)
	}
}

// 分词是无损的：重新拼接必须还原输入。
func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"微服务架构下的 gRPC 实践（第2篇）：超时、重试与限流。",
		"版本 v1.2.3-beta_4 发布",
	}
	for _, in := range inputs {
		if got := strings.Join(Tokenize(in), ""); got != in {
			t.Errorf("分词后拼接与输入不符: got=%q want=%q", got, in)
		}
	}
}
