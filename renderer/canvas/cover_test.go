package canvasrenderer

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestPillBehindLine(t *testing.T) {
	cases := []struct {
		index, total int
		want         bool
	}{
		{0, 1, true},  // 单行标题也垫底
		{0, 2, false}, // 多行首行保持素色
		{1, 2, true},
		{0, 3, false},
		{1, 3, true},
		{2, 3, true},
	}
	for _, c := range cases {
		if got := pillBehindLine(c.index, c.total); got != c.want {
			t.Errorf("pillBehindLine(%d, %d)=%v want=%v", c.index, c.total, got, c.want)
		}
	}
}

// sampleAt 解码 PNG 并取像素的 8 位三通道值。
func sampleAt(t *testing.T, data []byte, x, y int) (uint8, uint8, uint8) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("封面不是合法 PNG: %v", err)
	}
	if !image.Pt(x, y).In(img.Bounds()) {
		t.Fatalf("采样点 (%d,%d) 超出图像范围 %v", x, y, img.Bounds())
	}
	r16, g16, b16, _ := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

// 票据与引言变体的封面标题续行后方有强调色药丸底，首行没有。
func TestRenderCoverTitlePill(t *testing.T) {
	r := NewRenderer(Options{})
	for _, id := range []string{"quote", "ticket"} {
		deck := testDeck(t, id)
		if len(deck.Cover.Lines) != 2 {
			t.Fatalf("%s: 测试标题应组版为两行: %v", id, deck.Cover.Lines)
		}
		data, err := r.RenderCover(deck)
		if err != nil {
			t.Fatalf("%s: 渲染封面失败: %v", id, err)
		}

		st := deck.Style
		cl := st.CoverLayout()
		size := deck.Cover.FontSize
		lineHeight := size + cl.ExtraLeading
		// 药丸自行顶 +10 起、高 size+10，左缘在 MarginX-10；
		// 采样点取药丸左侧内衬的垂直中点，避开文字与圆角。
		x := int(cl.MarginX - 5)
		firstMid := int(cl.StartY + 10 + (size+10)/2)
		secondMid := int(cl.StartY + lineHeight + 10 + (size+10)/2)

		pr, pg, pb := sampleAt(t, data, x, secondMid)
		if !near(pr, st.Accent.R) || !near(pg, st.Accent.G) || !near(pb, st.Accent.B) {
			t.Errorf("%s: 续行药丸处应为强调色 #%02X%02X%02X, got=#%02X%02X%02X",
				id, st.Accent.R, st.Accent.G, st.Accent.B, pr, pg, pb)
		}
		fr, fg, fb := sampleAt(t, data, x, firstMid)
		if !near(fr, st.Card.R) || !near(fg, st.Card.G) || !near(fb, st.Card.B) {
			t.Errorf("%s: 首行同位置应为卡片底色 #%02X%02X%02X, got=#%02X%02X%02X",
				id, st.Card.R, st.Card.G, st.Card.B, fr, fg, fb)
		}
	}
}
