package renderer

import "github.com/ByLCY/redpaper/compose"

// Renderer 将组版结果输出为最终图像。每次调用返回一张完整图像的
// PNG 字节数据，调用方决定落盘位置；渲染过程不触碰文件系统。
type Renderer interface {
	// RenderCover 渲染封面图。
	RenderCover(deck *compose.Deck) ([]byte, error)
	// RenderPage 渲染第 index 页正文（index 从 0 起）。
	RenderPage(deck *compose.Deck, index int) ([]byte, error)
}
