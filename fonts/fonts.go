// Package fonts 负责字体数据的解析与回退。优先使用调用方指定的字体
// 文件；未指定时在系统字体里探测常见中文字体；全部落空时退回内置的
// Go 字体，保证渲染永远有字体可用（中文字形可能缺失，但不会失败）。
package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 系统中文字体候选，按平台常见度排序。findfont 会在各平台的
// 标准字体目录（含 fc-list 结果）里按文件名匹配。
var (
	regularCandidates = []string{
		"msyh.ttc", "msyh.ttf",
		"PingFang.ttc",
		"NotoSansCJK-Regular.ttc", "NotoSansCJKsc-Regular.otf", "NotoSansSC-Regular.otf",
		"SourceHanSansSC-Regular.otf",
		"wqy-microhei.ttc",
		"DroidSansFallbackFull.ttf",
	}
	boldCandidates = []string{
		"msyhbd.ttc", "msyhbd.ttf",
		"PingFang.ttc",
		"NotoSansCJK-Bold.ttc", "NotoSansCJKsc-Bold.otf", "NotoSansSC-Bold.otf",
		"SourceHanSansSC-Bold.otf",
		"simhei.ttf",
		"wqy-microhei.ttc",
	}
)

// Resolve 读取调用方显式指定的字体文件。
func Resolve(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 为空", path)
	}
	return data, nil
}

// Regular 返回正文字体数据：先探测系统中文字体，再退回内置字体。
func Regular() []byte { return discover(regularCandidates, goregular.TTF) }

// Bold 返回加粗字体数据，回退链与 Regular 相同。
func Bold() []byte { return discover(boldCandidates, gobold.TTF) }

func discover(candidates []string, fallback []byte) []byte {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			continue
		}
		return data
	}
	return fallback
}
