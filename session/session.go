// Package session 编排一次完整的图文生成：清洗输入、组版、渲染、落盘
// 与归档。渲染全部在内存中完成后才写文件，目录里不会出现半成品图片。
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ByLCY/redpaper/compose"
	"github.com/ByLCY/redpaper/config"
	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/renderer"
	"github.com/ByLCY/redpaper/style"
)

// CoverFilename 为封面文件名；正文页为 02_body_<页号>.png（页号从 1 起）。
const CoverFilename = "01_cover.png"

// smartWrapRunes 是判断手动分行可信度时使用的每行字符预算。
const smartWrapRunes = 7

// emojiPattern 覆盖 BMP 之外的全部码点与常见符号区（emoji、变体选择符、
// 零宽连接符），这些字形多数中文字体无法渲染。
var emojiPattern = regexp.MustCompile(`[\x{10000}-\x{10FFFF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{FE00}-\x{FE0F}\x{2300}-\x{23FF}\x{200D}\x{2B50}]`)

// unsafePathPattern 匹配不允许出现在归档目录名里的字符。
var unsafePathPattern = regexp.MustCompile(`[\\/:*?"<>|]`)

// Sanitize 移除 emoji 与不可渲染符号并修剪首尾空白。段内换行保留。
func Sanitize(text string) string {
	return strings.TrimSpace(emojiPattern.ReplaceAllString(text, ""))
}

// Session 承载一次生成任务的全部依赖。渲染器同时充当文本测量器，
// 组版与渲染共享同一套字体度量。
type Session struct {
	cfg      config.Config
	registry *style.Registry
	renderer renderer.Renderer
	measurer layout.Measurer
	logger   *log.Logger
}

// Result 描述一次生成的产物。
type Result struct {
	StyleID    string
	CoverPath  string
	PagePaths  []string
	ArchiveDir string
}

// New 创建生成会话。
func New(cfg config.Config, reg *style.Registry, r renderer.Renderer, m layout.Measurer, logger *log.Logger) *Session {
	return &Session{cfg: cfg, registry: reg, renderer: r, measurer: m, logger: logger}
}

// Generate 生成封面与全部正文页并写入产物目录。产物目录会先被清空
// 重建；配置了归档目录时，生成结束后复制一份带日期前缀的副本。
func (s *Session) Generate(title, body string) (*Result, error) {
	st := s.registry.Lookup(s.cfg.Template)
	if st.ID != s.cfg.Template {
		s.logger.Warn("模板未注册，回退默认样式", "template", s.cfg.Template, "fallback", st.ID)
	}

	title = Sanitize(layout.NormalizeTitle(title))
	body = Sanitize(body)

	mode := layout.TitleAutoWrap
	if strings.Contains(title, "\n") && layout.ManualAcceptable(title, smartWrapRunes) {
		mode = layout.TitleManual
	}

	deck := compose.Build(title, body, mode, st, s.cfg.Layout, Sanitize(s.cfg.Header), Sanitize(s.cfg.Footer), s.measurer)
	s.logger.Info("组版完成", "style", st.ID, "pages", len(deck.Pages))

	if err := resetDir(s.cfg.OutputDir); err != nil {
		return nil, err
	}

	result := &Result{StyleID: st.ID}

	coverPNG, err := s.renderer.RenderCover(deck)
	if err != nil {
		return nil, fmt.Errorf("渲染封面失败: %w", err)
	}
	result.CoverPath = filepath.Join(s.cfg.OutputDir, CoverFilename)
	if err := os.WriteFile(result.CoverPath, coverPNG, 0o644); err != nil {
		return nil, fmt.Errorf("写入封面失败: %w", err)
	}
	s.logger.Info("封面已生成", "file", result.CoverPath)

	for i := range deck.Pages {
		pagePNG, err := s.renderer.RenderPage(deck, i)
		if err != nil {
			return nil, fmt.Errorf("渲染正文页 %d 失败: %w", i+1, err)
		}
		path := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("02_body_%d.png", deck.Pages[i].Number))
		if err := os.WriteFile(path, pagePNG, 0o644); err != nil {
			return nil, fmt.Errorf("写入正文页 %d 失败: %w", i+1, err)
		}
		result.PagePaths = append(result.PagePaths, path)
		s.logger.Info("正文页已生成", "page", deck.Pages[i].Number, "file", path)
	}

	if s.cfg.ArchiveDir != "" {
		dir, err := s.archive(title, body, result)
		if err != nil {
			return nil, err
		}
		result.ArchiveDir = dir
	}
	return result, nil
}

// resetDir 清空并重建产物目录。目录内容会被整体删除。
func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("清空产物目录 %s 失败: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建产物目录 %s 失败: %w", dir, err)
	}
	return nil
}
