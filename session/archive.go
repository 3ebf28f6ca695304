package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// archive 在归档目录下创建 "日期_标题" 子目录，保存本次输入文本、
// 运行配置的 TOML 快照与全部产物图片。同名归档会被覆盖。
func (s *Session) archive(title, body string, result *Result) (string, error) {
	name := fmt.Sprintf("%s_%s", time.Now().Format("2006-01-02"), safeDirName(title))
	dir := filepath.Join(s.cfg.ArchiveDir, name)

	if err := resetDir(dir); err != nil {
		return "", err
	}

	content := fmt.Sprintf("标题: %s\n模板: %s\n\n%s\n", strings.ReplaceAll(title, "\n", " "), result.StyleID, body)
	if err := os.WriteFile(filepath.Join(dir, "内容.txt"), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("写入归档文本失败: %w", err)
	}

	// 快照记录实际生效的模板（可能经过默认回退），其余字段照抄运行配置。
	snap := s.cfg
	snap.Template = result.StyleID
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
		return "", fmt.Errorf("编码配置快照失败: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "配置.toml"), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("写入配置快照失败: %w", err)
	}

	imagesDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return "", fmt.Errorf("创建归档图片目录失败: %w", err)
	}
	for _, src := range append([]string{result.CoverPath}, result.PagePaths...) {
		if err := copyFile(src, filepath.Join(imagesDir, filepath.Base(src))); err != nil {
			return "", err
		}
	}

	s.logger.Info("归档完成", "dir", dir)
	return dir, nil
}

// safeDirName 把标题压成可用作目录名的短串：取首行、替换路径保留字符、
// 截断到 20 个字符。
func safeDirName(title string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(title), "\n")
	name = unsafePathPattern.ReplaceAllString(name, "_")
	runes := []rune(name)
	if len(runes) > 20 {
		name = string(runes[:20])
	}
	if name == "" {
		name = "未命名"
	}
	return name
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("读取 %s 失败: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", dst, err)
	}
	return nil
}
