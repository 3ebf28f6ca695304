// Package config 提供生成任务的 TOML 配置。配置文件缺失时使用默认值，
// 命令行参数可以覆盖配置文件里的同名字段。
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ByLCY/redpaper/layout"
)

// Config 描述一次图文生成任务的全部输入。
type Config struct {
	// Template 为样式模板标识；未注册的标识会回退到默认样式。
	Template string `toml:"template"`
	Header   string `toml:"header"`
	Footer   string `toml:"footer"`

	// OutputDir 为产物目录，每次生成前会被清空重建。
	OutputDir string `toml:"output_dir"`
	// ArchiveDir 非空时，生成结束后把整个产物目录归档一份副本。
	ArchiveDir string `toml:"archive_dir"`

	// 字体文件路径，留空时自动探测系统中文字体。
	RegularFont string `toml:"regular_font"`
	BoldFont    string `toml:"bold_font"`

	Layout layout.Config `toml:"layout"`
}

// Default 返回默认配置。
func Default() Config {
	return Config{
		Template:  "tech_card",
		Header:    "AI 新闻日报",
		Footer:    "每日 AI 资讯",
		OutputDir: "xhs_output",
		Layout:    layout.DefaultConfig(),
	}
}

// Load 读取 TOML 配置文件。path 为空或文件不存在时返回默认配置，
// 文件存在但内容非法时报错。
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置 %s 失败: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("配置 %s 非法: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		return fmt.Errorf("画布尺寸必须为正，当前为 %.0f×%.0f", c.Layout.Width, c.Layout.Height)
	}
	if c.Layout.BodyFontSize <= 0 || c.Layout.TitleFontSize <= 0 {
		return fmt.Errorf("字号必须为正")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir 不能为空")
	}
	return nil
}
