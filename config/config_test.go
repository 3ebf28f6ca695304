package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("缺失配置不应报错: %v", err)
		}
		if cfg.Template != "tech_card" || cfg.Layout.Width != 1242 {
			t.Fatalf("默认配置不符: %+v", cfg)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "redpaper.toml")
	content := `
template = "cyber"
header = "页眉"
output_dir = "out"
archive_dir = "archives"

[layout]
width = 1242
height = 1660
body_font_size = 44
title_font_size = 52
line_spacing = 20
para_spacing = 40
card_margin_outer = 50
card_padding_inner = 50
card_top = 150
card_bottom_gap = 50
header_font_size = 40
footer_font_size = 40
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.Template != "cyber" || cfg.Header != "页眉" || cfg.ArchiveDir != "archives" {
		t.Fatalf("覆盖字段不符: %+v", cfg)
	}
	if cfg.Layout.BodyFontSize != 44 || cfg.Layout.LineSpacing != 20 {
		t.Fatalf("布局字段不符: %+v", cfg.Layout)
	}
	// 未出现在文件里的字段保持默认
	if cfg.Footer == "" {
		t.Fatal("未覆盖字段应保留默认值")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"[layout]\nwidth = -1\nheight = 1660\nbody_font_size = 48\ntitle_font_size = 52",
		"[layout]\nwidth = 1242\nheight = 1660\nbody_font_size = 0\ntitle_font_size = 52",
		"output_dir = \"\"",
		"template = [1, 2]",
	}
	for i, content := range cases {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("用例 %d 应报错: %q", i, content)
		}
	}
}
