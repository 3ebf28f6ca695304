package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/redpaper/config"
	canvasrenderer "github.com/ByLCY/redpaper/renderer/canvas"
	"github.com/ByLCY/redpaper/session"
	"github.com/ByLCY/redpaper/style"
)

// renderCommand 实现 "redpaper render"：读取标题与正文，生成全部图片。
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath  string
		template    string
		title       string
		bodyFile    string
		header      string
		footer      string
		outputDir   string
		archiveDir  string
		regularFont string
		boldFont    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "渲染封面与正文页",
		Long:  "按样式模板把标题与正文渲染为图片。正文来自 --body-file，未指定时从标准输入读取。",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// 命令行参数覆盖配置文件
			if template != "" {
				cfg.Template = template
			}
			if header != "" {
				cfg.Header = header
			}
			if footer != "" {
				cfg.Footer = footer
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			if archiveDir != "" {
				cfg.ArchiveDir = archiveDir
			}
			if regularFont != "" {
				cfg.RegularFont = regularFont
			}
			if boldFont != "" {
				cfg.BoldFont = boldFont
			}

			body, err := readBody(bodyFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			r := canvasrenderer.NewRenderer(canvasrenderer.Options{
				RegularFontPath: cfg.RegularFont,
				BoldFontPath:    cfg.BoldFont,
			})
			s := session.New(cfg, style.NewRegistry(), r, r, c.Logger)

			result, err := s.Generate(title, body)
			if err != nil {
				return err
			}
			c.Logger.Info("生成完成", "cover", result.CoverPath, "pages", len(result.PagePaths))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML 配置文件路径")
	cmd.Flags().StringVarP(&template, "template", "t", "", "样式模板标识")
	cmd.Flags().StringVar(&title, "title", "", "封面标题（\\n 表示手动分行）")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "正文文件路径，省略时从标准输入读取")
	cmd.Flags().StringVar(&header, "header", "", "正文页页眉")
	cmd.Flags().StringVar(&footer, "footer", "", "封面页脚")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "产物目录（会被清空重建）")
	cmd.Flags().StringVar(&archiveDir, "archive", "", "归档目录，非空时保存带日期的副本")
	cmd.Flags().StringVar(&regularFont, "regular-font", "", "正文字体文件路径")
	cmd.Flags().StringVar(&boldFont, "bold-font", "", "加粗字体文件路径")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// stylesCommand 实现 "redpaper styles"：列出全部内置样式模板。
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "列出内置样式模板",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := style.NewRegistry()
			for _, id := range reg.IDs() {
				d := reg.Lookup(id)
				mark := " "
				if id == style.DefaultID {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", mark, id, d.Variant)
			}
			return nil
		},
	}
}

func readBody(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("读取正文 %s 失败: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("读取标准输入失败: %w", err)
	}
	return string(data), nil
}
