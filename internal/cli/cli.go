// Package cli 实现 redpaper 命令行界面。
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// 日志级别别名，供 main.go 使用。
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI 持有全部子命令共享的状态。
type CLI struct {
	Logger *log.Logger
}

// New 创建 CLI 实例与默认日志器。
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel 调整日志级别。
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand 构造根命令并注册全部子命令。
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "redpaper",
		Short:        "redpaper 把文本渲染为小红书风格的图文卡片",
		Long:         "redpaper 读取标题与正文，按所选样式模板排版分页，输出一张封面图与若干正文页图片。",
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	return root
}

// newLogger 创建带时间戳的日志器。
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
