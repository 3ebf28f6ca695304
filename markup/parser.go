// Package markup 解析正文文本的轻量标记子集：空行分段、"#" 或 "数字."
// 前缀的行为小节标题，其余行为正文段落。行内强调记号（如 **）原样
// 透传，由发布侧处理。
package markup

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind 标识内容块类型。
type Kind int

const (
	KindParagraph Kind = iota // 普通段落行
	KindHeading               // 小节标题行（# 前缀或编号前缀）
	KindSpacer                // 空行，排版时只占纵向空间
)

// Block 是一行正文归类后的内容块。标题块的 "#" 记号已剥除，
// 编号前缀（"1." 等）保留为标题文本的一部分。
type Block struct {
	Kind Kind
	Text string
}

var (
	bodyLexer = lexer.MustSimple([]lexer.SimpleRule{
		// Gap 吞掉一整段空行（含仅空白的行），行数信息保留在原文里。
		{Name: "Gap", Pattern: `\n[ \t]*\n[ \t\n]*`},
		{Name: "Newline", Pattern: `\n`},
		// 标题行：行首（紧随换行）出现的 "#" 前缀。
		{Name: "Heading", Pattern: `[ \t]*#[^\n]*`},
		// 编号标题行：首字符为数字且前 3 个字符内出现 "."。
		{Name: "Numbered", Pattern: `[ \t]*\d(\.|[^\n.]\.)[^\n]*`},
		{Name: "Text", Pattern: `[^\n]+`},
	})

	bodyParser = participle.MustBuild[document](
		participle.Lexer(bodyLexer),
	)
)

// document 是正文的行级 AST：行与空行段的平铺序列。
type document struct {
	Lines []*lineNode `parser:"( @@ )*"`
}

// lineNode 捕获单行（或一段空行）的原始文本。
type lineNode struct {
	Gap      *string `parser:"  @Gap"`
	Heading  *string `parser:"| @Heading Newline?"`
	Numbered *string `parser:"| @Numbered Newline?"`
	Text     *string `parser:"| @Text Newline?"`
	Blank    bool    `parser:"| @Newline"`
}

// Parse 把正文文本解析为内容块序列。解析失败时退回逐行扫描，
// 保证任何输入都能得到可排版的结果。
func Parse(body string) []Block {
	doc, err := bodyParser.ParseString("", body)
	if err != nil {
		return parseByLines(body)
	}

	var blocks []Block
	for _, node := range doc.Lines {
		switch {
		case node.Gap != nil:
			// 一段 k+1 个换行对应 k 个空行块。
			for i := strings.Count(*node.Gap, "\n"); i > 1; i-- {
				blocks = append(blocks, Block{Kind: KindSpacer})
			}
		case node.Heading != nil:
			text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(*node.Heading), "#"))
			blocks = append(blocks, Block{Kind: KindHeading, Text: text})
		case node.Numbered != nil:
			blocks = append(blocks, Block{Kind: KindHeading, Text: strings.TrimSpace(*node.Numbered)})
		case node.Text != nil:
			text := strings.TrimSpace(*node.Text)
			if text == "" {
				blocks = append(blocks, Block{Kind: KindSpacer})
			} else {
				blocks = append(blocks, Block{Kind: KindParagraph, Text: text})
			}
		}
	}
	return blocks
}

// parseByLines 是语法解析失败时的逐行降级路径，分类规则与语法一致。
func parseByLines(body string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			blocks = append(blocks, Block{Kind: KindSpacer})
		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{Kind: KindHeading, Text: strings.TrimSpace(strings.TrimLeft(line, "#"))})
		case isNumberedHeading(line):
			blocks = append(blocks, Block{Kind: KindHeading, Text: line})
		default:
			blocks = append(blocks, Block{Kind: KindParagraph, Text: line})
		}
	}
	return blocks
}

// isNumberedHeading 判断 "数字开头且前 3 个字符内含 '.'" 的编号标题。
func isNumberedHeading(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 || runes[0] < '0' || runes[0] > '9' {
		return false
	}
	limit := 3
	if len(runes) < limit {
		limit = len(runes)
	}
	return strings.ContainsRune(string(runes[:limit]), '.')
}
