package pipeline

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// preprocessNote converts \r\n and \r line endings to \n.
func preprocessNote(content []byte) []byte {
	return crlfOrCR.ReplaceAll(content, []byte("\n"))
}

// kindMark is the AST kind of ==highlighted== text.
var kindMark = ast.NewNodeKind("Mark")

// markNode is an inline ==highlight== span, rendered as <mark>.
type markNode struct {
	ast.BaseInline
}

func (n *markNode) Kind() ast.NodeKind { return kindMark }

func (n *markNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type markDelimiterProcessor struct{}

func (p *markDelimiterProcessor) IsDelimiter(b byte) bool { return b == '=' }

func (p *markDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *markDelimiterProcessor) OnMatch(consumes int) ast.Node { return &markNode{} }

var defaultMarkDelimiterProcessor = &markDelimiterProcessor{}

// markParser scans exactly two '=' as a highlight delimiter. Code spans and
// fenced blocks are never handed to inline parsers, so comparisons in code
// stay untouched.
type markParser struct{}

func (s *markParser) Trigger() []byte { return []byte{'='} }

func (s *markParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, defaultMarkDelimiterProcessor)
	if node == nil || node.OriginalLength != 2 || before == '=' {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type markHTMLRenderer struct{}

func (r *markHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindMark, r.renderMark)
}

func (r *markHTMLRenderer) renderMark(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<mark>")
	} else {
		_, _ = w.WriteString("</mark>")
	}
	return ast.WalkContinue, nil
}

// highlightExtension adds ==text== -> <mark>text</mark>.
type highlightExtension struct{}

func (e *highlightExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&markParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&markHTMLRenderer{}, 500),
	))
}
