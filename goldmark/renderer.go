package goldmark

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/blocks"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	spanOpen  = regexp.MustCompile(`^<span\s+color="(\d{1,3})"\s*>$`)
	spanClose = regexp.MustCompile(`^</span\s*>$`)
)

type ansiRenderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	code      lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style

	// colors is the stack of open <span color="N"> tags.
	colors []lipgloss.Style
}

func newRenderer(theme blocks.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		code:      lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	p := goldmark.DefaultParser()
	doc := p.Parse(text.NewReader(source))
	wrap := lipgloss.NewStyle().Width(width)

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.Paragraph); !ok {
			return wrap.Render(string(source))
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(r.collectInline(c, source))
	}
	return strings.TrimRight(wrap.Render(buf.String()), "\n")
}

// collectInline recursively collects styled inline text from a node's children.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.WriteString(r.colored(string(n.Segment.Value(source))))
		if n.SoftLineBreak() || n.HardLineBreak() {
			buf.WriteByte(' ')
		}

	case *ast.String:
		buf.WriteString(r.colored(string(n.Value)))

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		var raw bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				raw.Write(t.Segment.Value(source))
			}
		}
		buf.WriteString(r.code.Render(raw.String()))

	case *ast.Link:
		inner := r.collectInline(n, source)
		buf.WriteString(r.underline.Render(inner))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	case *ast.RawHTML:
		var raw bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			raw.Write(seg.Value(source))
		}
		tag := raw.String()
		switch {
		case spanOpen.MatchString(tag):
			idx, _ := strconv.Atoi(spanOpen.FindStringSubmatch(tag)[1])
			r.colors = append(r.colors, lipgloss.NewStyle().Foreground(ansiColor(idx)))
		case spanClose.MatchString(tag) && len(r.colors) > 0:
			r.colors = r.colors[:len(r.colors)-1]
		default:
			buf.WriteString(r.colored(tag))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}

func (r *ansiRenderer) colored(s string) string {
	if len(r.colors) == 0 || s == "" {
		return s
	}
	return r.colors[len(r.colors)-1].Render(s)
}
