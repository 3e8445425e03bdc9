package reveal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/reveal/internal/reveal/config"
)

// Page is the content the tiles uncover. Nothing shows until Loaded is set,
// and the full styles and footer apply once Revealed is set.
type Page struct {
	Title  string
	Body   []string
	Footer string

	Loaded   bool
	Revealed bool

	cols, rows int

	layoutKey layoutKey
	text      [][]rune
	styles    []int

	faint    lipgloss.Style
	title    lipgloss.Style
	body     lipgloss.Style
	footer   lipgloss.Style
	rendered map[glyphKey]string
}

type layoutKey struct {
	revealed bool
	valid    bool
}

type glyphKey struct {
	style int
	r     rune
}

const (
	styleFaint = iota
	styleTitle
	styleBody
	styleFooter
)

// NewPage creates a page whose styles render for the terminal behind w.
func NewPage(w io.Writer, title string, body []string, footer string) *Page {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	bg := lipgloss.Color(config.PageBackground)
	base := r.NewStyle().Background(bg)
	return &Page{
		Title:    title,
		Body:     body,
		Footer:   footer,
		faint:    base.Foreground(lipgloss.Color(config.PageForeground)).Faint(true),
		title:    base.Foreground(lipgloss.Color(config.PageAccent)).Bold(true),
		body:     base.Foreground(lipgloss.Color(config.PageForeground)),
		footer:   base.Foreground(lipgloss.Color(config.PageForeground)).Italic(true).Faint(true),
		rendered: make(map[glyphKey]string),
	}
}

// Resize sets the terminal dimensions the page is centred in.
func (p *Page) Resize(cols, rows int) {
	p.cols = cols
	p.rows = rows
}

// lines returns the visible lines with their style for the current flags.
// The layout is rebuilt only when the flags change.
func (p *Page) lines() ([][]rune, []int) {
	key := layoutKey{revealed: p.Revealed, valid: true}
	if key == p.layoutKey {
		return p.text, p.styles
	}
	text := make([][]rune, 0, len(p.Body)+4)
	styles := make([]int, 0, cap(text))

	titleStyle, bodyStyle := styleFaint, styleFaint
	if p.Revealed {
		titleStyle, bodyStyle = styleTitle, styleBody
	}

	text = append(text, []rune(p.Title), nil)
	styles = append(styles, titleStyle, bodyStyle)
	for _, l := range p.Body {
		text = append(text, []rune(l))
		styles = append(styles, bodyStyle)
	}
	if p.Revealed && p.Footer != "" {
		text = append(text, nil, []rune(p.Footer))
		styles = append(styles, bodyStyle, styleFooter)
	}
	p.layoutKey, p.text, p.styles = key, text, styles
	return text, styles
}

// Glyph returns the styled character at a 0-based terminal cell, if any.
func (p *Page) Glyph(col, row int) (string, bool) {
	if !p.Loaded {
		return "", false
	}
	text, styles := p.lines()
	top := (p.rows - len(text)) / 2
	i := row - top
	if i < 0 || i >= len(text) {
		return "", false
	}
	line := text[i]
	left := (p.cols - len(line)) / 2
	j := col - left
	if j < 0 || j >= len(line) || line[j] == ' ' {
		return "", false
	}
	return p.render(styles[i], line[j]), true
}

func (p *Page) render(style int, r rune) string {
	key := glyphKey{style: style, r: r}
	if s, ok := p.rendered[key]; ok {
		return s
	}
	var st lipgloss.Style
	switch style {
	case styleTitle:
		st = p.title
	case styleBody:
		st = p.body
	case styleFooter:
		st = p.footer
	default:
		st = p.faint
	}
	s := st.Render(string(r))
	p.rendered[key] = s
	return s
}
