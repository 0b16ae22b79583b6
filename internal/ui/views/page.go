package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
)

// PageView renders a markdown content page with glamour and scrolls it
type PageView struct {
	base
	env      *Env
	id       router.ViewID
	slug     string
	title    string
	markdown string
	rendered []string
	offset   int
}

func pageFactory(id router.ViewID, slug string) Factory {
	return func(env *Env, in router.Input) View {
		return NewPageView(env, id, slug)
	}
}

// NewPageView loads the page for slug from the catalog
func NewPageView(env *Env, id router.ViewID, slug string) *PageView {
	v := &PageView{env: env, id: id, slug: slug, title: slug}
	if env.Catalog != nil {
		if p, err := env.Catalog.Page(slug); err == nil {
			v.title, v.markdown = p.Title, p.Markdown
		} else {
			env.logger().Warn("page missing from catalog", zap.String("slug", slug), zap.Error(err))
		}
	}
	if v.markdown == "" {
		v.markdown = "# " + v.title + "\n\nNothing here yet."
	}
	v.render()
	return v
}

func (v *PageView) ID() router.ViewID { return v.id }

func (v *PageView) Title() string { return v.title }

// Lines returns the rendered page
func (v *PageView) Lines() []string { return v.rendered }

func (v *PageView) SetSize(width, height int) {
	resized := width != v.width
	v.base.SetSize(width, height)
	if resized {
		v.render()
	}
}

func (v *PageView) render() {
	out, err := renderMarkdown(v.markdown, v.env.RenderStyle, v.contentWidth()-4)
	if err != nil {
		v.env.logger().Warn("markdown render failed", zap.String("slug", v.slug), zap.Error(err))
		out = v.markdown
	}
	v.rendered = strings.Split(strings.Trim(out, "\n"), "\n")
	v.clampOffset()
}

func renderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (v *PageView) HandleAction(action types.Action) tea.Cmd {
	a, ok := action.(types.NavigateAction)
	if !ok {
		return nil
	}
	page := v.visibleLines() - 1
	switch a.Direction {
	case "up":
		v.offset--
	case "down":
		v.offset++
	case "pageup":
		v.offset -= page
	case "pagedown":
		v.offset += page
	case "home":
		v.offset = 0
	case "end":
		v.offset = len(v.rendered)
	}
	v.clampOffset()
	return nil
}

func (v *PageView) visibleLines() int {
	if v.height <= 4 {
		return 20
	}
	return v.height - 2
}

func (v *PageView) clampOffset() {
	maxOffset := len(v.rendered) - v.visibleLines()
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *PageView) Render() string {
	end := v.offset + v.visibleLines()
	if end > len(v.rendered) {
		end = len(v.rendered)
	}
	return strings.Join(v.rendered[v.offset:end], "\n")
}
