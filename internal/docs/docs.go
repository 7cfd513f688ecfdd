// Package docs holds the embedded help topics shown by `datepick docs` and the
// TUI help overlay.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

//go:embed content/*.md
var contentFS embed.FS

// Topics lists topic names, sorted.
func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	topics := make([]string, 0, len(entries))
	for _, p := range entries {
		if topic := strings.TrimSuffix(path.Base(p), ".md"); topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Get returns the markdown of topic. Lookup is case-insensitive.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\`) {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

var (
	renderMu  sync.Mutex
	renderers = map[string]*glamour.TermRenderer{}
)

// Render formats markdown for a terminal of the given width. style is "light"
// or "dark"; anything else means dark. On renderer failure the markdown is
// returned unchanged.
func Render(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	style = normalizeStyle(style)
	key := style + ":" + strconv.Itoa(width)

	renderMu.Lock()
	r := renderers[key]
	if r == nil {
		// WithAutoStyle queries the terminal and can block; the caller picks.
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(styleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			renderers[key] = rr
			r = rr
		}
	}
	renderMu.Unlock()
	if r == nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func normalizeStyle(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "light") {
		return "light"
	}
	return "dark"
}

func styleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == "light" {
		cfg = styles.LightStyleConfig
	}
	zero := uint(0)
	cfg.Document.Margin = &zero
	return cfg
}
