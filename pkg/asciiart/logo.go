// Package asciiart renders short texts as decorative multi-line logos for
// plain-text receipts.
package asciiart

import (
	"strings"
	"unicode/utf8"

	"github.com/sangkips/kuittikone/pkg/printer"
)

// Style selects a logo frame.
type Style int

const (
	StyleSimple Style = iota
	StyleBox
	StyleStars
	StyleDouble
	StyleBanner
	StyleFancy
	StyleShadow
	StyleBlocks
	StyleWave
	StyleDiamond
)

var styleNames = [...]string{"simple", "box", "stars", "double", "banner", "fancy", "shadow", "blocks", "wave", "diamond"}

func (s Style) String() string {
	if int(s) < 0 || int(s) >= len(styleNames) {
		return "simple"
	}
	return styleNames[s]
}

// Styles lists every style in declaration order.
func Styles() []Style {
	out := make([]Style, len(styleNames))
	for i := range styleNames {
		out[i] = Style(i)
	}
	return out
}

// ParseStyle maps a style name to a Style. Unknown names map to StyleSimple.
func ParseStyle(name string) Style {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i)
		}
	}
	return StyleSimple
}

// Render frames the upper-cased text in the given style. It never wraps;
// callers keep text short enough for the print width.
func Render(text string, style Style) string {
	t := strings.ToUpper(text)
	n := utf8.RuneCountInString(t)

	var lines []string
	switch style {
	case StyleBox:
		lines = []string{
			"┌" + rep("─", n+2) + "┐",
			"│ " + t + " │",
			"└" + rep("─", n+2) + "┘",
		}
	case StyleStars:
		edge := rep("*", n+6)
		blank := "*" + rep(" ", n+4) + "*"
		lines = []string{edge, blank, "*  " + t + "  *", blank, edge}
	case StyleDouble:
		blank := "║" + rep(" ", n+4) + "║"
		lines = []string{
			"╔" + rep("═", n+4) + "╗",
			blank,
			"║  " + t + "  ║",
			blank,
			"╚" + rep("═", n+4) + "╝",
		}
	case StyleBanner:
		lines = []string{
			"╭" + rep("─", n+4) + "╮",
			"│  " + t + "  │",
			"╰" + rep("─", n+4) + "╯",
		}
	case StyleFancy:
		edge := "◆" + rep("═", n+6) + "◆"
		blank := "║" + rep(" ", n+6) + "║"
		lines = []string{edge, blank, "║ ✦ " + t + " ✦ ║", blank, edge}
	case StyleShadow:
		lines = []string{
			"┌" + rep("─", n+2) + "┐ ",
			"│ " + t + " │░",
			"└" + rep("─", n+2) + "┘░",
			" " + rep("░", n+4),
		}
	case StyleBlocks:
		lines = []string{
			rep("▄", n+4),
			"█ " + t + " █",
			rep("▀", n+4),
		}
	case StyleWave:
		w := n + 6
		lines = []string{
			alternate("~", "≈", w),
			"≈  " + t + "  ≈",
			alternate("≈", "~", w),
		}
	case StyleDiamond:
		w := n + 8
		tip := center("◆", w)
		edge := "◇" + rep("─", n+6) + "◇"
		lines = []string{tip, edge, "◆◇◆ " + t + " ◆◇◆", edge, tip}
	default:
		edge := rep("=", n+4)
		lines = []string{edge, "  " + t + "  ", edge}
	}
	return strings.Join(lines, "\n")
}

// ToPrinterCommands wraps text in the minimal ESC/POS sequence used for
// logos: initialize, alignment, bold on, text, bold off, left align, newline.
func ToPrinterCommands(text string, width int, alignment string) string {
	doc := printer.NewDocument(width)
	doc.SetAlign(printer.ParseAlignment(alignment)).
		SetBold(true).
		Raw(text).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		LineFeed()
	return doc.String()
}

func rep(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func alternate(a, b string, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			sb.WriteString(a)
		} else {
			sb.WriteString(b)
		}
	}
	return sb.String()
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return rep(" ", left) + s + rep(" ", width-n-left)
}
