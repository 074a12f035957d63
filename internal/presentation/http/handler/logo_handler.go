package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
	"github.com/sangkips/kuittikone/pkg/asciiart"
	"github.com/sangkips/kuittikone/pkg/fontengine"
)

// LogoHandler previews logo styles and fonts
type LogoHandler struct{}

// NewLogoHandler creates a new logo handler
func NewLogoHandler() *LogoHandler {
	return &LogoHandler{}
}

// ListStyles returns the logo styles and fonts
func (h *LogoHandler) ListStyles(c *gin.Context) {
	logos := make([]string, 0, len(asciiart.Styles()))
	for _, s := range asciiart.Styles() {
		logos = append(logos, s.String())
	}
	fonts := make([]gin.H, 0, len(fontengine.Styles()))
	for _, f := range fontengine.Styles() {
		m := fontengine.MetricsFor(f)
		fonts = append(fonts, gin.H{"name": f.String(), "char_width": m.CharWidth, "line_height": m.LineHeight})
	}
	response.OK(c, "Styles retrieved successfully", gin.H{"logos": logos, "fonts": fonts})
}

// RenderLogo renders ?text= in the logo style of the path. Unknown styles
// fall back to simple.
func (h *LogoHandler) RenderLogo(c *gin.Context) {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		response.BadRequest(c, "text query parameter is required")
		return
	}
	style := asciiart.ParseStyle(c.Param("style"))
	logo := asciiart.Render(text, style)

	width, _ := strconv.Atoi(c.DefaultQuery("width", "42"))
	response.OK(c, "Logo rendered successfully", gin.H{
		"style":  style.String(),
		"logo":   logo,
		"lines":  strings.Split(logo, "\n"),
		"escpos": asciiart.ToPrinterCommands(logo, width, c.DefaultQuery("align", "center")),
	})
}

// RenderFont applies the font style of the path to ?text=
func (h *LogoHandler) RenderFont(c *gin.Context) {
	style, err := fontengine.ParseStyle(c.Param("style"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	text := c.Query("text")
	m := fontengine.MetricsFor(style)
	response.OK(c, "Font applied successfully", gin.H{
		"style":       style.String(),
		"text":        fontengine.Apply(text, style),
		"char_width":  m.CharWidth,
		"line_height": m.LineHeight,
	})
}
