package printer

import (
	"bytes"
	"strings"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Alignment is the ESC a argument.
type Alignment byte

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
	AlignRight  Alignment = 2
)

// ParseAlignment maps "left", "center" and "right" to an Alignment.
// Anything else is treated as left.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Document builds an ESC/POS byte stream for thermal printers.
// Only the subset needed for text receipts is supported.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 42-48 for 80mm)
}

// NewDocument creates a new document with the given character width and
// writes the initialize command.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 42
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the character width of the document.
func (d *Document) Width() int {
	return d.width
}

// Init sends ESC @ (initialize printer).
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// SetAlign sends ESC a n.
func (d *Document) SetAlign(align Alignment) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold sends ESC E n.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// Raw writes s without a trailing line feed.
func (d *Document) Raw(s string) *Document {
	d.buf.WriteString(s)
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// Lines writes every line of a multi-line string.
func (d *Document) Lines(s string) *Document {
	for _, line := range strings.Split(s, "\n") {
		d.Text(line)
	}
	return d
}

// LineFeed sends a single line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// Separator prints a full-width rule made of char.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// PartialCut sends GS V 1.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// String returns the accumulated stream as a string.
func (d *Document) String() string {
	return d.buf.String()
}

// ReceiptBytes wraps an already composed receipt text: init, left aligned
// body, three feed lines and a partial cut.
func ReceiptBytes(text string, charWidth int) []byte {
	doc := NewDocument(charWidth)
	doc.SetAlign(AlignLeft).
		Lines(strings.TrimRight(text, "\n")).
		FeedLines(3).
		PartialCut()
	return doc.Bytes()
}
