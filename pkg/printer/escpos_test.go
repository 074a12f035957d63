package printer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_StartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	assert.Equal(t, 32, doc.Width())

	assert.Equal(t, 42, NewDocument(0).Width())
}

func TestDocument_Commands(t *testing.T) {
	doc := NewDocument(4)
	doc.SetAlign(AlignCenter).SetBold(true).Raw("HI").SetBold(false).Separator('-').PartialCut()

	want := []byte{ESC, '@', ESC, 'a', 1, ESC, 'E', 1, 'H', 'I', ESC, 'E', 0, '-', '-', '-', '-', LF, GS, 'V', 1}
	assert.Equal(t, want, doc.Bytes())
}

func TestParseAlignment(t *testing.T) {
	assert.Equal(t, AlignCenter, ParseAlignment("center"))
	assert.Equal(t, AlignCenter, ParseAlignment(" Center "))
	assert.Equal(t, AlignRight, ParseAlignment("right"))
	assert.Equal(t, AlignLeft, ParseAlignment("left"))
	assert.Equal(t, AlignLeft, ParseAlignment("diagonal"))
}

func TestReceiptBytes(t *testing.T) {
	data := ReceiptBytes("a\nb\n", 32)

	assert.Equal(t, []byte{ESC, '@', ESC, 'a', 0, 'a', LF, 'b', LF, LF, LF, LF, GS, 'V', 1}, data)
}

func TestNew(t *testing.T) {
	p, err := New(Config{Type: "none"})
	require.NoError(t, err)
	assert.Equal(t, "none", p.Kind())
	assert.False(t, p.IsConnected(context.Background()))
	assert.NoError(t, p.Print(context.Background(), []byte("x")))

	_, err = New(Config{Type: "usb"})
	assert.Error(t, err)

	_, err = New(Config{Type: "network"})
	assert.Error(t, err)

	_, err = New(Config{Type: "bluetooth"})
	assert.Error(t, err)

	p, err = New(Config{Type: "network", Address: "127.0.0.1:9100"})
	require.NoError(t, err)
	assert.Equal(t, "network", p.Kind())
}

func TestUSBPrinter_WritesToDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p := NewUSBPrinter(path)
	assert.True(t, p.IsConnected(context.Background()))
	require.NoError(t, p.Print(context.Background(), []byte("receipt")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "receipt", string(got))

	missing := NewUSBPrinter(filepath.Join(t.TempDir(), "nope"))
	assert.False(t, missing.IsConnected(context.Background()))
	assert.Error(t, missing.Print(context.Background(), []byte("x")))
}
