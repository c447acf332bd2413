package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrinters_PrintCallsEveryPrinter(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)

	gomock.InOrder(
		first.EXPECT().Print().Return(nil),
		second.EXPECT().Print().Return(nil),
	)

	ps := NewPrinters().AddPrinter(first).AddPrinter(second)
	assert.NoError(t, ps.Print())
}

func TestPrinters_PrintReturnsFirstErrorButContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	third := NewMockPrinter(ctrl)

	failure := errors.New("disk full")
	first.EXPECT().Print().Return(failure)
	second.EXPECT().Print().Return(errors.New("later failure"))
	third.EXPECT().Print().Return(nil)

	ps := NewPrinters().AddPrinter(first).AddPrinter(second).AddPrinter(third)
	assert.Equal(t, failure, ps.Print())
}

func TestPrinters_CloseClosesEveryPrinter(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	first.EXPECT().Close()
	second.EXPECT().Close()

	NewPrinters().AddPrinter(first).AddPrinter(second).Close()
}

func TestPrinters_WriterAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "report.txt")
	text := func() string { return "Sample Mean: 20.00\n" }

	ps := NewPrinters().
		AddPrintToWriter(&buf, text).
		AddPrintToFile(path, text).
		AddPrintToFile("", text)
	require.Equal(t, 2, ps.Len())

	require.NoError(t, ps.Print())
	require.NoError(t, ps.Print())
	ps.Close()

	assert.Equal(t, "Sample Mean: 20.00\nSample Mean: 20.00\n", buf.String())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample Mean: 20.00\n", string(content))
}

func TestPrintToFile_FailsOnMissingDirectory(t *testing.T) {
	p := NewPrintToFile(filepath.Join(t.TempDir(), "missing", "report.txt"), func() string { return "" })
	assert.True(t, errors.Is(p.Print(), os.ErrNotExist))
}
