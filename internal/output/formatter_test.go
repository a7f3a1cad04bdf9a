package output_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/cnam/internal/output"
)

type fakeResult struct {
	Name string `json:"name"`
}

func (f *fakeResult) WriteTable(w io.Writer) error {
	_, err := w.Write([]byte("table:" + f.Name))
	return err
}

func (f *fakeResult) WritePlain(w io.Writer) error {
	_, err := w.Write([]byte("plain:" + f.Name))
	return err
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatJSON, &fakeResult{Name: "test"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test"}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"name\"", "output should be indented")
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatTable, &fakeResult{Name: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "table:hello", buf.String())
}

func TestWrite_Table_NotFormattable(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatTable, struct{ X int }{X: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support table output")
}

func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatPlain, &fakeResult{Name: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "plain:hello", buf.String())
}

func TestWrite_Plain_NotFormattable(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.FormatPlain, struct{ X int }{X: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support plain output")
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := output.Write(&buf, output.Format("xml"), struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestParseFormat(t *testing.T) {
	for _, f := range output.Formats() {
		got, err := output.ParseFormat(f)
		require.NoError(t, err)
		assert.Equal(t, output.Format(f), got)
	}
	_, err := output.ParseFormat("text")
	require.Error(t, err)
}
