package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/mindom/dom/scan"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, log bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &log
	err := app.Run(contextWithEnv(context.Background()), append([]string{appName}, args...))
	return out.String(), log.String(), err
}

func TestHTMLPretty(t *testing.T) {
	out, _, err := run(t, "<div><style>p { margin: 1px; }</style><p>x</p></div>\nignored", "html")
	require.NoError(t, err)
	t.Logf("output =\n%s", out)
	assert.True(t, strings.HasPrefix(out, "<div>\n  <style>\n"), "tree comes first")
	assert.True(t, strings.HasSuffix(out, "</div>\np {\n  margin: 1px;\n}\n\n"), "style sheets follow the tree")
	assert.NotContains(t, out, "ignored", "only one line is read")
}

func TestHTMLFormats(t *testing.T) {
	out, _, err := run(t, `<p class="x">hi</p>`, "html", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "document")
	assert.Contains(t, out, `class="x"`)
	//
	out, _, err = run(t, `<p class="x">hi</p>`, "html", "-f", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	//
	_, _, err = run(t, `<p></p>`, "html", "--format", "xml")
	assert.Error(t, err)
}

func TestHTMLError(t *testing.T) {
	out, log, err := run(t, "<a></b>", "html")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrMismatchedClosingTag))
	assert.Empty(t, out, "no partial output")
	assert.Contains(t, log, "Program ended with error")
}

func TestCSSFromFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sheet.css")
	require.NoError(t, os.WriteFile(fname, []byte("h1, p.note { color: #00ff00; }\n"), 0o644))
	out, _, err := run(t, "", "css", fname)
	require.NoError(t, err)
	assert.Equal(t, "h1, p.note {\n  color: rgba(0, 255, 0, 255);\n}\n\n", out)
	//
	_, _, err = run(t, "", "css", filepath.Join(t.TempDir(), "missing.css"))
	assert.Error(t, err)
}

func TestDebugRoutesTracing(t *testing.T) {
	_, log, err := run(t, "a { display: none; }", "--debug", "css")
	require.NoError(t, err)
	assert.Contains(t, log, "css: parsed 1 rule(s)")
	assert.Contains(t, log, "Program started")
	//
	_, log, err = run(t, "a { display: none; }", "css")
	require.NoError(t, err)
	assert.NotContains(t, log, "css: parsed")
}
