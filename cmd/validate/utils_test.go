package validate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspscan/cspscan/internal/document"
	"github.com/cspscan/cspscan/pkg/csp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectPathDocuments_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", "<p>hi</p>")

	docs, err := collectPathDocuments(path, false, hclog.NewNullLogger())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, path, docs[0].Target)
}

func TestCollectPathDocuments_IneligibleFileSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "eval")

	docs, err := collectPathDocuments(path, false, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Empty(t, docs)

	// --force validates it anyway.
	docs, err = collectPathDocuments(path, true, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestCollectPathDocuments_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<p>hi</p>")
	writeFile(t, dir, "app.js", "var x = 1;")
	writeFile(t, dir, "README.md", "# nope")
	sub := filepath.Join(dir, "styles")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "main.css", "body {}")

	docs, err := collectPathDocuments(dir, false, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestCollectPathDocuments_MissingPath(t *testing.T) {
	_, err := collectPathDocuments(filepath.Join(t.TempDir(), "nope"), false, hclog.NewNullLogger())
	assert.Error(t, err)
}

func testResults(t *testing.T) []documentResult {
	t.Helper()
	text := `<div onclick="foo()">x</div>`
	doc := &document.Document{Target: "index.html", Syntax: "html", Text: text}
	findings := csp.NewValidator().Validate(text, nil)
	require.Len(t, findings, 1)
	return []documentResult{{doc: doc, findings: findings}}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlain(&buf, testResults(t)))

	assert.Equal(t,
		"index.html:1:1: Event handlers should be added from an external src file (inline-event-handler)\n",
		buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, testResults(t)))

	var findings []jsonFinding
	require.NoError(t, json.Unmarshal(buf.Bytes(), &findings))
	require.Len(t, findings, 1)
	assert.Equal(t, "inline-event-handler", findings[0].RuleID)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, 0, findings[0].Span.Start)
}

func TestRenderJSON_NoFindingsIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSARIF(&buf, testResults(t)))

	assert.Contains(t, buf.String(), "inline-event-handler")
	assert.Contains(t, buf.String(), "cspscan")
}
