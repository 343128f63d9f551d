package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"grammar.md":         {Data: []byte("# Grammar\n\nRules have two shapes")},
		"option-dry-run.txt": {Data: []byte("Information about dry-run mode")},
		"nested/tokens.md":   {Data: []byte("# Tokens")},
		"notes.txxt":         {Data: []byte("Notes\n=====")},
		"ignore.json":        {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"grammar", "option-dry-run", "tokens"}, tm.ListTopics())

		topic, ok := tm.GetTopic("tokens")
		require.True(t, ok)
		assert.Equal(t, "nested/tokens.md", topic.FilePath)
		assert.Equal(t, "# Tokens", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic_FlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"dry-run", "--dry-run", "-dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Information about dry-run mode", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return strings.ToUpper(content)
}

func newRoot(t *testing.T, renderer Renderer) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "witd", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "check", Short: "Check rules", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, InitializeWithOptions(root, testFS(), Options{Renderer: renderer}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInitialize_HelpTopic(t *testing.T) {
	renderer := &upperRenderer{}
	root, out := newRoot(t, renderer)

	root.SetArgs([]string{"help", "grammar"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "# GRAMMAR\n\nRULES HAVE TWO SHAPES", out.String())
	assert.Equal(t, []string{".md"}, renderer.formats)
}

func TestInitialize_TopicList(t *testing.T) {
	root, out := newRoot(t, nil)

	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "General topics:\n  grammar\n  tokens")
	assert.Contains(t, out.String(), "Option topics:\n  --dry-run")
	assert.Contains(t, out.String(), "Use 'witd help <topic>'")
}

func TestInitialize_FallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t, nil)

	root.SetArgs([]string{"help", "check"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Check rules")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title\n", r.Render("# Title", ".md"))
	assert.Equal(t, "body\n", r.Render("body\n\n\n", ".txt"))
	assert.Equal(t, "", r.Render(" \n", ".txt"))
}

func TestRendererFunc(t *testing.T) {
	upper := RendererFunc(func(content, ext string) string {
		return strings.ToUpper(content) + ext
	})
	assert.Equal(t, "GRAMMAR.md", upper.Render("grammar", ".md"))
}

func TestGlamourRenderer_SkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	out := r.Render("# Grammar\n\nUse `directory`.", ".md")
	assert.Contains(t, out, "Grammar")
	assert.Contains(t, out, "directory")
}
