package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/projup/projup/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"variables.md":      {Data: []byte("# Variables\n\nBuilt-in variables.")},
		"file-format.txt":   {Data: []byte("The .projup format")},
		"option-soft.txt":   {Data: []byte("Keep the backup")},
		"config.txxt":       {Data: []byte("Configuration")},
		"ignore.json":       {Data: []byte("{}")},
		"nested/deep.md":    {Data: []byte("Deep topic")},
		"nested/other.json": {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := topics.New(testFS(), topics.Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"deep", "file-format", "option-soft", "variables"}, tm.ListTopics())

		topic, ok := tm.GetTopic("variables")
		require.True(t, ok)
		assert.Equal(t, "# Variables\n\nBuilt-in variables.", topic.Content)
		assert.Equal(t, "variables.md", topic.Path)

		_, ok = tm.GetTopic("config")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := topics.New(testFS(), topics.Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := topics.New(testFS(), topics.Options{})
	require.NoError(t, tm.Load())

	tests := []struct {
		query string
		name  string
		found bool
	}{
		{"file-format", "file-format", true},
		{"--soft", "option-soft", true},
		{"-soft", "option-soft", true},
		{"soft", "option-soft", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.name, topic.Name)
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	tm := topics.New(testFS(), topics.Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteList(&buf, "projup")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  deep\n  file-format\n  variables\n")
	assert.Contains(t, out, "Option topics:\n  --soft\n")
	assert.Contains(t, out, "Use 'projup help <topic>'")

	empty := topics.New(fstest.MapFS{}, topics.Options{})
	require.NoError(t, empty.Load())
	buf.Reset()
	empty.WriteList(&buf, "projup")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", topics.Plain.Render("# x", ".md"))

	tagged := topics.RendererFunc(func(content, ext string) string { return ext + ":" + content })
	assert.Equal(t, ".txt:x", tagged.Render("x", ".txt"))
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 60}
	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "projup", Run: func(*cobra.Command, []string) {}}
	sub := &cobra.Command{Use: "ls", Short: "List projects", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(sub)

	_, err := topics.Initialize(root, testFS(), topics.Options{})
	require.NoError(t, err)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Equal(t, "The .projup format", run("help", "file-format"))
	assert.Contains(t, run("help", "topics"), "Available help topics:")
	assert.True(t, strings.Contains(run("help", "ls"), "List projects"))
}
