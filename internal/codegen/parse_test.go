package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponseMultipleBlocks(t *testing.T) {
	text := "Here is the project.\n\n" +
		"main.py\n```python\nprint(1)\n```\n\n" +
		"util.py\n```python\ndef f():\n    return 2\n```\n\n" +
		"requirements.txt\n```text\nrequests\n```\n"

	records, readme := ParseResponse(text)
	require.Len(t, records, 3)
	require.Equal(t, "main.py", records[0].Name)
	require.Equal(t, "python", records[0].Language)
	require.Equal(t, "print(1)\n", records[0].Content)
	require.Equal(t, "util.py", records[1].Name)
	require.Equal(t, "def f():\n    return 2\n", records[1].Content)
	require.Equal(t, "requirements.txt", records[2].Name)
	// The README runs up to the first fence, filename line included.
	require.Equal(t, "Here is the project.\n\nmain.py\n", readme.Content)
}

func TestParseResponseSpecExample(t *testing.T) {
	records, readme := ParseResponse("Intro text\nmain.py\n```python\nprint(1)\n```\n")
	require.Len(t, records, 1)
	require.Equal(t, "main.py", records[0].Name)
	require.Equal(t, "print(1)\n", records[0].Content)
	require.Contains(t, readme.Content, "Intro text\n")
	require.Equal(t, "Intro text\nmain.py\n", readme.Content)
}

func TestParseResponseNoFence(t *testing.T) {
	text := "The model refused and wrote prose instead."
	records, readme := ParseResponse(text)
	require.Empty(t, records)
	require.Equal(t, text, readme.Content)
}

func TestParseResponseEmptyInput(t *testing.T) {
	records, readme := ParseResponse("")
	require.Empty(t, records)
	require.Equal(t, "", readme.Content)
}

func TestParseResponseSanitizesFilename(t *testing.T) {
	text := "x\n<main?.py>\n```python\npass\n```\n"
	records, _ := ParseResponse(text)
	require.Len(t, records, 1)
	require.Equal(t, "main.py", records[0].Name)
}

func TestParseResponseDropsEmptySanitizedName(t *testing.T) {
	text := "intro\n" +
		"main.py\n```python\nprint(1)\n```\n" +
		"<*?>\n```python\nprint(2)\n```\n"
	records, _ := ParseResponse(text)
	require.Len(t, records, 1)
	require.Equal(t, "main.py", records[0].Name)
}

func TestParseResponseKeepsSourceOrder(t *testing.T) {
	text := "b.py\n```python\nb\n```\na.py\n```python\na\n```\n"
	records, _ := ParseResponse(text)
	require.Len(t, records, 2)
	require.Equal(t, "b.py", records[0].Name)
	require.Equal(t, "a.py", records[1].Name)
}

func TestParseResponseNameMayContainSeparators(t *testing.T) {
	text := "pkg/server/app.go\n```go\npackage server\n```\n"
	records, _ := ParseResponse(text)
	require.Len(t, records, 1)
	require.Equal(t, "pkg/server/app.go", records[0].Name)
}
