package codegen

import (
	"strings"
	"testing"
)

func TestBuildPromptSubstitutesGoalsAndSpec(t *testing.T) {
	prompt := BuildPrompt([]string{"ship a CLI", "keep it small"}, "a todo app")
	if strings.Contains(prompt, "{goals}") || strings.Contains(prompt, "{spec}") {
		t.Fatalf("placeholders left in prompt")
	}
	if !strings.Contains(prompt, "1. ship a CLI\n2. keep it small\n") {
		t.Fatalf("goals not rendered as numbered list:\n%s", prompt)
	}
	if !strings.Contains(prompt, "a todo app") {
		t.Fatalf("spec text missing from prompt")
	}
	if !strings.Contains(prompt, "[FILENAME]") || !strings.Contains(prompt, "```[LANG]") {
		t.Fatalf("file block format instructions missing")
	}
}

func TestFormatGoalsEmpty(t *testing.T) {
	if got := FormatGoals(nil); got != "" {
		t.Fatalf("expected empty list rendering, got %q", got)
	}
}
