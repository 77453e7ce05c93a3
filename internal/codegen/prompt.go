package codegen

import (
	"fmt"
	"strings"
)

// codingPrompt instructs the model to lay out core classes/functions first,
// then emit every file as a filename line followed by a fenced code block,
// starting from the entrypoint and including a dependency manifest.
const codingPrompt = `You are a super smart developer who practices good Development for writing code according to a specification.

Your high-level goal is:
{goals}

Use this specs for generating the code:
{spec}

You will get instructions for code to write.
You will write a very long answer. Make sure that every detail of the architecture is, in the end, implemented as code.

Think step by step and reason yourself to the right decisions to make sure we get it right.
You will first lay out the names of the core classes, functions, methods that will be necessary, as well as a quick comment on their purpose.

Then you will output the content of each file including ALL code.
Each file must strictly follow a markdown code block format, where the following tokens must be replaced such that
[FILENAME] is the lowercase file name including the file extension,
[LANG] is the markup code block language for the code's language, and [CODE] is the code:

[FILENAME]
` + "```" + `[LANG]
[CODE]
` + "```" + `

You will start with the "entrypoint" file, then go to the ones that are imported by that file, and so on.
Please note that the code should be fully functional. No placeholders.

Follow a language and framework appropriate best practice file naming convention.
Make sure that files contain all imports, types etc. Make sure that code in different files are compatible with each other.
Ensure to implement all code, if you are unsure, write a plausible implementation.
Include module dependency or package manager dependency definition file.
Before you finish, double check that all parts of the architecture is present in the files.`

// BuildPrompt substitutes the goals list and the specification text into the
// coding prompt template.
func BuildPrompt(goals []string, specDescription string) string {
	prompt := strings.ReplaceAll(codingPrompt, "{goals}", FormatGoals(goals))
	return strings.ReplaceAll(prompt, "{spec}", specDescription)
}

// FormatGoals renders goals as a numbered list, one per line.
func FormatGoals(goals []string) string {
	var b strings.Builder
	for i, g := range goals {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g)
	}
	return b.String()
}
