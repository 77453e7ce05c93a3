// Package codegen turns a natural-language specification into files on disk:
// prompt the model, parse the response into fenced file blocks plus a README,
// and persist each one through the resource catalog.
package codegen

import (
	"context"
	"fmt"
	"log"

	"codeforge/internal/llmclient"
)

const readmeFileName = "README.md"

// Pipeline drives the end-to-end generation flow. It is single-threaded:
// files are persisted strictly in parse order, one catalog session each, and
// the first failure aborts the rest. Files already written stay.
type Pipeline struct {
	LLM       llmclient.Client
	Persister *Persister
	Goals     []string
	MaxTokens int
}

// Run generates code for specDescription and persists every produced file.
// It always returns a textual outcome and never panics to its caller:
// success is "codes generated and saved successfully", any failure is an
// "Error"-prefixed string.
func (p *Pipeline) Run(ctx context.Context, specDescription string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("code generation panic: %v", r)
			result = fmt.Sprintf("Error generating codes: %v", r)
		}
	}()

	prompt := BuildPrompt(p.Goals, specDescription)
	messages := []llmclient.Message{{Role: "system", Content: prompt}}

	response, err := p.LLM.ChatCompletion(ctx, messages, p.MaxTokens)
	if err != nil {
		log.Printf("code generation failed: %v", err)
		return fmt.Sprintf("Error generating codes: %v", err)
	}

	records, readme := ParseResponse(response)
	for _, rec := range records {
		if res := p.Persister.Save(ctx, rec.Name, rec.Content); IsErrorResult(res) {
			return res
		}
	}

	if res := p.Persister.Save(ctx, readmeFileName, readme.Content); IsErrorResult(res) {
		return res
	}
	return MsgCodesGenerated
}
