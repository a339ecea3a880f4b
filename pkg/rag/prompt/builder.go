// Package prompt assembles the career-counselor prompts sent to the chat
// model.
package prompt

import (
	"strings"
)

// CounselorBuilder builds the prompt for a single question, with or without
// retrieved context.
type CounselorBuilder struct {
	question string
	context  []string
}

func NewCounselorBuilder(question string) *CounselorBuilder {
	return &CounselorBuilder{question: question}
}

// WithContext attaches retrieved document chunks. They are joined with a
// blank line between chunks.
func (b *CounselorBuilder) WithContext(chunks []string) *CounselorBuilder {
	b.context = chunks
	return b
}

func (b *CounselorBuilder) Build() string {
	if len(b.context) == 0 {
		return b.buildPlain()
	}
	return b.buildWithContext()
}

func (b *CounselorBuilder) buildPlain() string {
	var prompt strings.Builder
	prompt.WriteString("You are a helpful career counselor assistant.\n")
	prompt.WriteString("Answer the following question about career guidance:\n\n")
	prompt.WriteString("Question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nAnswer:")
	return prompt.String()
}

func (b *CounselorBuilder) buildWithContext() string {
	var prompt strings.Builder
	prompt.WriteString("You are a helpful and knowledgeable career counselor assistant.\n")
	prompt.WriteString("Answer questions based on the context provided.\n\n")
	prompt.WriteString("Context:\n")
	prompt.WriteString(strings.Join(b.context, "\n\n"))
	prompt.WriteString("\n\nQuestion:\n")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nAnswer:")
	return prompt.String()
}
