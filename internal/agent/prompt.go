package agent

import (
	"fmt"
	"strings"

	"codeberg.org/asklavinia/server/internal/retriever"
)

const qaPromptTemplate = `Given this context information --> %s <--
and no prior knowledge, answer the question: %s.
If you do not think this is a question, return and let the user know in kind words to rephrase the question since you didn't understand it.
If the question has nothing to do with a question one would ask about a hospital and Nurses' union employment contract, return and kindly let the user know.
The response should adhere to these guidelines:
Start by writing out what the question was: %s then:
- Provide the answer as a markdown formatted unordered (bulleted) list.
- Each bullet point should include a fact and the article number where the fact is discussed.
- Make sure each sub-answer on the list appears on a new line using markdown unordered list format.
- The text should be comprehensible to a high school student.`

// assembles the QA prompt from retrieved passages and the user question
func buildQAPrompt(passages []retriever.SearchResult, question string) string {
	context := formatPassages(passages)

	return fmt.Sprintf(qaPromptTemplate, context, question, question)
}

// joins retrieved passages, each prefixed with its article heading so the
// model can cite article numbers
func formatPassages(passages []retriever.SearchResult) string {
	if len(passages) == 0 {
		return "(no relevant passages found)"
	}

	parts := make([]string, 0, len(passages))

	for _, passage := range passages {
		parts = append(parts, fmt.Sprintf("[%s]\n%s", passage.ArticleTitle, passage.Content))
	}

	return strings.Join(parts, "\n\n---\n\n")
}
