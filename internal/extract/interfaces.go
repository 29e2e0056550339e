// Package extract drives the document-to-records extraction collaborator:
// it sends statement PDFs to a model, parses the structured output, repairs
// truncated responses, and writes the pre-normalized canonical CSV the
// merge stage consumes.
package extract

import "context"

// ModelClient is the document-to-text surface of the extraction
// collaborator. Implementations send one statement document plus the
// extraction prompt to the model and return its raw textual response.
// This interface enables mocking of the model in tests.
type ModelClient interface {
	GenerateJSON(ctx context.Context, document []byte, prompt string) (string, error)
}
