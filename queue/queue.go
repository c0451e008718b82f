package queue

import (
	"context"

	"github.com/Oleg520/crpt-go/types"
)

// Message is one queued submission: a document plus its detached
// signature. Meta is opaque to the processor and is echoed back in the
// Response so callers can correlate outcomes.
type Message struct {
	Document  types.Document
	Signature string
	Meta      any
}

// Response reports the terminal outcome of one queued submission.
// Result is set when the registry accepted the document, Err otherwise.
type Response struct {
	Message Message
	Result  *types.CreateDocumentResponse
	Err     error
}

// Handler submits a single message to the registry. The production
// implementation wraps api.Documents; tests substitute fakes.
type Handler interface {
	Submit(ctx context.Context, msg Message) (*types.CreateDocumentResponse, error)
}
