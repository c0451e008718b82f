package queue

import (
	"context"

	"github.com/Oleg520/crpt-go/api"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/types"
)

type documentsHandler struct {
	docs   *api.Documents
	logger logger.Logger
}

var _ Handler = &documentsHandler{}

func NewDocumentsHandler(docs *api.Documents, logger logger.Logger) Handler {
	return &documentsHandler{
		docs:   docs,
		logger: logger,
	}
}

func (h *documentsHandler) Submit(
	ctx context.Context,
	msg Message,
) (*types.CreateDocumentResponse, error) {
	res, err := h.docs.Create(ctx, msg.Document, msg.Signature)
	if err != nil {
		h.logger.Debugf("queue: document submission failed: %v", err)
		return nil, err
	}
	return res, nil
}
