package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Oleg520/crpt-go/errors"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/rate"
	"github.com/Oleg520/crpt-go/types"
)

var (
	PathDocumentsCreate = "lk/documents/create"
)

// Documents implements the /lk/documents API methods.
//
// Create submits one commissioning document per call and may block in the
// rate gates before the request is sent. It is safe to call concurrently
// from any number of goroutines; the order in which blocked callers are
// admitted is unspecified.
type Documents struct {
	api *apiClient
}

func NewDocumentsApi(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
	slots *rate.Slots,
) *Documents {
	return &Documents{
		api: newApiClient(token, baseUrl, httpClient, logger, limiter, slots),
	}
}

// Create submits a document for introducing goods into circulation.
// The detached signature is sent alongside the payload; the nested
// business payload is serialized to JSON and base64-encoded as the
// registry requires. No retries are performed: a transport failure or a
// non-200 response is terminal for this call and the caller decides
// whether to resubmit.
func (d *Documents) Create(
	ctx context.Context,
	doc types.Document,
	signature string,
) (*types.CreateDocumentResponse, error) {
	if err := types.Validate(doc); err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_INVALID_DATA,
			SourceErr: err,
		}
	}

	payload, jsonErr := json.Marshal(doc.ProductDocument)
	if jsonErr != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: jsonErr,
		}
	}

	req := types.CreateDocumentRequest{
		ProductDocument: base64.StdEncoding.EncodeToString(payload),
		DocumentFormat:  doc.DocumentFormat,
		Type:            doc.Type,
		Signature:       signature,
	}

	var res types.CreateDocumentResponse
	return toNilErr(&res, d.api.postJson(
		ctx,
		PathDocumentsCreate,
		url.Values{"pg": {doc.ProductGroup}},
		&req,
		&res,
	))
}
