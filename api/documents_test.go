package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/Oleg520/crpt-go/errors"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/rate"
	"github.com/Oleg520/crpt-go/types"
)

func testDocument() types.Document {
	return types.Document{
		DocumentFormat: types.DocumentFormatManual,
		ProductDocument: types.ProductDocument{
			Description:    &types.Description{ParticipantInn: "12345678"},
			DocId:          "123",
			OwnerInn:       "12345678",
			ParticipantInn: "23456789",
			ProducerInn:    "12321323",
			ProductionDate: types.NewDate(2024, time.March, 15),
		},
		ProductGroup: types.ProductGroupMilk,
		Type:         types.DocTypeIntroduceGoods,
	}
}

func documentsApi(c *http.Client, slots *rate.Slots) *Documents {
	return NewDocumentsApi(
		testToken, DefaultBaseUrl, c, &logger.Noop{}, &rate.NoopLimiter{}, slots,
	)
}

func Test_Create_success(t *testing.T) {
	c := httpClient([]byte(`{"value":"doc-42"}`), 200, nil)
	docs := documentsApi(c, nil)

	res, err := docs.Create(context.Background(), testDocument(), "sig-b64")
	assert.NoError(t, err)
	assert.Equal(t, "doc-42", res.Value)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t,
		"https://ismp.crpt.ru/api/v3/lk/documents/create?pg=milk",
		tr.Url(),
	)
	assert.Equal(t, http.MethodPost, tr.Method())
	assert.Equal(t, "Bearer "+testToken, tr.Authorization())
}

func Test_Create_request_body(t *testing.T) {
	c := httpClient([]byte(`{"value":"doc-1"}`), 200, nil)
	docs := documentsApi(c, nil)

	doc := testDocument()
	_, err := docs.Create(context.Background(), doc, "detached-signature")
	assert.NoError(t, err)

	tr, _ := c.Transport.(*testTransport)
	var body types.CreateDocumentRequest
	assert.NoError(t, json.Unmarshal(tr.Body(), &body))

	assert.Equal(t, types.DocumentFormatManual, body.DocumentFormat)
	assert.Equal(t, types.DocTypeIntroduceGoods, body.Type)
	assert.Equal(t, "detached-signature", body.Signature)

	// product_document must be the base64 of the nested payload's JSON.
	decoded, b64Err := base64.StdEncoding.DecodeString(body.ProductDocument)
	assert.NoError(t, b64Err)
	var payload types.ProductDocument
	assert.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, doc.ProductDocument.OwnerInn, payload.OwnerInn)
	assert.Equal(t, doc.ProductDocument.DocId, payload.DocId)
}

func Test_Create_api_error_carries_body(t *testing.T) {
	c := httpClient([]byte(`bad signature`), 500, nil)
	docs := documentsApi(c, nil)

	res, err := docs.Create(context.Background(), testDocument(), "sig")
	assert.Error(t, err)
	assert.Equal(t, &types.CreateDocumentResponse{}, res)

	assert.True(t, errors.IsHttpStatus(err))
	var apiErr *errors.ApiError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.HttpStatusCode)
	assert.Equal(t, "bad signature", string(apiErr.Body))
}

func Test_Create_transport_error(t *testing.T) {
	c := httpClient(nil, 0, fmt.Errorf("connection refused"))
	docs := documentsApi(c, nil)

	_, err := docs.Create(context.Background(), testDocument(), "sig")
	assert.Error(t, err)
	assert.True(t, errors.IsTransport(err))
	assert.False(t, errors.IsHttpStatus(err))
}

func Test_Create_invalid_document(t *testing.T) {
	c := httpClient(nil, 0, nil)
	docs := documentsApi(c, nil)

	doc := testDocument()
	doc.ProductGroup = ""
	_, err := docs.Create(context.Background(), doc, "sig")
	assert.Error(t, err)

	var apiErr *errors.ApiError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, errors.TYPE_INVALID_DATA, apiErr.Type)

	// Nothing reached the transport.
	tr, _ := c.Transport.(*testTransport)
	assert.Nil(t, tr.req)
}

func Test_Create_no_slot_leak_on_failure(t *testing.T) {
	slots, err := rate.NewSlots(2)
	assert.NoError(t, err)

	// Transport always fails; every call must still return a slot.
	c := &http.Client{Transport: &failingTransport{}}
	docs := documentsApi(c, slots)

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			_, err := docs.Create(context.Background(), testDocument(), "sig")
			if !errors.IsTransport(err) {
				return fmt.Errorf("expected transport error, got %v", err)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, 0, slots.InFlight())
}

func Test_Create_no_slot_leak_on_success(t *testing.T) {
	slots, err := rate.NewSlots(1)
	assert.NoError(t, err)

	c := &http.Client{Transport: &okTransport{}}
	docs := documentsApi(c, slots)

	for i := 0; i < 3; i++ {
		_, err := docs.Create(context.Background(), testDocument(), "sig")
		assert.NoError(t, err)
	}
	assert.Equal(t, 0, slots.InFlight())
}

func Test_Create_cancelled_in_gate(t *testing.T) {
	limiter, err := rate.NewSlidingWindow(1, time.Minute)
	assert.NoError(t, err)
	slots, err := rate.NewSlots(5)
	assert.NoError(t, err)

	c := &http.Client{Transport: &okTransport{}}
	docs := NewDocumentsApi(
		testToken, DefaultBaseUrl, c, &logger.Noop{}, limiter, slots,
	)

	// First submission consumes the only admission of the window.
	_, err = docs.Create(context.Background(), testDocument(), "sig")
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = docs.Create(ctx, testDocument(), "sig")
	assert.Error(t, err)
	assert.True(t, errors.IsCancelled(err))
	assert.Equal(t, 0, slots.InFlight(), "cancelled call must release its slot")
}

func Test_Create_rate_limited_pacing(t *testing.T) {
	window := 150 * time.Millisecond
	limiter, err := rate.NewSlidingWindow(2, window)
	assert.NoError(t, err)

	c := &http.Client{Transport: &okTransport{}}
	docs := NewDocumentsApi(
		testToken, DefaultBaseUrl, c, &logger.Noop{}, limiter, nil,
	)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := docs.Create(context.Background(), testDocument(), "sig")
		assert.NoError(t, err)
	}
	// The third submission must have waited out the window.
	assert.GreaterOrEqual(t, time.Since(start), window-time.Millisecond)
}

// failingTransport simulates a connectivity failure on every request.
type failingTransport struct {
}

func (f *failingTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("dial tcp: connection refused")
}

// okTransport answers every request with a fresh 200 response.
type okTransport struct {
}

func (o *okTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: 200,
		Body:       &testReader{Reader: bytes.NewBufferString(`{"value":"ok"}`)},
	}, nil
}
