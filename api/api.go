package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/Oleg520/crpt-go/errors"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/rate"
)

const (
	DefaultBaseUrl = "https://ismp.crpt.ru/api/v3"
)

// apiClient sends authorized JSON requests to the registry. Every request
// passes the concurrency cap and the rate limiter, in that order, before
// it leaves the process. Neither gate is held across the network call.
type apiClient struct {
	token      string
	baseUrl    string
	httpClient *http.Client
	logger     logger.Logger
	limiter    rate.Limiter
	slots      *rate.Slots
}

func newApiClient(
	token string,
	baseUrl string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
	slots *rate.Slots,
) *apiClient {
	return &apiClient{
		token:      token,
		baseUrl:    baseUrl,
		httpClient: httpClient,
		logger:     logger,
		limiter:    limiter,
		slots:      slots,
	}
}

func (c *apiClient) postJson(
	ctx context.Context,
	path string,
	query url.Values,
	reqData any,
	resData any,
) *errors.ApiError {
	body, err := c.send(ctx, http.MethodPost, path, query, reqData)
	if err != nil {
		if len(err.Body) > 0 {
			code := crptErr{}
			err2 := json.Unmarshal(err.Body, &code)
			if err2 == nil {
				err.CrptCode = code.Code
			}
			// Best effort to return some data
			_ = json.Unmarshal(err.Body, resData)
		}
		return err
	}
	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

func (c *apiClient) send(
	ctx context.Context,
	httpMethod string,
	path string,
	query url.Values,
	reqData any,
) ([]byte, *errors.ApiError) {
	if c.slots != nil {
		release, err := c.slots.Acquire(ctx)
		if err != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_CANCELLED,
				SourceErr: err,
			}
		}
		defer release()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_CANCELLED,
				SourceErr: err,
			}
		}
	}

	endpoint := c.baseUrl + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var err error
	var req *http.Request

	if reqData != nil {
		data, jsonErr := json.Marshal(reqData)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		req, err = http.NewRequestWithContext(
			ctx, httpMethod, endpoint, bytes.NewBuffer(data),
		)
	} else {
		req, err = http.NewRequestWithContext(
			ctx, httpMethod, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode != http.StatusOK {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		c.logger.Warnf(
			"crpt-go: %s %s answered %d: %s",
			httpMethod, path, res.StatusCode, body,
		)
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}

type crptErr struct {
	Code         string `json:"code"`
	ErrorMessage string `json:"error_message"`
}
