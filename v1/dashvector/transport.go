package dashvector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/otel/propagation"
)

const (
	authHeader = "dashvector-auth-token"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 64 << 20
)

// envelope is the common response wrapper of every DashVector endpoint.
type envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Output    json.RawMessage `json:"output"`
}

func (e *envelope) hasOutput() bool {
	out := bytes.TrimSpace(e.Output)
	return len(out) > 0 && !bytes.Equal(out, []byte("null"))
}

// call performs one request and decodes the envelope. When out is non-nil and
// the call succeeded, the envelope output is decoded into it.
//
// On a remote failure the decoded envelope is returned together with an
// *Error so that callers can still inspect per-item output.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("dashvector: %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("dashvector: %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(authHeader, c.cfg.APIKey)
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dashvector: %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("dashvector: %s: read response: %w", op, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return nil, &Error{
				Operation:  op,
				StatusCode: resp.StatusCode,
				Message:    strings.TrimSpace(string(raw)),
			}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, op, err)
	}

	if resp.StatusCode >= 300 || env.Code != 0 {
		return &env, &Error{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
			RequestID:  env.RequestID,
		}
	}

	if out != nil && env.hasOutput() {
		if err := json.Unmarshal(env.Output, out); err != nil {
			return &env, fmt.Errorf("%w: %s: decode output: %v", ErrMalformedResponse, op, err)
		}
	}
	return &env, nil
}

// pathParam escapes a single path segment.
func pathParam(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", invalidf("%s is required", name)
	}
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

// collectionPath builds /v1/collections/{collection}[/suffix...].
func collectionPath(collection string, suffix ...string) (string, error) {
	seg, err := pathParam("collection", collection)
	if err != nil {
		return "", err
	}
	p := "/v1/collections/" + seg
	if len(suffix) > 0 {
		p += "/" + strings.Join(suffix, "/")
	}
	return p, nil
}

// partitionPath builds /v1/collections/{collection}/partitions/{partition}.
func partitionPath(collection, partition string) (string, error) {
	seg, err := pathParam("partition", partition)
	if err != nil {
		return "", err
	}
	return collectionPath(collection, "partitions", seg)
}
