package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// call is one request seen by stubRequester.
type call struct {
	method   string
	endpoint string
	values   map[string]any
}

// stubRequester records requests and answers every one with the same body.
type stubRequester struct {
	body  string
	err   error
	calls []call
}

func (s *stubRequester) Get(_ context.Context, endpoint string, params map[string]any) (any, error) {
	return s.record(http.MethodGet, endpoint, params)
}

func (s *stubRequester) Post(_ context.Context, endpoint string, body map[string]any) (any, error) {
	return s.record(http.MethodPost, endpoint, body)
}

func (s *stubRequester) record(method, endpoint string, values map[string]any) (any, error) {
	s.calls = append(s.calls, call{method: method, endpoint: endpoint, values: values})
	if s.err != nil {
		return nil, s.err
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s.body)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *stubRequester) last(t *testing.T) call {
	t.Helper()
	require.NotEmpty(t, s.calls, "no request was sent")
	return s.calls[len(s.calls)-1]
}

func newStub(body string) (*API, *stubRequester) {
	stub := &stubRequester{body: body}
	return New(stub), stub
}
