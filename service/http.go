package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody is the maximum number of bytes of a non-2xx response kept in ErrStatus
const maxErrorBody = 256

// Decorator wraps the transport of a client (e.g. to add authentication)
type Decorator func(http.RoundTripper) http.RoundTripper

// NewScopedClient returns a client owning a fresh transport and the function releasing it.
// The client must not be used after release.
func NewScopedClient(decorate Decorator) (*http.Client, func()) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	var rt http.RoundTripper = transport
	if decorate != nil {
		rt = decorate(transport)
	}
	return &http.Client{Transport: rt}, transport.CloseIdleConnections
}

// Exchange sends the request on a client dedicated to this call and returns the body of the response.
// The client is released whatever the outcome.
// A non-2xx response returns an ErrStatus, temporary if the status is 408, 429 or 5xx.
// A network failure is returned as a temporary transport error.
func Exchange(ctx context.Context, req *http.Request, decorate Decorator) ([]byte, error) {
	var body []byte
	err := exchange(ctx, req, decorate, func(r io.Reader) (err error) {
		body, err = io.ReadAll(r)
		return err
	})
	return body, err
}

func exchange(ctx context.Context, req *http.Request, decorate Decorator, readBody func(io.Reader) error) error {
	client, release := NewScopedClient(decorate)
	defer release()

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return WithKind(ErrorKindTransport, MakeTemporary(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := ErrStatus{Code: resp.StatusCode, Status: resp.Status, Body: validUTF8(snippet)}
		if temporaryStatus(resp.StatusCode) {
			return MakeTemporary(err)
		}
		return err
	}

	if err := readBody(resp.Body); err != nil {
		return WithKind(ErrorKindTransport, MakeTemporary(fmt.Errorf("read body: %w", err)))
	}
	return nil
}

// HTTPGet performs a GET with Exchange
func HTTPGet(ctx context.Context, url string, decorate Decorator) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, WithKind(ErrorKindRequest, fmt.Errorf("HTTPGet: %w", err))
	}
	return Exchange(ctx, req, decorate)
}

// HTTPGetDiscard performs a GET with Exchange, the body is read then dropped
func HTTPGetDiscard(ctx context.Context, url string, decorate Decorator) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WithKind(ErrorKindRequest, fmt.Errorf("HTTPGet: %w", err))
	}
	return exchange(ctx, req, decorate, func(r io.Reader) error {
		_, err := io.Copy(io.Discard, r)
		return err
	})
}

// HTTPPostJSON performs a POST of a json body with Exchange
func HTTPPostJSON(ctx context.Context, url string, body io.Reader, decorate Decorator) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, WithKind(ErrorKindRequest, fmt.Errorf("HTTPPost: %w", err))
	}
	req.Header.Add("Content-Type", "application/json")
	return Exchange(ctx, req, decorate)
}

// validUTF8 drops the bytes that are not valid utf8 (e.g. a rune cut by the size limit)
func validUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}
