// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "reauth/request: nil context"

// A Request is the immutable description of one logical network action
// to be executed by a client.
//
// A Request typically results in a single lower-level http.Request, but
// may result in two if the first attempt fails with an expired
// credential and is replayed after a refresh. The lower-level request
// is constructed fresh for every attempt (see ToHTTPRequest), so a
// replay picks up the refreshed credential automatically.
//
// Build a Request with New or NewWithContext, optionally set the
// exported fields, and hand it to the client. Once submitted it must
// not be modified.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, DELETE, ...).
	// An empty string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains additional request header fields to be sent.
	Header http.Header

	// Body is the request payload. It is either a Form (key/value
	// pairs) or a Blob (raw bytes), never both; a nil Body means no
	// payload. For a GET request a Form payload is encoded into the
	// URL query string instead of the request body.
	Body Body

	// Sink optionally receives a copy of the success payload after the
	// response body has been read. It is used for the
	// download-into-a-file style of request; the payload is still
	// buffered into the Outcome.
	Sink io.Writer

	// ID is the caller's correlation id for this request. It is
	// reported back through completion callbacks. New assigns a random
	// UUID which the caller may overwrite; ids are bookkeeping only
	// and duplicates are permitted.
	ID string

	// Creds optionally supplies the authorization credential for this
	// request. When Creds is non-nil and holds a non-empty token, the
	// token is attached as the Authorization header on every attempt.
	// When nil, no Authorization header is sent and an unauthorized
	// response is not eligible for refresh-and-replay.
	Creds Credentials

	// ctx controls the lifetime of every attempt made for this
	// request. It should only be modified by copying the whole Request
	// using WithContext.
	ctx context.Context
}

// New returns a new Request for the given method, URL, and optional
// payload, using the background context. See NewWithContext.
func New(method, url string, body Body) (*Request, error) {
	return NewWithContext(context.Background(), method, url, body)
}

// NewWithContext returns a new Request given a method, URL, and
// optional payload.
//
// The returned request has a random UUID correlation id, which the
// caller may overwrite before submitting the request.
func NewWithContext(ctx context.Context, method, url string, body Body) (*Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("reauth/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Request{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   body,
		ID:     uuid.NewString(),
	}, nil
}

// Context returns the request's context. The context bounds every
// attempt made for this request. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx, which must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// ToHTTPRequest creates the lower-level HTTP request for one attempt.
// The context of the new request is set to ctx, which may not be nil.
//
// The credential token is read from Creds at call time, not cached, so
// a request converted after a refresh carries the refreshed token. A
// Form payload becomes the URL query string on a GET request and an
// application/x-www-form-urlencoded body otherwise; a Blob payload
// becomes an application/octet-stream body.
func (r *Request) ToHTTPRequest(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	method := r.Method
	if method == "" {
		method = "GET"
	}
	u := r.URL
	var body []byte
	contentType := ""
	switch b := r.Body.(type) {
	case nil:
	case Form:
		if method == "GET" {
			u = mergeQuery(u, urlpkg.Values(b))
		} else if len(b) > 0 {
			body = []byte(urlpkg.Values(b).Encode())
			contentType = "application/x-www-form-urlencoded"
		}
	case Blob:
		if len(b) > 0 {
			body = b
			contentType = "application/octet-stream"
		}
	default:
		return nil, fmt.Errorf("reauth/request: unsupported body type %T", r.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.Header {
		httpReq.Header[k] = vs
	}
	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if len(body) > 0 {
		httpReq.Body = io.NopCloser(bytes.NewReader(body))
		httpReq.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		httpReq.ContentLength = int64(len(body))
	}
	if r.Creds != nil {
		if token := r.Creds.Token(); token != "" {
			httpReq.Header.Set("Authorization", token)
		}
	}
	return httpReq, nil
}

func mergeQuery(u *urlpkg.URL, params urlpkg.Values) *urlpkg.URL {
	if len(params) == 0 {
		return u
	}
	u2 := *u
	encoded := params.Encode()
	if u2.RawQuery == "" {
		u2.RawQuery = encoded
	} else {
		u2.RawQuery += "&" + encoded
	}
	return &u2
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
