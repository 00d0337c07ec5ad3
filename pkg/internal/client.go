// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

const defaultRegion = "us-east-1"

// Sender performs one HTTP exchange. *http.Client satisfies it; tests swap
// in their own implementation.
type Sender interface {
	Do(req *http.Request) (*http.Response, error)
}

// RestClient issues requests against the LanceDB Cloud REST API. It is
// immutable after construction: no request mutates it, so any number of
// concurrent operations may share one instance without locking.
type RestClient struct {
	host   string
	apiKey string
	sender Sender
	logger *slog.Logger
	hook   contracts.RequestHook
}

// NewRestClient builds a client for a db:// URI. The host is derived from
// the database name and region unless hostOverride is set. The remaining
// collaborators come from options: Sender defaults to http.DefaultClient,
// Logger to a discarding logger, Hook to none.
func NewRestClient(uri string, options *contracts.ConnectionOptions) (*RestClient, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, &contracts.InvalidInputError{Message: fmt.Sprintf("invalid database URI %q: %v", uri, err)}
	}
	if parsed.Scheme != "db" {
		return nil, &contracts.InvalidInputError{Message: fmt.Sprintf("expected a db:// URI, got %q", uri)}
	}
	database := parsed.Host
	if database == "" {
		return nil, &contracts.InvalidInputError{Message: fmt.Sprintf("database name missing in URI %q", uri)}
	}

	var apiKey, region, hostOverride string
	var sender Sender
	var logger *slog.Logger
	var hook contracts.RequestHook
	if options != nil {
		apiKey = options.APIKey
		region = options.Region
		hostOverride = options.HostOverride
		if options.HTTPClient != nil {
			sender = options.HTTPClient
		}
		logger = options.Logger
		hook = options.Hook
	}
	if apiKey == "" {
		return nil, &contracts.InvalidInputError{Message: "an API key is required to connect to LanceDB Cloud"}
	}
	if region == "" {
		region = defaultRegion
	}
	host := hostOverride
	if host == "" {
		host = fmt.Sprintf("https://%s.%s.api.lancedb.com", database, region)
	} else {
		host = strings.TrimRight(host, "/")
	}
	if sender == nil {
		sender = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &RestClient{
		host:   host,
		apiKey: apiKey,
		sender: sender,
		logger: logger,
		hook:   hook,
	}, nil
}

// Host returns the resolved base URL requests are sent to.
func (c *RestClient) Host() string {
	return c.host
}

// Request accumulates the pieces of one HTTP request. Builder methods
// return the request so calls chain.
type Request struct {
	method    string
	path      string
	query     url.Values
	header    http.Header
	body      []byte
	operation string
	table     string
}

// Get starts a GET request for the given path, relative to the host.
func (c *RestClient) Get(path string) *Request {
	return newRequest(http.MethodGet, path)
}

// Post starts a POST request for the given path, relative to the host.
func (c *RestClient) Post(path string) *Request {
	return newRequest(http.MethodPost, path)
}

func newRequest(method, path string) *Request {
	return &Request{
		method: method,
		path:   path,
		query:  url.Values{},
		header: http.Header{},
	}
}

// Query attaches one query parameter.
func (r *Request) Query(key, value string) *Request {
	r.query.Set(key, value)
	return r
}

// Header attaches one header.
func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// Body attaches the request body.
func (r *Request) Body(body []byte) *Request {
	r.body = body
	return r
}

// Operation labels the request with the connection operation and target
// table it serves. The label feeds logs and hooks only; it never changes
// what goes on the wire.
func (r *Request) Operation(operation, table string) *Request {
	r.operation = operation
	r.table = table
	return r
}

// Response is a fully read HTTP response. The body is drained before Send
// returns, so there is nothing to close.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Send performs the exchange and reads the whole response body. The API key
// header is set on every request. A failure below the HTTP layer is
// returned as a *contracts.TransportError; any status code, success or not,
// produces a Response.
func (c *RestClient) Send(ctx context.Context, req *Request) (*Response, error) {
	requestID := uuid.NewString()
	info := contracts.RequestInfo{
		Operation: req.operation,
		Method:    req.method,
		Path:      req.path,
		Table:     req.table,
		RequestID: requestID,
	}

	var token contracts.HookToken
	if c.hook != nil {
		ctx, token = c.hook.OnRequestStart(ctx, info)
	}

	rsp, err := c.send(ctx, req, requestID)
	if c.hook != nil {
		status := 0
		if rsp != nil {
			status = rsp.StatusCode
		}
		c.hook.OnRequestEnd(ctx, token, info, status, err)
	}
	return rsp, err
}

func (c *RestClient) send(ctx context.Context, req *Request, requestID string) (*Response, error) {
	target := c.host + req.path
	if encoded := req.query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, &contracts.TransportError{Err: err}
	}
	for key, values := range req.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("x-api-key", c.apiKey)

	c.logger.DebugContext(ctx, "sending request",
		"request_id", requestID,
		"method", req.method,
		"path", req.path,
		"operation", req.operation,
	)

	httpRsp, err := c.sender.Do(httpReq)
	if err != nil {
		return nil, &contracts.TransportError{Err: err}
	}
	defer httpRsp.Body.Close()

	data, err := io.ReadAll(httpRsp.Body)
	if err != nil {
		return nil, &contracts.TransportError{Err: err}
	}

	return &Response{
		StatusCode: httpRsp.StatusCode,
		Header:     httpRsp.Header,
		Body:       data,
	}, nil
}

// CheckResponse returns nil for a 2xx response and a
// *contracts.ServiceError carrying the status and body text otherwise.
func (c *RestClient) CheckResponse(rsp *Response) error {
	if rsp.StatusCode >= 200 && rsp.StatusCode < 300 {
		return nil
	}
	return &contracts.ServiceError{
		StatusCode: rsp.StatusCode,
		Body:       string(rsp.Body),
	}
}
