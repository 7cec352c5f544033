// Package client implements the HTTP client side of the pet store contract.
// It knows how to build each request the suite sends, but makes no judgment
// about the responses; assertions live in the petstoretests package.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/petstore-contrib/petstore-contract-tests/framework"
	"github.com/petstore-contrib/petstore-contract-tests/servicedef"

	"github.com/tidwall/gjson"
)

// PetstoreClient issues requests against a running pet store service. It does
// no transport tuning of its own; the zero-value http.Client defaults apply.
type PetstoreClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

func NewPetstoreClient(baseURL string, logger framework.Logger) *PetstoreClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &PetstoreClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WithLogger returns a copy of the client that logs through the specified
// logger. Tests use this to route request logging into their own captured
// debug output.
func (c *PetstoreClient) WithLogger(logger framework.Logger) *PetstoreClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &PetstoreClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		logger:     logger,
	}
}

// BaseURL returns the service base URL the client was created with.
func (c *PetstoreClient) BaseURL() string {
	return c.baseURL
}

// Response is the outcome of one request: the status code and the raw body.
// The helper methods treat the body as untyped JSON, so tests can probe for
// required keys while ignoring any extra keys the service returns.
type Response struct {
	Status int
	Body   []byte
}

// JSON parses the whole body as an untyped JSON value.
func (r *Response) JSON() gjson.Result {
	return gjson.ParseBytes(r.Body)
}

// IsArray reports whether the body is a JSON array.
func (r *Response) IsArray() bool {
	return r.JSON().IsArray()
}

// Field returns the value at the given path in the body, if any. Use
// Field(name).Exists() for key-presence checks.
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// ListPets requests GET /pets, with tags and limit as query parameters when
// they are set.
func (c *PetstoreClient) ListPets(params servicedef.ListPetsParams) (*Response, error) {
	query := url.Values{}
	for _, tag := range params.Tags {
		query.Add("tags", tag)
	}
	if params.Limit.IsDefined() {
		query.Set("limit", strconv.Itoa(params.Limit.IntValue()))
	}
	path := "/pets"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do("GET", path, nil)
}

// CreatePet requests POST /pets with the given creation payload.
func (c *PetstoreClient) CreatePet(params servicedef.NewPetParams) (*Response, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return c.CreatePetRaw(data)
}

// CreatePetRaw requests POST /pets with an arbitrary JSON body. Tests use
// this to send payloads the typed params cannot express, such as the empty
// object.
func (c *PetstoreClient) CreatePetRaw(body []byte) (*Response, error) {
	return c.do("POST", "/pets", body)
}

// GetPet requests GET /pets/{id}. The id is a string so that tests can send
// non-numeric path segments.
func (c *PetstoreClient) GetPet(id string) (*Response, error) {
	return c.do("GET", "/pets/"+url.PathEscape(id), nil)
}

// DeletePet requests DELETE /pets/{id}.
func (c *PetstoreClient) DeletePet(id string) (*Response, error) {
	return c.do("DELETE", "/pets/"+url.PathEscape(id), nil)
}

func (c *PetstoreClient) do(method, path string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		c.logger.Printf("%s %s %s", method, path, string(body))
	} else {
		c.logger.Printf("%s %s", method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("%s %s -> %d %s", method, path, resp.StatusCode, string(data))
	return &Response{Status: resp.StatusCode, Body: data}, nil
}
