// Package sheets reads cell ranges through the Google Sheets values API.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// DefaultRange is the cell range holding [id, name, points] rows.
const DefaultRange = "Sheet1!A:C"

// ValuesReader reads a range of cells as strings.
type ValuesReader interface {
	ReadValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// Client is a ValuesReader backed by the generated Sheets v4 client. It is
// safe for concurrent use.
type Client struct {
	svc *sheetsapi.Service
}

// Option configures NewClient.
type Option func(*clientOptions)

type clientOptions struct {
	endpoint string
	extra    []option.ClientOption
}

// WithEndpoint points the client at a different base URL, e.g. an emulator.
func WithEndpoint(endpoint string) Option {
	return func(o *clientOptions) {
		o.endpoint = endpoint
	}
}

// WithClientOptions appends raw google API client options.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(o *clientOptions) {
		o.extra = append(o.extra, opts...)
	}
}

// NewClient builds a Client that authenticates with apiKey sent as the key
// query parameter.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("sheets: api key is empty")
	}
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	copts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if o.endpoint != "" {
		copts = append(copts, option.WithEndpoint(o.endpoint))
	}
	copts = append(copts, o.extra...)

	svc, err := sheetsapi.NewService(ctx, copts...)
	if err != nil {
		return nil, fmt.Errorf("building sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ReadValues fetches readRange from the spreadsheet. A missing values field
// yields an empty slice.
func (c *Client) ReadValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	return toStrings(resp.Values), nil
}

// classify maps client errors onto the three failure kinds.
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindUpstreamStatus, StatusCode: apiErr.Code, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{Kind: KindNetwork, Err: &url.Error{Op: urlErr.Op, URL: stripQuery(urlErr.URL), Err: urlErr.Err}}
	}

	// Anything past the transport failed while decoding the body.
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{Kind: KindParse, Err: err}
	}
	return &Error{Kind: KindNetwork, Err: err}
}

// stripQuery drops the query string, which carries the api key.
func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	u.RawQuery = ""
	u.ForceQuery = false
	return u.String()
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	return rows
}

// cellString renders one cell. The API returns formatted strings by default;
// other JSON types show up only with unformatted render options.
func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
