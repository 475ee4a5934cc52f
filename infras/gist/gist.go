// Package gist publishes exported markdown to the GitHub gists API.
package gist

//go:generate go run go.uber.org/mock/mockgen -source=./gist.go -destination=./mocks/gist_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"tasknest/config"
	"tasknest/infras/otel"
	"tasknest/shared/constant"
	"time"
)

const (
	gistsPath          = "/gists"
	acceptGitHubJSON   = "application/vnd.github+json"
	requestTimeout     = 10 * time.Second
	maxErrorBodyBytes  = 512
	otelAttrGistFile   = "gist.file"
	otelAttrHTTPStatus = "http.status_code"
)

var (
	ErrMissingToken = errors.New("gist token is not configured")
	ErrPublish      = errors.New("gist publish failed")
)

type Gist interface {
	Publish(ctx context.Context, filename, description, content string) (url string, err error)
}

type file struct {
	Content string `json:"content"`
}

type createRequest struct {
	Description string          `json:"description"`
	Public      bool            `json:"public"`
	Files       map[string]file `json:"files"`
}

type createResponse struct {
	HTMLURL string `json:"html_url"`
}

type gistImpl struct {
	client  *http.Client
	baseURL string
	token   string
	public  bool
	otel    otel.Otel
}

func New(config *config.Config, otel otel.Otel) Gist {
	return &gistImpl{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(config.External.Gist.APIURL, "/"),
		token:   config.External.Gist.Token,
		public:  config.External.Gist.Public,
		otel:    otel,
	}
}

// Publish creates a single file gist and returns its html_url.
func (g *gistImpl) Publish(ctx context.Context, filename, description, content string) (url string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGistScopeName, constant.OtelGistScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrGistFile, filename)

	if g.token == constant.Empty {
		return constant.Empty, ErrMissingToken
	}

	payload, err := json.Marshal(createRequest{
		Description: description,
		Public:      g.public,
		Files:       map[string]file{filename: {Content: content}},
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode gist request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+gistsPath, bytes.NewReader(payload))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build gist request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.token)
	req.Header.Set(constant.RequestHeaderAccept, acceptGitHubJSON)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(req)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to call gist api: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelAttrHTTPStatus, resp.StatusCode)

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return constant.Empty, fmt.Errorf("%w: status %d: %s", ErrPublish, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var created createResponse
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode gist response: %w", err)
	}

	if created.HTMLURL == constant.Empty {
		return constant.Empty, fmt.Errorf("%w: response has no html_url", ErrPublish)
	}

	return created.HTMLURL, nil
}
