package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/config"
	"tasknest/infras/otel/mocks"
	"tasknest/infras/s3"
)

func testConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.Enable = true
	cfg.External.S3.APIEndpoint = endpoint
	cfg.External.S3.Region = "auto"
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.BucketName = "archive"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"

	return cfg
}

func TestUploadFileBytes(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := s3.New(testConfig(server.URL), mocks.NewOtel())
	require.NoError(t, err)
	assert.True(t, client.Enabled())

	url, err := client.UploadFileBytes(context.Background(), "exports/u-1", "home.md", "text/markdown", []byte("# Home"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/exports/u-1/home.md", url)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/archive/exports/u-1/home.md", gotPath)
	assert.Contains(t, gotBody, "# Home")
}

func TestUploadFileBytesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := s3.New(testConfig(server.URL), mocks.NewOtel())
	require.NoError(t, err)

	_, err = client.UploadFileBytes(context.Background(), "exports", "home.md", "text/markdown", []byte("# Home"))
	assert.Error(t, err)
}

func TestDisabled(t *testing.T) {
	cfg := testConfig("")
	cfg.External.S3.Enable = false

	client, err := s3.New(cfg, mocks.NewOtel())
	require.NoError(t, err)

	assert.False(t, client.Enabled())
}
