package testutil

import (
	"net/http/httptest"

	httphandler "github.com/mkvy/movies-gateway/metadata/internal/handler/http"
	"github.com/mkvy/movies-gateway/metadata/internal/repository/memory"
)

// TestAPIKey is the api key accepted by the test metadata server.
const TestAPIKey = "test-api-key"

// MetadataServer is an in-process stand-in for the upstream metadata
// provider. It serves records stored in Repo.
type MetadataServer struct {
	*httptest.Server
	Repo    *memory.Repository
	handler *httphandler.Handler
}

// NewTestMetadataServer creates a new metadata HTTP server to be used in tests.
// The caller must Close it.
func NewTestMetadataServer() *MetadataServer {
	repo := memory.New()
	h := httphandler.New(repo, TestAPIKey)
	return &MetadataServer{
		Server:  httptest.NewServer(h.Router()),
		Repo:    repo,
		handler: h,
	}
}

// Requests returns the number of requests the server has received.
func (s *MetadataServer) Requests() int64 {
	return s.handler.Requests()
}
