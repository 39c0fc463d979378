package testutil

import (
	"net/http"
	"time"

	metadatatestutil "github.com/mkvy/movies-gateway/metadata/pkg/testutil"
	"github.com/mkvy/movies-gateway/movie/internal/controller/movie"
	metadatagateway "github.com/mkvy/movies-gateway/movie/internal/gateway/metadata/http"
	httphandler "github.com/mkvy/movies-gateway/movie/internal/handler/http"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Test locales used by the test movie handler.
const (
	PrimaryLanguage  = "it-IT"
	FallbackLanguage = "en-US"
)

// NewTestPages returns an in-memory filesystem holding placeholder pages.
func NewTestPages() afero.Fs {
	fs := afero.NewMemMapFs()
	for name, body := range map[string]string{
		httphandler.HomePage:   "<html>home</html>",
		httphandler.MoviePage:  "<html>movie</html>",
		httphandler.PersonPage: "<html>person</html>",
	} {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			panic(err)
		}
	}
	return fs
}

// NewTestMovieHandler creates a new movie HTTP handler talking to the
// metadata server at metadataURL, to be used in tests.
func NewTestMovieHandler(metadataURL string, pages afero.Fs) http.Handler {
	logger := zap.NewNop()
	g := metadatagateway.New(metadatagateway.Config{
		BaseURL: metadataURL,
		APIKey:  metadatatestutil.TestAPIKey,
		Timeout: 5 * time.Second,
	}, logger, tally.NoopScope)
	ctrl := movie.New(g, movie.Locales{Primary: PrimaryLanguage, Fallback: FallbackLanguage}, logger)
	h := httphandler.New(ctrl, pages, logger)
	return httphandler.NewRouter(h, nil, logger)
}
