package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httphandler "github.com/mkvy/movies-gateway/metadata/internal/handler/http"
	"github.com/mkvy/movies-gateway/metadata/internal/repository/memory"
	"github.com/mkvy/movies-gateway/metadata/pkg/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type config struct {
	API struct {
		Port int `yaml:"port"`
	} `yaml:"api"`
	APIKey   string `yaml:"apiKey"`
	Fixtures string `yaml:"fixtures"`
}

// fixtures is the on-disk seed of the stub provider, keyed by language.
type fixtures struct {
	Trending []model.MovieResult         `json:"trending"`
	Movies   map[string][]model.Metadata `json:"movies"`
	People   map[string][]model.Person   `json:"people"`
}

// The metadata service is a stub of the upstream provider for local
// development of the movie service without an api key.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	f, err := os.Open("./metadata/configs/base.yaml")
	if err != nil {
		logger.Fatal("Failed to open configuration", zap.Error(err))
	}
	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		logger.Fatal("Failed to parse configuration", zap.Error(err))
	}
	f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo := memory.New()
	if err := seed(ctx, repo, cfg.Fixtures); err != nil {
		logger.Fatal("Failed to load fixtures", zap.String("path", cfg.Fixtures), zap.Error(err))
	}
	h := httphandler.New(repo, cfg.APIKey)
	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", cfg.API.Port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("Starting the metadata service", zap.Int("port", cfg.API.Port))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-sigChan
		cancel()
		logger.Info("Attempting graceful shutdown")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shut down the HTTP server", zap.Error(err))
		}
		logger.Info("Gracefully stopped the HTTP server")
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve", zap.Error(err))
	}
	wg.Wait()
}

func seed(ctx context.Context, repo *memory.Repository, fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	var v fixtures
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return err
	}
	if err := repo.SetTrending(ctx, v.Trending); err != nil {
		return err
	}
	for language, movies := range v.Movies {
		for i := range movies {
			if err := repo.Put(ctx, language, &movies[i]); err != nil {
				return err
			}
		}
	}
	for language, people := range v.People {
		for i := range people {
			if err := repo.PutPerson(ctx, language, &people[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
