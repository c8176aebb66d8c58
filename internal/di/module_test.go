package di

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/personauth/internal/app"
	"github.com/polkiloo/personauth/internal/config"
	"github.com/polkiloo/personauth/internal/domain/repository"
	"github.com/polkiloo/personauth/internal/server/http/dto"
	"github.com/polkiloo/personauth/internal/storage/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:      "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		LogLevel:        slog.LevelError,
		MetricsEnabled:  true,
	}
}

func testOptions(cfg *config.Config) []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		),
	}
}

func TestModuleComposesGraphWithMemoryStore(t *testing.T) {
	var (
		facade  *app.PersonFacade
		engine  *gin.Engine
		persons repository.PersonRepository
	)
	fxApp := fx.New(append(testOptions(testConfig()), fx.Populate(&facade, &engine, &persons))...)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	if facade == nil || engine == nil {
		t.Fatal("expected facade and router instances")
	}
	if _, ok := persons.(*memory.Storage); !ok {
		t.Fatalf("expected in-memory store for empty dsn, got %T", persons)
	}

	body, _ := json.Marshal(dto.PersonRequest{Login: "username", Password: "qwerty"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/person", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/person/1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected created person to be readable, got %d", resp.Code)
	}
}

func TestModuleSeedsOnStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`[{"id":1,"login":"username","password":"password"}]`), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	cfg := testConfig()
	cfg.SeedFile = path

	var persons repository.PersonRepository
	fxApp := fxtest.New(t, append(testOptions(cfg), fx.Populate(&persons))...)
	fxApp.RequireStart()
	defer fxApp.RequireStop()

	stored, found, err := persons.FindByID(context.Background(), 1)
	if err != nil || !found {
		t.Fatalf("expected seeded person, found=%v err=%v", found, err)
	}
	if stored.Login != "username" {
		t.Fatalf("unexpected seeded login %q", stored.Login)
	}
}
