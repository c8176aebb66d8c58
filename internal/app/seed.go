package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/polkiloo/personauth/internal/config"
	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/domain/repository"
)

type seedEntry struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

func readSeed(path string) ([]model.Person, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	persons := make([]model.Person, 0, len(entries))
	for i, e := range entries {
		p := model.Person{ID: e.ID, Login: strings.TrimSpace(e.Login), Password: e.Password}
		if !p.Valid() || p.ID < 0 {
			return nil, fmt.Errorf("seed entry %d: invalid person", i)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Persons   repository.PersonRepository
	Logger    *slog.Logger
}

// registerSeed saves persons listed in the configured seed file before the server starts.
func registerSeed(p seedParams) {
	if p.Config.SeedFile == "" {
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			persons, err := readSeed(p.Config.SeedFile)
			if err != nil {
				return err
			}
			for i := range persons {
				if _, err := p.Persons.Save(ctx, &persons[i]); err != nil {
					return fmt.Errorf("seed person %q: %w", persons[i].Login, err)
				}
			}
			p.Logger.Info("seeded persons", slog.Int("count", len(persons)), slog.String("file", p.Config.SeedFile))
			return nil
		},
	})
}
