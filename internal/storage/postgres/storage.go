package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Storage implements the person repository on top of PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.PersonRepository = (*Storage)(nil)
var _ repository.HealthChecker = (*Storage)(nil)

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS persons (
            id BIGSERIAL PRIMARY KEY,
            login TEXT NOT NULL,
            password TEXT NOT NULL
        )`

	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *Storage) FindByID(ctx context.Context, id int64) (*model.Person, bool, error) {
	const query = `SELECT id, login, password FROM persons WHERE id=$1`
	var p model.Person
	err := s.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Login, &p.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find person %d: %w", id, err)
	}
	return &p, true, nil
}

func (s *Storage) FindAll(ctx context.Context) ([]model.Person, error) {
	const query = `SELECT id, login, password FROM persons ORDER BY id`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	result := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Login, &p.Password); err != nil {
			return nil, fmt.Errorf("list persons: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return result, nil
}

// advanceSequence moves the serial sequence past an explicitly saved id. It never moves it back.
const advanceSequence = `SELECT setval('persons_id_seq', $1) FROM persons_id_seq WHERE NOT is_called OR last_value < $1`

func (s *Storage) Save(ctx context.Context, person *model.Person) (*model.Person, error) {
	stored := *person
	if stored.ID == 0 {
		const insert = `INSERT INTO persons (login, password) VALUES ($1, $2) RETURNING id`
		if err := s.pool.QueryRow(ctx, insert, stored.Login, stored.Password).Scan(&stored.ID); err != nil {
			return nil, fmt.Errorf("insert person: %w", err)
		}
		s.logger.Debug("person inserted", slog.Int64("id", stored.ID))
		return &stored, nil
	}

	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsert = `INSERT INTO persons (id, login, password) VALUES ($1, $2, $3)
                        ON CONFLICT (id) DO UPDATE SET login = EXCLUDED.login, password = EXCLUDED.password`
		if _, err := tx.Exec(ctx, upsert, stored.ID, stored.Login, stored.Password); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, advanceSequence, stored.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert person %d: %w", stored.ID, err)
	}
	s.logger.Debug("person upserted", slog.Int64("id", stored.ID))
	return &stored, nil
}

func (s *Storage) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM persons WHERE id=$1`
	if _, err := s.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete person %d: %w", id, err)
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
