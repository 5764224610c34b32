package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"pricewatch/pkg/storage"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is passed through as the sslmode parameter ("disable", "require", ...).
	SslMode  string
	Port     int
	Database string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is kept warm as the pool's minimum size.
	MaxIdleConnections int
}

// ConnString renders the options as a postgres:// URL. Credentials are
// escaped, so passwords may contain any character.
func (o Options) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SslMode}}.Encode()
	}

	return u.String()
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage, and storage.TxStorage once Begin was
// called, on top of a pgx pool.
type PgSQL struct {
	// DB is a *sql.DB outside a transaction and a *sql.Tx inside one.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	// Pool is the pgx pool behind DB. It is nil on transactional handles.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New connects to postgres and verifies the connection. The pool is shared by
// the database/sql wrapper used for queries and migrations and by River.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.ConnString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(options.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Ping reports whether the database answers.
func (p *PgSQL) Ping(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

// Close releases the sql wrapper and the pool.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns a handle bound to a new transaction. Nested transactions are
// not supported and yield storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb in a transaction that is committed when cb returns nil and
// rolled back otherwise, including when cb panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}
