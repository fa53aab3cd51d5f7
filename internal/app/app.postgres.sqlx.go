package app

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	sharedidempotency "github.com/joshuarp/gnoss-api-wrapper/internal/shared/idempotency"
	"go.uber.org/fx"
)

const postgresPingTimeout = 5 * time.Second

type dbProviderIn struct {
	fx.In

	Config config.ConfigProvider
	Bin    string `name:"bin"`
}

// provideGatewayPostgresSQLX opens the database of operator accounts and
// idempotency keys.
func provideGatewayPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	return openPostgres(loadPostgresSettings(in.Config, in.Bin, "gateway"))
}

// provideJournalPostgresSQLX opens the database of the load journal. Split
// deployments may point it at a separate reporting instance.
func provideJournalPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	return openPostgres(loadPostgresSettings(in.Config, in.Bin, "journal"))
}

type postgresSettings struct {
	Database     string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	ConnLifetime time.Duration
}

// loadPostgresSettings reads database.<database>.* first when the binary
// serves a single module, then the shared database.* block.
func loadPostgresSettings(cfg config.ConfigProvider, bin, database string) postgresSettings {
	scoped := !isSingleBinaryBin(bin)
	key := func(name string) string {
		return resolveDBKey(cfg, database, name, scoped)
	}

	return postgresSettings{
		Database:     database,
		Host:         cfg.GetString(key("host")),
		Port:         cfg.GetInt(key("port")),
		User:         cfg.GetString(key("user")),
		Password:     cfg.GetString(key("password")),
		Name:         cfg.GetString(key("name")),
		SSLMode:      cfg.GetString(key("ssl_mode")),
		MaxOpenConns: cfg.GetInt(key("max_open_conns")),
		ConnLifetime: cfg.GetDuration(key("conn_max_lifetime")),
	}
}

// DSN renders a pgx URL. Credentials are escaped, so passwords may hold any
// character.
func (s postgresSettings) DSN() string {
	port := s.Port
	if port == 0 {
		port = 5432
	}
	query := url.Values{}
	if s.SSLMode != "" {
		query.Set("sslmode", s.SSLMode)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     net.JoinHostPort(s.Host, strconv.Itoa(port)),
		Path:     "/" + s.Name,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func openPostgres(settings postgresSettings) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", settings.DSN())
	if err != nil {
		return nil, fmt.Errorf("db(%s): open postgres: %w", settings.Database, err)
	}
	if settings.MaxOpenConns > 0 {
		db.SetMaxOpenConns(settings.MaxOpenConns)
	}
	if settings.ConnLifetime > 0 {
		db.SetConnMaxLifetime(settings.ConnLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), postgresPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): ping postgres at %s: %w", settings.Database, settings.Host, err)
	}

	return db, nil
}

// resolveDBKey returns the first config key that is set. Scoped lookups try
// database.<database>.<name> and DATABASE_<DATABASE>_<NAME> before the shared
// database.<name>. DATABASE_<NAME> is the last resort.
func resolveDBKey(cfg config.ConfigProvider, database, name string, scoped bool) string {
	candidates := make([]string, 0, 3)
	if scoped {
		candidates = append(candidates, "database."+database+"."+name, dbEnvKey(database, name))
	}
	candidates = append(candidates, "database."+name)

	for _, candidate := range candidates {
		if cfg.IsSet(candidate) {
			return candidate
		}
	}
	return dbEnvKey("", name)
}

func dbEnvKey(database, name string) string {
	parts := []string{"DATABASE"}
	if database != "" {
		parts = append(parts, database)
	}
	parts = append(parts, strings.ReplaceAll(name, ".", "_"))
	return strings.ToUpper(strings.Join(parts, "_"))
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}

func provideIdempotencyStore(cfg config.ConfigProvider, db *sqlx.DB) (*sharedidempotency.SQLXStore, error) {
	return sharedidempotency.NewSQLXStore(db, cfg.GetString("idempotency.table"))
}
