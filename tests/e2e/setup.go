//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"stay-pricing/cmd/bootstrap"
	"stay-pricing/cmd/bootstrap/components"
	"stay-pricing/internal/infra/db"
	"stay-pricing/internal/infra/metrics"
	"stay-pricing/internal/infra/migration"
	"stay-pricing/internal/pkg/config"
	"stay-pricing/internal/usecase/shared"
	"stay-pricing/tests/common/dbtest"
	"stay-pricing/tests/common/eventtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	postgresImage = "postgres:17"
	postgresPort  = nat.Port("5432/tcp")
	testUser      = "test"
	testPassword  = "testpass"
)

// Durability is traded for speed; the data lives on tmpfs and dies with the container.
var postgresSettings = map[string]string{
	"fsync":              "off",
	"full_page_writes":   "off",
	"synchronous_commit": "off",
	"shared_buffers":     "256MB",
	"max_connections":    "200",
	"log_statement":      "none",
}

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

// env is everything a suite needs from one process-wide environment.
type env struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
	events *eventtest.Recorder
}

func setupE2EEnvironment(t *testing.T) env {
	gin.SetMode(gin.TestMode)

	host, port := postgresAddress(t)
	dbConfig := createDatabase(t, host, port)

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to database")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(dbConfig), "failed to apply migrations")

	recorder := eventtest.NewRecorder()
	router, cfg := startApp(t, pool, dbConfig, recorder)

	slog.Info("e2e environment ready", "postgres_host", host, "postgres_port", port, "database", dbConfig.DBName)
	return env{pool: pool, router: router, cfg: cfg, events: recorder}
}

// ------------------------------------------------------------
// Postgres container, started once per process
// ------------------------------------------------------------

func postgresAddress(t *testing.T) (string, string) {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "failed to resolve postgres host")
	mapped, err := postgresContainer.MappedPort(ctx, postgresPort)
	require.NoError(t, err, "failed to resolve postgres port")

	return host, mapped.Port()
}

func postgresRequest() testcontainers.ContainerRequest {
	keys := make([]string, 0, len(postgresSettings))
	for k := range postgresSettings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmd := []string{"postgres"}
	for _, k := range keys {
		cmd = append(cmd, "-c", k+"="+postgresSettings[k])
	}

	return testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "stay-pricing-e2e"},
	}
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port)
}

// ------------------------------------------------------------
// Database, one per test process
// ------------------------------------------------------------

func createDatabase(t *testing.T, host, port string) config.DBConfig {
	t.Helper()

	dbName := "stay_pricing_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := adminDSN(host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "failed to open admin connection")
	defer admin.Close()

	// CREATE DATABASE can collide with other processes cloning template1.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		if err == nil || attempt == 5 {
			break
		}
		backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
		slog.Warn("retrying database creation", "attempt", attempt, "retry_wait", backoff, "error", err.Error())
		time.Sleep(backoff)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() { dropDatabase(dsn, dbName) })

	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 10,

		TxMaxRetries: 3,
		TxRetryBase:  10 * time.Millisecond,
	}
}

func dropDatabase(dsn, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, dsn)
	if err != nil {
		slog.Warn("failed to connect for cleanup", "database", dbName, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
		slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
	}
}

func applyMigrations(dbConfig config.DBConfig) error {
	m, err := migration.Open(dbConfig)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	return m.Up()
}

// ------------------------------------------------------------
// App wiring
// ------------------------------------------------------------

// startApp builds the production fx graph with the database pool, events and metrics swapped for test doubles.
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig, recorder *eventtest.Recorder) (*gin.Engine, config.Config) {
	t.Helper()

	var (
		router *gin.Engine
		cfg    config.Config
	)

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig

	app := fx.New(
		fx.Supply(pool, testConfig),
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func() shared.EventPublisher { return recorder },
			func() *metrics.Metrics { return metrics.New(prometheus.NewRegistry()) },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "fx app did not populate the router")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Events *eventtest.Recorder
}

func (s *SharedSuite) SetupSuite() {
	e := setupE2EEnvironment(s.T())
	s.DB = e.pool
	s.Router = e.router
	s.Config = e.cfg
	s.Events = e.events
}

// SetupSubTest gives every subtest empty tables and an empty event log.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Events.Reset()
}
