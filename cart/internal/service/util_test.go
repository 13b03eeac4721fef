package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/Alturino/computer-store/cart/internal/repository"
)

// Fixed ids from the seed files.
var (
	userJohn = uuid.MustParse("7b0d0962-b05f-4d42-8e61-3b42c4f4ed57")
	userJane = uuid.MustParse("0b2a1e6e-66d2-4df8-9e3c-5a4c2b8b9f10")

	// Ryzen 7 9800X3D, price 1000.00, discount 10, stock 5
	productCpu = uuid.MustParse("1f0c5f2a-8d34-4b63-9a36-b1f0a6f0c101")
	// Kingston Fury Beast 32GB, price 150.00, discount 0, stock 10
	productRam = uuid.MustParse("2e1d6a3b-9e45-4c74-8b47-c2e1b7a1d202")
	// GeForce RTX 4070 Super, price 700.00, discount 5, stock 2
	productGpu = uuid.MustParse("3f2e7b4c-af56-4d85-9c58-d3f2c8b2e303")
	// Dell UltraSharp U2723QE, price 500.00, discount 0, stock 0
	productMonitor = uuid.MustParse("4a3f8c5d-b067-4e96-ad69-e4a3d9c3f404")
	// Keychron K8 Pro, price 150.00, discount 0, stock 4
	productKeyboard = uuid.MustParse("6c5bae7f-d289-4ab8-8f8b-06c5fbe51606")
	// Samsung 990 Pro 2TB, price 950.00, discount 0, stock 6
	productSsd = uuid.MustParse("7d6cbf80-e39a-4bc9-9a9c-17d60cf62707")
	// Aurora Gaming PC, price 2000.00, discount 15, stock 3
	productPc = uuid.MustParse("5b4a9d6e-c178-4fa7-be7a-f5b4ead40505")
)

type testEnv struct {
	cache          *redis.Client
	pool           *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	redisContainer *testRedis.RedisContainer
	queries        *repository.Queries
	service        CartService
}

func setup(t *testing.T, c context.Context) testEnv {
	t.Helper()

	migrationDir := filepath.Join("..", "..", "..", "db", "migrations")
	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_DB":       "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_PORT":     "5432",
			"POSTGRES_USER":     "postgres",
		}),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join(migrationDir, "20250812093011_create_table_users.up.sql"),
			filepath.Join(migrationDir, "20250812093155_create_table_categories.up.sql"),
			filepath.Join(migrationDir, "20250812093412_create_table_products.up.sql"),
			filepath.Join(migrationDir, "20250812094020_create_table_cart_items.up.sql"),
			filepath.Join("seed", "users.seed.sql"),
			filepath.Join("seed", "products.seed.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgx config with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}

	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	redisContainer, err := testRedis.Run(
		c,
		"redis:7.4.2-alpine3.21",
		testRedis.WithLogLevel(testRedis.LogLevelVerbose),
	)
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}

	queries := repository.New(pool)
	cartService := NewCartService(pool, queries, redisClient)
	return testEnv{
		cache:          redisClient,
		pool:           pool,
		pgContainer:    pgContainer,
		redisContainer: redisContainer,
		queries:        queries,
		service:        cartService,
	}
}

func teardown(t *testing.T, env testEnv) {
	t.Helper()

	env.cache.Close()
	env.pool.Close()
	if err := testcontainers.TerminateContainer(env.pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(env.redisContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}
