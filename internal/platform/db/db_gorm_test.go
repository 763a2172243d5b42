package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestBuildDSN はドライバーごとのDSN文字列が正しく生成されることを検証します。
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "postgres",
			cfg: Config{
				Driver: DriverPostgres, Host: "localhost", Port: "5432",
				User: "arth", Password: "secret", Name: "market", SSLMode: "disable",
			},
			want: "host=localhost port=5432 user=arth password=secret dbname=market sslmode=disable",
		},
		{
			name: "sqlite uses the file path",
			cfg:  Config{Driver: DriverSQLite, Path: "/var/lib/arthasutra/catalog.db", Host: "ignored"},
			want: "/var/lib/arthasutra/catalog.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildDSN(tt.cfg))
		})
	}
}

// TestOpenerFor は未対応ドライバーでErrUnsupportedDriverを返すことを検証します。
func TestOpenerFor(t *testing.T) {
	t.Parallel()

	_, err := OpenerFor(Config{Driver: "mysql"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)

	for _, d := range []string{DriverSQLite, DriverPostgres} {
		op, err := OpenerFor(Config{Driver: d})
		assert.NoError(t, err)
		assert.NotNil(t, op)
	}
}

// TestOpen_SQLiteMemory はインメモリSQLiteに接続できることを検証します。
func TestOpen_SQLiteMemory(t *testing.T) {
	t.Parallel()

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:"}, time.Second)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()
	assert.NoError(t, sqlDB.Ping())
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		assert.Equal(t, "test-dsn", dsn)
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// リトライ間隔のsleepで時間がかかるため並列実行しない

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後に最後のエラーを包んで返すことを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, refused
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	assert.ErrorIs(t, err, refused)
	assert.Equal(t, 1, attempts, "no retry fits in the timeout")
}

// TestLoadConfigFromEnv は環境変数からデータベース設定が正しく読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CATALOG_DB_DRIVER", "postgres")
	t.Setenv("CATALOG_DB_PATH", "")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "")

	cfg := LoadConfigFromEnv()

	assert.True(t, cfg.Enabled())
	assert.Equal(t, Config{
		Driver: "postgres", Path: "catalog.db", Host: "envhost", Port: "5433",
		User: "envuser", Password: "envpass", Name: "envdb", SSLMode: "disable",
	}, cfg)
}
