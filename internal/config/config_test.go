package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load_MissingFileYieldsDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(err)
	assert.Equal("localhost:8080", cfg.ListenAddress)
	assert.Equal(DatabaseInMemory, cfg.Database.Type)
}

func Test_Load_ParsesFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
listen_address = "0.0.0.0:9090"
jwt_secret = "01234567890123456789012345678901"

[database]
type = "sqlite"
data_dir = "/tmp/clrgen-data"
`
	assert.NoError(os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("0.0.0.0:9090", cfg.ListenAddress)
	assert.Equal(DatabaseSQLite, cfg.Database.Type)
	assert.Equal("/tmp/clrgen-data", cfg.Database.DataDir)
}

func Test_Validate_RejectsShortSecret(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{ListenAddress: "localhost:8080", JWTSecret: "short", Database: Database{Type: DatabaseInMemory}}
	assert.Error(cfg.Validate())
}

func Test_Validate_RejectsSQLiteWithoutDataDir(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{ListenAddress: "localhost:8080", Database: Database{Type: DatabaseSQLite}}
	assert.Error(cfg.Validate())
}

func Test_Validate_AcceptsWellFormed(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{ListenAddress: "localhost:8080", Database: Database{Type: DatabaseInMemory}}
	assert.NoError(cfg.Validate())
}
