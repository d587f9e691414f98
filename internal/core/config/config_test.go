package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: user-service
  env: test
  http:
    host: 127.0.0.1
    port: 8080
    readtimeoutsec: 5
    writetimeoutsec: 10
    idletimeoutsec: 60
log:
  level: debug
  json: false
db:
  driver: mysql
  dsn: "root:root@tcp(127.0.0.1:3306)/users?parseTime=true"
  maxopenconns: 20
  maxidleconns: 5
  connmaxlifetimemin: 30
  automigrate: true
  loglevel: warn
redis:
  addr: 127.0.0.1:6379
  db: 1
  user_ttl_sec: 120
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c := Load(path)

	assert.Equal(t, "user-service", c.App.Name)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "mysql", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Equal(t, 120, c.Redis.UserTTLSec)
}
