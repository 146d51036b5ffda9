package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_USER", "fleet")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "ships")

	assert.Equal(t, "host=db port=6432 user=fleet password=pass dbname=ships sslmode=disable", FromEnv())
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_NAME", "n")

	assert.Equal(t, "host=localhost port=5432 user=u password= dbname=n sslmode=disable", FromEnv())
}
