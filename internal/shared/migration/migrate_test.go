package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	assert.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestInitSchemaHasTenantColumn(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	assert.NoError(t, err)

	schema := string(raw)
	for _, table := range []string{"staff", "students", "attendance_records", "class_fees", "salary_records", "leaves"} {
		start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
		if assert.GreaterOrEqual(t, start, 0, table) {
			end := strings.Index(schema[start:], ");")
			assert.Contains(t, schema[start:start+end], "school_id UUID NOT NULL", table)
		}
	}
}
