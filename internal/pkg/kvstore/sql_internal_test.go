package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	pg := &SQLStore{dialect: DialectPostgres}
	lite := &SQLStore{dialect: DialectSQLite}

	query := `UPDATE kv_entries SET entry_value = ? WHERE entry_key = ?`

	assert.Equal(t, `UPDATE kv_entries SET entry_value = $1 WHERE entry_key = $2`, pg.rebind(query))
	assert.Equal(t, query, lite.rebind(query))
}
