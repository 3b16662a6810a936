package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	for _, table := range []string{"clothes_items", "dependent_clothes_items"} {
		var exists bool
		err := pool.QueryRow(context.Background(),
			`SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
		if err != nil {
			t.Fatalf("check %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s was not created by migrations", table)
		}
	}
}
