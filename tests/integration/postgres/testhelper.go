package integration

import (
	"os"
	"testing"
)

// GetTestStorageDSN returns the PostgreSQL DSN for integration tests,
// skipping the test when none is configured.
func GetTestStorageDSN(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TP_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("set TP_TEST_DB_DSN to run integration tests")
	}
	return dsn
}
