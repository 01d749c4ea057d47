package store

import (
	"os"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

// MigrateLegacy runs the one-shot legacy import: if the current log is empty
// and an old-format log file exists, its records are reshaped into current
// snapshots and written as the new log. A non-empty current log
// short-circuits the migration, which makes repeated startup runs idempotent.
// Individual malformed legacy records are skipped, never fatal. Returns the
// number of migrated records.
func MigrateLegacy(current Store, legacyPath string) (int, error) {
	if len(current.ReadAll()) > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(legacyPath)
	if err != nil {
		// No legacy log, nothing to migrate.
		return 0, nil
	}

	migrated := services.MigrateLegacyLog(data)
	if len(migrated) == 0 {
		return 0, nil
	}

	if err := current.WriteAll(migrated); err != nil {
		return 0, err
	}
	return len(migrated), nil
}
