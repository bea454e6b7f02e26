package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	schemasql "github.com/lockehooper/fritter-fe/pkg/database/sql"
	"github.com/lockehooper/fritter-fe/pkg/logging"
)

// ApplySchema executes the embedded schema files in lexical order. All
// statements are idempotent (CREATE IF NOT EXISTS), so this is safe to run
// on every startup.
func ApplySchema(ctx context.Context, db PostgresConn, logger logging.Logger) error {
	entries, err := fs.Glob(schemasql.Content, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list schema files: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		contents, err := fs.ReadFile(schemasql.Content, name)
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("failed to apply schema file %s: %w", name, err)
		}
		logger.WithField("file", name).Debug("Applied schema file")
	}

	return nil
}
