package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
)

//go:embed *.sql
var files embed.FS

// Up applies every *.up.sql file in name order. Statements are idempotent.
func Up(ctx context.Context, db *database.DB) error {
	return apply(ctx, db, ".up.sql", false)
}

// Down applies every *.down.sql file in reverse name order
func Down(ctx context.Context, db *database.DB) error {
	return apply(ctx, db, ".down.sql", true)
}

func apply(ctx context.Context, db *database.DB, suffix string, reverse bool) error {
	names, err := fs.Glob(files, "*"+suffix)
	if err != nil {
		return err
	}
	sort.Strings(names)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		slog.Info("migration applied", "name", strings.TrimSuffix(name, suffix))
	}
	return nil
}
