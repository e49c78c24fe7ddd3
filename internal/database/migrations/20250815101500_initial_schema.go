package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.User)(nil),
			(*types.ScoreLedgerEntry)(nil),
			(*types.Submission)(nil),
			(*types.Vote)(nil),
			(*types.StoreConfirmation)(nil),
			(*types.ErrorReport)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP TABLE IF EXISTS
				error_reports,
				store_confirmations,
				votes,
				submissions,
				score_ledger_entries,
				users
			CASCADE
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}

		return nil
	})
}
