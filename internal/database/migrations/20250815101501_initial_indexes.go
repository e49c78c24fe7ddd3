package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Score ledger indexes
			CREATE INDEX IF NOT EXISTS idx_score_ledger_user_time
			ON score_ledger_entries (user_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_score_ledger_reason
			ON score_ledger_entries (reason);

			-- Leaderboard index
			CREATE INDEX IF NOT EXISTS idx_users_score
			ON users (score_total DESC)
			WHERE is_active = true AND score_total > 0;

			-- Submission queue indexes
			CREATE INDEX IF NOT EXISTS idx_submissions_status_time
			ON submissions (status, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_submissions_submitter
			ON submissions (submitter_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_submissions_target
			ON submissions (target_type, target_id);

			-- Vote lookup index
			CREATE INDEX IF NOT EXISTS idx_votes_submission
			ON votes (submission_id, updated_at DESC);

			-- Store confirmation indexes
			CREATE INDEX IF NOT EXISTS idx_store_confirmations_item_time
			ON store_confirmations (item_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_store_confirmations_store
			ON store_confirmations (store_id, created_at DESC);

			-- Error report index
			CREATE INDEX IF NOT EXISTS idx_error_reports_status_time
			ON error_reports (status, created_at DESC)
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS
				idx_score_ledger_user_time,
				idx_score_ledger_reason,
				idx_users_score,
				idx_submissions_status_time,
				idx_submissions_submitter,
				idx_submissions_target,
				idx_votes_submission,
				idx_store_confirmations_item_time,
				idx_store_confirmations_store,
				idx_error_reports_status_time
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
