package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brain-time/coach/pkg/types"
)

// ═══════════════════════════════════════════════════════════════════════════════
// USER PROFILE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════

// SaveProfile persists a new profile as the active one. All previously
// active profiles are deactivated in the same transaction, so exactly one
// profile is active at any time. Deactivation is a soft flag; history rows
// are never deleted. Returns the assigned profile ID.
func (s *Store) SaveProfile(ctx context.Context, profile *types.UserProfile) (int64, error) {
	if profile == nil {
		return 0, fmt.Errorf("profile cannot be nil")
	}

	body, err := json.Marshal(profile)
	if err != nil {
		return 0, fmt.Errorf("marshal profile: %w", err)
	}

	now := timestamp(time.Now())

	var id int64
	err = s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE user_profiles SET is_active = 0 WHERE is_active = 1
		`); err != nil {
			return fmt.Errorf("deactivate profiles: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO user_profiles (profile_data, created_at, updated_at, is_active)
			VALUES (?, ?, ?, 1)
		`, string(body), now, now)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int64("profile_id", id).Bool("is_default", profile.IsDefault).Msg("profile saved")
	return id, nil
}

// ActiveProfile returns the currently active profile, or nil if no profile
// has been created yet. A first run with no profile is not an error.
// Newest-wins reads order by id: AUTOINCREMENT encodes insertion order,
// which text timestamps do not reliably do.
func (s *Store) ActiveProfile(ctx context.Context) (*types.UserProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile_data, created_at, updated_at, is_active
		FROM user_profiles
		WHERE is_active = 1
		ORDER BY id DESC
		LIMIT 1
	`)

	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile rewrites the stored document for an existing profile,
// preserving its identity and active flag. Used for settings edits.
func (s *Store) UpdateProfile(ctx context.Context, id int64, profile *types.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	body, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE user_profiles SET profile_data = ?, updated_at = ? WHERE id = ?
	`, string(body), timestamp(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found: %d", id)
	}
	return nil
}

// AllProfiles returns every stored profile, newest first. Deactivated
// profiles are included; this is the onboarding history.
func (s *Store) AllProfiles(ctx context.Context) ([]*types.UserProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_data, created_at, updated_at, is_active
		FROM user_profiles
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.UserProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*types.UserProfile, error) {
	var (
		id                   int64
		body                 string
		createdAt, updatedAt string
		isActive             int
	)
	if err := row.Scan(&id, &body, &createdAt, &updatedAt, &isActive); err != nil {
		return nil, err
	}

	var profile types.UserProfile
	if err := json.Unmarshal([]byte(body), &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}

	profile.ID = id
	profile.IsActive = isActive == 1
	profile.UpdatedAt = parseTimestamp(updatedAt)
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = parseTimestamp(createdAt)
	}
	return &profile, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// DAILY PLAN OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════

// SaveDailyPlan inserts a daily plan. Plans are append-only; saving again
// for the same owner and date supersedes the earlier row without touching it.
func (s *Store) SaveDailyPlan(ctx context.Context, userID int64, date, content string, availableHours float64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_plans (user_id, date, plan_content, available_hours, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, date, content, availableHours, timestamp(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("insert daily plan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	log.Debug().Int64("plan_id", id).Str("date", date).Msg("daily plan saved")
	return id, nil
}

// PlanFor returns the current plan for a date: the most recently created
// row for that owner and date, or nil if no plan exists.
func (s *Store) PlanFor(ctx context.Context, userID int64, date string) (*types.DailyPlan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, plan_content, available_hours, created_at
		FROM daily_plans
		WHERE user_id = ? AND date = ?
		ORDER BY id DESC
		LIMIT 1
	`, userID, date)

	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query daily plan: %w", err)
	}
	return plan, nil
}

// RecentPlans returns up to limit plans for an owner, most recent date
// first. Ordering is by plan date, not creation time, so a backfilled plan
// sorts where its date belongs.
func (s *Store) RecentPlans(ctx context.Context, userID int64, limit int) ([]*types.DailyPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, plan_content, available_hours, created_at
		FROM daily_plans
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.DailyPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func scanPlan(row scanner) (*types.DailyPlan, error) {
	var (
		plan      types.DailyPlan
		hours     sql.NullFloat64
		createdAt string
	)
	if err := row.Scan(&plan.ID, &plan.UserID, &plan.Date, &plan.Content, &hours, &createdAt); err != nil {
		return nil, err
	}
	if hours.Valid {
		plan.AvailableHours = hours.Float64
	}
	plan.CreatedAt = parseTimestamp(createdAt)
	return &plan, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// WEEKLY REVIEW OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════

// SaveWeeklyReview inserts a weekly review. Same append-only policy as
// daily plans.
func (s *Store) SaveWeeklyReview(ctx context.Context, userID int64, weekStart, weekEnd, content string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO weekly_reviews (user_id, week_start, week_end, review_content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, weekStart, weekEnd, content, timestamp(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("insert weekly review: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	log.Debug().Int64("review_id", id).Str("week_start", weekStart).Msg("weekly review saved")
	return id, nil
}

// ReviewFor returns the most recent review for a week, or nil if none.
func (s *Store) ReviewFor(ctx context.Context, userID int64, weekStart string) (*types.WeeklyReview, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, week_start, week_end, review_content, created_at
		FROM weekly_reviews
		WHERE user_id = ? AND week_start = ?
		ORDER BY id DESC
		LIMIT 1
	`, userID, weekStart)

	review, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query weekly review: %w", err)
	}
	return review, nil
}

// AllReviews returns every review for an owner, most recent week first.
func (s *Store) AllReviews(ctx context.Context, userID int64) ([]*types.WeeklyReview, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, week_start, week_end, review_content, created_at
		FROM weekly_reviews
		WHERE user_id = ?
		ORDER BY week_start DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query weekly reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*types.WeeklyReview
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weekly review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func scanReview(row scanner) (*types.WeeklyReview, error) {
	var (
		review    types.WeeklyReview
		createdAt string
	)
	if err := row.Scan(&review.ID, &review.UserID, &review.WeekStart, &review.WeekEnd, &review.Content, &createdAt); err != nil {
		return nil, err
	}
	review.CreatedAt = parseTimestamp(createdAt)
	return &review, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// METADATA AND MAINTENANCE
// ═══════════════════════════════════════════════════════════════════════════════

// SetMetadata stores a key/value pair in app_metadata.
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO app_metadata (key, value, updated_at) VALUES (?, ?, ?)
	`, key, value, timestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("set metadata %s: %w", key, err)
	}
	return nil
}

// Metadata returns the value for a key, or "" if the key is absent.
func (s *Store) Metadata(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get metadata %s: %w", key, err)
	}
	return value, nil
}

// Stats returns record counts and the database file size.
func (s *Store) Stats(ctx context.Context) (*types.StoreStats, error) {
	stats := &types.StoreStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM user_profiles`, &stats.TotalProfiles},
		{`SELECT COUNT(*) FROM user_profiles WHERE is_active = 1`, &stats.ActiveProfiles},
		{`SELECT COUNT(*) FROM daily_plans`, &stats.DailyPlans},
		{`SELECT COUNT(*) FROM weekly_reviews`, &stats.WeeklyReviews},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count query: %w", err)
		}
	}

	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}

	return stats, nil
}

// Reset destroys all persisted state and reinitializes an empty schema.
// Irreversible; confirmation is the caller's responsibility.
func (s *Store) Reset(ctx context.Context) error {
	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"daily_plans", "weekly_reviews", "user_profiles", "app_metadata"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		// Restart AUTOINCREMENT counters so fresh state means fresh IDs.
		// sqlite_sequence only exists after the first AUTOINCREMENT insert.
		_, _ = tx.ExecContext(ctx, `DELETE FROM sqlite_sequence`)
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.Migrate(); err != nil {
		return fmt.Errorf("reinitialize schema: %w", err)
	}

	log.Warn().Msg("store reset: all persisted state destroyed")
	return nil
}
