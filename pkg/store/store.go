// Package store persists user preferences, the cached scoring rubric,
// per-source reputation and the tracked channel list in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/tubescope/tubescope/pkg/domain"
)

//go:embed schema.sql
var schema string

// settings keys
const (
	settingInterestProfile = "interest_profile"
	settingRubric          = "scoring_rubric"
	settingRubricDigest    = "rubric_profile_digest"
)

// Store wraps the database connection and provides methods for data access
type Store struct {
	db *sqlx.DB
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New creates a new preferences store
func New(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:tubescope.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	conn, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: conn}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetPreferences loads the full persisted preferences blob: profile,
// cached rubric with its profile digest, and the reputation map.
// Missing pieces come back as zero values, not errors.
func (s *Store) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	prefs := &domain.Preferences{Reputation: map[string]domain.SourceReputation{}}

	if raw, err := s.getSetting(ctx, settingInterestProfile); err != nil {
		return nil, fmt.Errorf("get interest profile: %w", err)
	} else if raw != "" {
		if err := json.Unmarshal([]byte(raw), &prefs.Profile); err != nil {
			return nil, fmt.Errorf("parse interest profile: %w", err)
		}
	}

	if raw, err := s.getSetting(ctx, settingRubric); err != nil {
		return nil, fmt.Errorf("get rubric: %w", err)
	} else if raw != "" {
		var rubric domain.ScoringRubric
		if err := json.Unmarshal([]byte(raw), &rubric); err != nil {
			return nil, fmt.Errorf("parse rubric: %w", err)
		}
		prefs.Rubric = &rubric
	}

	digest, err := s.getSetting(ctx, settingRubricDigest)
	if err != nil {
		return nil, fmt.Errorf("get rubric digest: %w", err)
	}
	prefs.ProfileDigest = digest

	rows := []struct {
		SourceID       string  `db:"source_id"`
		PassRate       float64 `db:"pass_rate"`
		AvgScore       float64 `db:"avg_score"`
		UserEngagement float64 `db:"user_engagement"`
		TotalTriaged   int64   `db:"total_triaged"`
	}{}
	query := "SELECT source_id, pass_rate, avg_score, user_engagement, total_triaged FROM reputation"
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get reputation: %w", err)
	}
	for _, row := range rows {
		prefs.Reputation[row.SourceID] = domain.SourceReputation{
			PassRate:       row.PassRate,
			AvgScore:       row.AvgScore,
			UserEngagement: row.UserEngagement,
			TotalTriaged:   row.TotalTriaged,
		}
	}

	return prefs, nil
}

// SaveProfile stores a new interest profile and drops the cached
// rubric, which was compiled from the old profile
func (s *Store) SaveProfile(ctx context.Context, profile domain.InterestProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal interest profile: %w", err)
	}
	if err := s.setSetting(ctx, settingInterestProfile, string(data)); err != nil {
		return fmt.Errorf("save interest profile: %w", err)
	}

	return s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key IN (?, ?)", settingRubric, settingRubricDigest)
		if err != nil {
			return fmt.Errorf("drop cached rubric: %w", err)
		}
		return nil
	})
}

// SaveRubric caches a freshly compiled rubric together with the digest
// of the profile it was compiled from
func (s *Store) SaveRubric(ctx context.Context, rubric *domain.ScoringRubric, profileDigest string) error {
	data, err := json.Marshal(rubric)
	if err != nil {
		return fmt.Errorf("marshal rubric: %w", err)
	}
	if err := s.setSetting(ctx, settingRubric, string(data)); err != nil {
		return fmt.Errorf("save rubric: %w", err)
	}
	if err := s.setSetting(ctx, settingRubricDigest, profileDigest); err != nil {
		return fmt.Errorf("save rubric digest: %w", err)
	}
	return nil
}

// SaveReputation upserts a single source's reputation entry
func (s *Store) SaveReputation(ctx context.Context, sourceID string, rep domain.SourceReputation) error {
	query := `
		INSERT INTO reputation (source_id, pass_rate, avg_score, user_engagement, total_triaged, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(source_id) DO UPDATE SET
			pass_rate = excluded.pass_rate,
			avg_score = excluded.avg_score,
			user_engagement = excluded.user_engagement,
			total_triaged = excluded.total_triaged,
			updated_at = CURRENT_TIMESTAMP
	`
	return s.withRetry(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, query, sourceID, rep.PassRate, rep.AvgScore, rep.UserEngagement, rep.TotalTriaged); err != nil {
			return fmt.Errorf("save reputation for %s: %w", sourceID, err)
		}
		return nil
	})
}

// GetCategories returns the known topic vocabulary, derived from the
// topic weights of the cached rubric
func (s *Store) GetCategories(ctx context.Context) ([]string, error) {
	raw, err := s.getSetting(ctx, settingRubric)
	if err != nil {
		return nil, fmt.Errorf("get rubric: %w", err)
	}
	if raw == "" {
		return []string{}, nil
	}

	var rubric domain.ScoringRubric
	if err := json.Unmarshal([]byte(raw), &rubric); err != nil {
		return nil, fmt.Errorf("parse rubric: %w", err)
	}

	topics := make([]string, 0, len(rubric.TopicWeights))
	for topic := range rubric.TopicWeights {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics, nil
}

// ListChannels returns all tracked channels ordered by name
func (s *Store) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	rows := []struct {
		ID      string    `db:"id"`
		Name    string    `db:"name"`
		AddedAt time.Time `db:"added_at"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, "SELECT id, name, added_at FROM channels ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	channels := make([]domain.Channel, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, domain.Channel{ID: row.ID, Name: row.Name, AddedAt: row.AddedAt})
	}
	return channels, nil
}

// AddChannel tracks a new channel, updating the name if it is already tracked
func (s *Store) AddChannel(ctx context.Context, channel domain.Channel) error {
	query := `
		INSERT INTO channels (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`
	return s.withRetry(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, query, channel.ID, channel.Name); err != nil {
			return fmt.Errorf("add channel %s: %w", channel.ID, err)
		}
		return nil
	})
}

// DeleteChannel removes a tracked channel
func (s *Store) DeleteChannel(ctx context.Context, id string) error {
	return s.withRetry(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM channels WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete channel %s: %w", id, err)
		}
		return nil
	})
}

// getSetting returns a settings value, empty string when absent
func (s *Store) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// setSetting upserts a settings value with lock retries
func (s *Store) setSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	return s.withRetry(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("set setting %s: %w", key, err)
		}
		return nil
	})
}

// withRetry retries writes on SQLite lock/busy errors with backoff
func (s *Store) withRetry(ctx context.Context, op func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		err := op()
		if err != nil && !isLockError(err) {
			return &criticalError{err: err}
		}
		return err
	})
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
