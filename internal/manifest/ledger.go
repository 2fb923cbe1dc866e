package manifest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Ledger records what a translation run produced. Adapted from the
// teacher's StagingManager: a thin wrapper around *gorm.DB with one
// method per lifecycle event, but with no stage/apply/revert state
// machine to drive — a batch is opened, fed artifacts and failures as
// the run proceeds, and closed once.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// IsEnabled reports whether the ledger has a backing database. A nil
// receiver is valid and disables recording entirely.
func (l *Ledger) IsEnabled() bool {
	return l != nil && l.db != nil
}

// StartBatch opens a new batch row for root and returns its ID.
func (l *Ledger) StartBatch(ctx context.Context, root string) (string, error) {
	if !l.IsEnabled() {
		return "", nil
	}
	batch := Batch{ID: generateID("batch"), Root: root}
	if err := l.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return "", fmt.Errorf("starting batch: %w", err)
	}
	return batch.ID, nil
}

// RecordArtifact logs one successfully emitted output file.
func (l *Ledger) RecordArtifact(ctx context.Context, a Artifact) error {
	if !l.IsEnabled() {
		return nil
	}
	if err := l.db.WithContext(ctx).Create(&a).Error; err != nil {
		return fmt.Errorf("recording artifact for %s: %w", a.SourceFile, err)
	}
	return nil
}

// RecordFailure logs one source file that failed to translate.
func (l *Ledger) RecordFailure(ctx context.Context, f Failure) error {
	if !l.IsEnabled() {
		return nil
	}
	if err := l.db.WithContext(ctx).Create(&f).Error; err != nil {
		return fmt.Errorf("recording failure for %s: %w", f.SourceFile, err)
	}
	return nil
}

// FinishBatch stamps a batch's end time and final counters.
func (l *Ledger) FinishBatch(ctx context.Context, batchID string, seen, ok, failed int) error {
	if !l.IsEnabled() {
		return nil
	}
	now := time.Now()
	err := l.db.WithContext(ctx).Model(&Batch{}).Where("id = ?", batchID).Updates(map[string]any{
		"ended_at":     &now,
		"files_seen":   seen,
		"files_ok":     ok,
		"files_failed": failed,
	}).Error
	if err != nil {
		return fmt.Errorf("finishing batch %s: %w", batchID, err)
	}
	return nil
}

// generateID mints a unique identifier with a prefix, falling back to a
// timestamp if the system's random source is unavailable.
func generateID(prefix string) string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(bytes))
}
