// Package manifest persists a per-run ledger of emitted artifacts.
// Adapted from the teacher's models/Stage+Apply+Session trio: those
// tracked a staged-edit/commit workflow for live code edits, which this
// one-shot batch translator has no use for, so the stage/apply/revert
// lifecycle is replaced with a flatter batch/artifact/failure ledger that
// just records what a run produced.
package manifest

import "time"

// Batch is one invocation of the translator over a root path.
type Batch struct {
	ID        string `gorm:"primaryKey;type:varchar(20)"`
	Root      string `gorm:"type:text;not null"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time

	FilesSeen  int `gorm:"default:0"`
	FilesOK    int `gorm:"default:0"`
	FilesFailed int `gorm:"default:0"`
}

// Artifact is one emitted output file.
type Artifact struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	BatchID    string `gorm:"type:varchar(20);index"`
	SourceFile string `gorm:"type:text;not null"`
	Contract   string `gorm:"type:varchar(255)"`
	Kind       string `gorm:"type:varchar(20)"` // artifact name: traits, impls, lib, interface, library
	OutputPath string `gorm:"type:text;not null"`
	Digest     string `gorm:"type:varchar(64)"` // sha256 of the written content
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Failure is one source file that did not translate.
type Failure struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	BatchID    string `gorm:"type:varchar(20);index"`
	SourceFile string `gorm:"type:text;not null"`
	ErrorKind  string `gorm:"type:varchar(40)"`
	Message    string `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Batch) TableName() string    { return "batches" }
func (Artifact) TableName() string { return "artifacts" }
func (Failure) TableName() string  { return "failures" }
