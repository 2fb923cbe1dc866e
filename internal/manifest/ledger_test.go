package manifest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := Connect(":memory:", false)
	require.NoError(t, err)
	return NewLedger(db)
}

func TestLedgerLifecycle(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	batchID, err := l.StartBatch(ctx, "/contracts")
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)

	require.NoError(t, l.RecordArtifact(ctx, Artifact{
		BatchID:    batchID,
		SourceFile: "Token.sol",
		Contract:   "Token",
		Kind:       "lib",
		OutputPath: "out/token/lib.rs",
		Digest:     "deadbeef",
	}))

	require.NoError(t, l.RecordFailure(ctx, Failure{
		BatchID:    batchID,
		SourceFile: "Broken.sol",
		ErrorKind:  "file_corrupted",
		Message:    "unexpected token",
	}))

	require.NoError(t, l.FinishBatch(ctx, batchID, 2, 1, 1))

	var batch Batch
	require.NoError(t, l.db.First(&batch, "id = ?", batchID).Error)
	assert.Equal(t, 2, batch.FilesSeen)
	assert.Equal(t, 1, batch.FilesOK)
	assert.Equal(t, 1, batch.FilesFailed)
	assert.NotNil(t, batch.EndedAt)
}

func TestLedgerDisabledWithNilReceiver(t *testing.T) {
	var l *Ledger
	assert.False(t, l.IsEnabled())

	ctx := context.Background()
	id, err := l.StartBatch(ctx, "/contracts")
	assert.NoError(t, err)
	assert.Empty(t, id)
	assert.NoError(t, l.RecordArtifact(ctx, Artifact{}))
	assert.NoError(t, l.RecordFailure(ctx, Failure{}))
	assert.NoError(t, l.FinishBatch(ctx, "", 0, 0, 0))
}
