package txwatch

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoCheckpointFound is returned by LoadCheckpoint when no snapshot has
// been saved yet for the requested wallet.
var ErrNoCheckpointFound = errors.New("no checkpoint found for wallet")

// TransactionState is the part of a transaction the watcher compares between
// refreshes.
type TransactionState struct {
	NumConfirmations uint64 `json:"numConfirmations"`
	Executable       bool   `json:"executable"`
	Executed         bool   `json:"executed"`
}

// Snapshot maps transaction indexes to their last observed state.
type Snapshot map[uint64]TransactionState

// CheckpointStorage persists the last snapshot observed for each wallet so a
// restarted watcher does not report the same changes twice.
type CheckpointStorage interface {
	// SaveCheckpoint replaces the snapshot stored for wallet.
	SaveCheckpoint(ctx context.Context, wallet common.Address, snapshot Snapshot) error

	// LoadCheckpoint returns the snapshot stored for wallet, or
	// ErrNoCheckpointFound if there is none.
	LoadCheckpoint(ctx context.Context, wallet common.Address) (Snapshot, error)
}

type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, common.Address, Snapshot) error {
	return nil
}

func (nopCheckpoint) LoadCheckpoint(context.Context, common.Address) (Snapshot, error) {
	return nil, ErrNoCheckpointFound
}
