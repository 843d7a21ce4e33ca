package txwatch

import (
	"encoding/json"

	"github.com/gabapcia/multiguard/internal/multisig"
)

// EventType names what changed about a transaction.
type EventType string

const (
	// EventSubmitted reports a transaction index seen for the first time.
	EventSubmitted EventType = "submitted"

	// EventConfirmed reports a rise in a transaction's confirmation count.
	EventConfirmed EventType = "confirmed"

	// EventExecutable reports a transaction that reached the wallet threshold.
	EventExecutable EventType = "executable"

	// EventExecuted reports a transaction that was executed.
	EventExecuted EventType = "executed"

	// EventRefreshFailed reports a refresh that failed after every retry.
	// Err holds the cause and Transaction is empty.
	EventRefreshFailed EventType = "refresh_failed"
)

// Event is emitted by Watch for every observed change.
type Event struct {
	Type        EventType
	Wallet      string
	Transaction multisig.PendingTransaction
	Err         error
}

// MarshalJSON renders the event with its error as a string.
func (e Event) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        EventType                    `json:"type"`
		Wallet      string                       `json:"wallet"`
		Transaction *multisig.PendingTransaction `json:"transaction,omitempty"`
		Error       string                       `json:"error,omitempty"`
	}{
		Type:   e.Type,
		Wallet: e.Wallet,
	}

	if e.Err != nil {
		out.Error = e.Err.Error()
	} else {
		out.Transaction = &e.Transaction
	}

	return json.Marshal(out)
}

// stateOf extracts the compared fields of tx.
func stateOf(tx multisig.PendingTransaction) TransactionState {
	return TransactionState{
		NumConfirmations: tx.NumConfirmations,
		Executable:       tx.CanExecute,
		Executed:         tx.Executed,
	}
}

// diff compares txs against prev and returns the resulting events together
// with the new snapshot. A nil prev marks the first refresh without a
// checkpoint: it only reports existing transactions when announce is set.
func diff(wallet string, prev Snapshot, txs []multisig.PendingTransaction, announce bool) ([]Event, Snapshot) {
	var (
		events = make([]Event, 0)
		next   = make(Snapshot, max(len(txs), len(prev)))
	)

	// Transactions are never removed, so an index missing from txs comes
	// from a shortened listing and keeps its previous state.
	for index, state := range prev {
		next[index] = state
	}

	for _, tx := range txs {
		state := stateOf(tx)
		next[tx.Index] = state

		event := func(t EventType) {
			events = append(events, Event{Type: t, Wallet: wallet, Transaction: tx})
		}

		old, seen := prev[tx.Index]
		if !seen {
			if prev == nil && !announce {
				continue
			}

			event(EventSubmitted)
			if state.Executable {
				event(EventExecutable)
			}
			if state.Executed {
				event(EventExecuted)
			}
			continue
		}

		if state.NumConfirmations > old.NumConfirmations {
			event(EventConfirmed)
		}
		if state.Executable && !old.Executable {
			event(EventExecutable)
		}
		if state.Executed && !old.Executed {
			event(EventExecuted)
		}
	}

	return events, next
}

// changed reports whether two snapshots differ.
func changed(a, b Snapshot) bool {
	if len(a) != len(b) {
		return true
	}

	for index, state := range a {
		if other, ok := b[index]; !ok || other != state {
			return true
		}
	}

	return false
}
