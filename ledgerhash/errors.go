package ledgerhash

import "errors"

// Sentinel errors for malformed domain records.
var (
	// ErrEmptyIntersectionID indicates a missing intersection identifier.
	ErrEmptyIntersectionID = errors.New("ledgerhash: intersection id must be non-empty")
	// ErrNoSignals indicates an intersection record without signal states.
	ErrNoSignals = errors.New("ledgerhash: at least one direction signal state is required")
	// ErrNoVehicleCounts indicates an intersection record without vehicle counts.
	ErrNoVehicleCounts = errors.New("ledgerhash: at least one direction vehicle count is required")
	// ErrEmptyPreviousHash indicates a block record without a previous hash;
	// genesis blocks pass the conventional "0".
	ErrEmptyPreviousHash = errors.New("ledgerhash: previous hash must be non-empty")
	// ErrNoTransactions indicates a block record with no transactions.
	ErrNoTransactions = errors.New("ledgerhash: at least one transaction is required")
	// ErrEmptyTransaction indicates an empty entry in the transaction list.
	ErrEmptyTransaction = errors.New("ledgerhash: transactions must be non-empty")
)
