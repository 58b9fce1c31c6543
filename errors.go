package tontine

import "errors"

// Sentinel errors for the ledger engine. Callers discriminate with
// errors.Is; messages carry the specifics.
var (
	// ErrValidation reports a malformed or incomplete input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound reports a reference to a member, tontine or payment that
	// does not exist in the ledger.
	ErrNotFound = errors.New("not found")
	// ErrDuplicatePayment reports a second contribution for the same member
	// and round, or a second payout for the same round.
	ErrDuplicatePayment = errors.New("duplicate payment")
	// ErrOutOfSequence reports a contribution attempted before all previous
	// rounds were paid by that member.
	ErrOutOfSequence = errors.New("out of sequence")
	// ErrAmountMismatch reports a paid amount different from the expected
	// contribution plus penalty.
	ErrAmountMismatch = errors.New("amount mismatch")
	// ErrIncompleteRound reports a payout attempted before every member has
	// contributed to the round.
	ErrIncompleteRound = errors.New("incomplete round")
	// ErrBadFormat reports an import payload that does not have the expected
	// shape.
	ErrBadFormat = errors.New("bad format")
	// ErrStorage wraps failures from the persistence gateway.
	ErrStorage = errors.New("storage")
)
