package santa

import "errors"

// Configuration sentinels. Returned before any attempt runs.
var (
	// ErrInvalidRules is returned for a rule set with a non-finite grandfather period.
	ErrInvalidRules = errors.New("santa: invalid rules")

	// ErrInvalidRigging is returned for rigging that references unknown names,
	// rigs someone to themselves, forces two givers onto one receiver, or
	// closes a loop shorter than the whole registry.
	ErrInvalidRigging = errors.New("santa: invalid rigging")

	// ErrTooFewParticipants is returned when fewer than two people take part.
	ErrTooFewParticipants = errors.New("santa: need at least two participants")

	// ErrInvalidOptions is returned for a negative attempt budget.
	ErrInvalidOptions = errors.New("santa: invalid options")
)

// Attempt sentinels. They describe why a single attempt was discarded and
// never escape Generate except through Failure.Err in logs.
var (
	// ErrNoViableReceiver: the current giver's row has no weight left.
	ErrNoViableReceiver = errors.New("santa: no viable receiver")

	// ErrRiggedClosure: a rigged giver is forced onto the initial giver before
	// the cycle may close.
	ErrRiggedClosure = errors.New("santa: rigged receiver would close the cycle early")

	// ErrRiggedTaken: a rigged giver's forced receiver has already received.
	ErrRiggedTaken = errors.New("santa: rigged receiver already taken")
)

// ErrBudgetExhausted is the terminal failure of Generate: no attempt within
// the budget produced a complete list.
var ErrBudgetExhausted = errors.New("santa: no valid list found, try loosening the rules")

// List-check sentinels returned by Check.
var (
	// ErrIncompleteList: wrong length, unknown name, or someone gives/receives twice.
	ErrIncompleteList = errors.New("santa: list does not cover every participant once")

	// ErrNotSingleCycle: the list decomposes into more than one loop.
	ErrNotSingleCycle = errors.New("santa: list is not a single cycle")

	// ErrSelfGift: someone gives to themselves.
	ErrSelfGift = errors.New("santa: participant gives to themselves")

	// ErrExcludedPair: a pair has zero weight in the initial giving matrix
	// (partner exclusion or most-recent history).
	ErrExcludedPair = errors.New("santa: pair is excluded by the rules")

	// ErrTriangle: A gives to B and B gives to A's partner.
	ErrTriangle = errors.New("santa: triangle")

	// ErrCoupleToCouple: A gives to B and A's partner gives to B's partner.
	ErrCoupleToCouple = errors.New("santa: couple to couple")

	// ErrRiggingViolated: a rigged giver does not give to the forced receiver.
	ErrRiggingViolated = errors.New("santa: rigging not honoured")
)
