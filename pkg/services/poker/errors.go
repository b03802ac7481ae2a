package poker

import "errors"

var (
	ErrInvalidCardinality   = errors.New("hand must contain exactly 5 cards")
	ErrInvalidCard          = errors.New("invalid card")
	ErrImpossibleRepetition = errors.New("impossible rank repetition")
	ErrUnclassifiedHand     = errors.New("hand has not been classified")
	ErrUnknownCategory      = errors.New("unknown hand category")
	ErrGroupMismatch        = errors.New("repetition groups differ in shape")
	ErrUnpairedHand         = errors.New("hands must be compared in pairs")
)
