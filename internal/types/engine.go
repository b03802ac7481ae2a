package types

import (
	"errors"

	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/poker"
)

// FromEngineError converts a card or hand evaluation error into a GameError
// with a message fit for players. GameErrors pass through unchanged.
func FromEngineError(err error) *GameError {
	var gameErr *GameError
	if As(err, &gameErr) {
		return gameErr
	}

	switch {
	case errors.Is(err, entities.ErrInvalidNotation),
		errors.Is(err, entities.ErrInvalidRank),
		errors.Is(err, entities.ErrInvalidSuit),
		errors.Is(err, poker.ErrInvalidCard):
		return WrapError(ErrInvalidCard, "Cards look like Ah, 10c, Td or Q♠", err)
	case errors.Is(err, poker.ErrInvalidCardinality):
		return WrapError(ErrInvalidHand, "A hand needs exactly 5 cards", err)
	case errors.Is(err, poker.ErrImpossibleRepetition):
		return WrapError(ErrImpossibleHand, "No deck deals five cards of one rank", err)
	case errors.Is(err, poker.ErrUnpairedHand):
		return WrapError(ErrInvalidArgument, "Hands are compared two at a time", err)
	}
	return WrapError(ErrInternalError, "Something went wrong ranking the hands", err)
}
