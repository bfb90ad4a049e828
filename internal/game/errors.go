package game

import "errors"

var (
	ErrInvalidState           = errors.New("invalid_state")
	ErrInsufficientPlayers    = errors.New("insufficient_players")
	ErrDealFailure            = errors.New("deal_failure")
	ErrRoundAlreadyInProgress = errors.New("round_already_in_progress")
	ErrWaitingForHost         = errors.New("waiting_for_host")
	ErrPlayerNotFound         = errors.New("player_not_found")
	ErrInsufficientChips      = errors.New("insufficient_chips")
	ErrBidTooLow              = errors.New("bid_too_low")
	ErrDuplicateID            = errors.New("duplicate_id")
	ErrNotAuthorized          = errors.New("not_authorized")
	ErrValidation             = errors.New("validation_error")
)
