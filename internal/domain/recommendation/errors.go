package recommendation

import "errors"

var (
	ErrOverrideMissingTarget  = errors.New("override requires a user id and an item id")
	ErrInvalidOverrideAction  = errors.New("override action must be approve or reject")
	ErrOverrideReasonRequired = errors.New("override reason is required for the audit trail")
)
