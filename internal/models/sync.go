package models

// Request and response shapes of the sync session API.

type SessionOut struct {
	Kind          string                 `json:"kind"`
	ID            string                 `json:"id"`
	State         SessionState           `json:"state"`
	StartedAt     string                 `json:"startedAt"`
	CompletedAt   string                 `json:"completedAt,omitempty"`
	FailureReason string                 `json:"failureReason,omitempty"`
	Counts        SessionCounts          `json:"counts"`
	Transactions  []*InFlightTransaction `json:"transactions"`
}

func (s *Session) ConvertToSessionOut() *SessionOut {
	out := &SessionOut{
		Kind:          "syncSession",
		ID:            s.ID,
		State:         s.State,
		StartedAt:     s.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		FailureReason: s.FailureReason,
		Counts:        s.Counts,
		Transactions:  s.Transactions,
	}
	if s.CompletedAt != nil {
		out.CompletedAt = s.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return out
}

// StartSyncOut also carries the bank challenge so a UI can prompt the user.
type StartSyncOut struct {
	Kind      string      `json:"kind"`
	Session   *SessionOut `json:"session"`
	Challenge string      `json:"challenge,omitempty"`
}

// UpdateTransactionRequest applies one review edit to one in-flight
// transaction. Fields are pointers so "absent" and "set to empty" stay
// distinguishable; each present field is applied idempotently. An explicit
// empty categoryId clears the category assignment.
type UpdateTransactionRequest struct {
	CategoryID    *string `json:"categoryId"`
	CategoryName  *string `json:"categoryName" validate:"omitempty,max=200"`
	PayeeOverride *string `json:"payeeOverride" validate:"omitempty,max=200"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
	Skipped       *bool   `json:"skipped"`
}

type SplitRequest struct {
	CategoryID   string `json:"categoryId" validate:"required"`
	CategoryName string `json:"categoryName" validate:"required"`
	Amount       string `json:"amount" validate:"required,decimalAmount"`
	Memo         string `json:"memo" validate:"max=200"`
}

type CreateSplitsRequest struct {
	Splits []SplitRequest `json:"splits" validate:"required,min=2,dive"`
}

type ReimportRequest struct {
	TransactionIDs []string `json:"transactionIds" validate:"required,min=1"`
}
