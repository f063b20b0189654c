package models

import "time"

// Setting is one entry of the flat key-value settings map. The Encrypted flag
// is understood by the store (values marked encrypted are sealed at rest);
// the reconciliation core only carries it through.
type Setting struct {
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	Encrypted bool       `json:"encrypted"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Settings keys the sync orchestrator reads; config supplies defaults, the
// store overrides them.
const (
	SettingKeyBankAccountRef    = "bank.account_ref"
	SettingKeyLedgerBudgetID    = "ledger.budget_id"
	SettingKeyLedgerAccountID   = "ledger.account_id"
	SettingKeyFetchWindowDays   = "sync.fetch_window_days"
	SettingKeyDateToleranceDays = "sync.date_tolerance_days"
	SettingKeyMemoLimit         = "sync.memo_limit"
)

type UpsertSettingRequest struct {
	Value     string `json:"value" validate:"required"`
	Encrypted bool   `json:"encrypted"`
}

func (s *Setting) ConvertToSettingOut() *SettingOut {
	value := s.Value
	if s.Encrypted {
		value = "*****"
	}
	return &SettingOut{
		Kind:      "setting",
		Key:       s.Key,
		Value:     value,
		Encrypted: s.Encrypted,
		UpdatedAt: s.UpdatedAt,
	}
}

type SettingOut struct {
	Kind      string     `json:"kind"`
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	Encrypted bool       `json:"encrypted"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
