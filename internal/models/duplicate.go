package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DuplicateVerdictKind string

const (
	DuplicateVerdictNone      DuplicateVerdictKind = "not_duplicate"
	DuplicateVerdictPossible  DuplicateVerdictKind = "possible_duplicate"
	DuplicateVerdictConfirmed DuplicateVerdictKind = "confirmed_duplicate"
)

// FuzzyMatch names the ledger transaction that tripped the heuristic check.
type FuzzyMatch struct {
	LedgerID string          `json:"ledgerId"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Payee    string          `json:"payee"`
}

// DuplicateEvidence records what every check found, regardless of the final
// verdict. It is part of the detector's contract, not an optional extra: the
// caller can always explain a verdict, including NotDuplicate, from it.
type DuplicateEvidence struct {
	Reference      string      `json:"reference"`
	ReferenceMatch bool        `json:"referenceMatch"`
	ImportIDMatch  bool        `json:"importIdMatch"`
	Fuzzy          *FuzzyMatch `json:"fuzzy,omitempty"`
}

// DuplicateVerdict is the detector's tri-state outcome. Reference is set for
// confirmed verdicts, Reason for possible ones. A fuzzy hit never upgrades to
// confirmed: two unrelated same-day same-amount purchases at one merchant are
// plausible, a reference or import-id hit is not.
type DuplicateVerdict struct {
	Kind      DuplicateVerdictKind `json:"kind"`
	Reference string               `json:"reference,omitempty"`
	Reason    string               `json:"reason,omitempty"`
	Evidence  DuplicateEvidence    `json:"evidence"`
}

func (v DuplicateVerdict) Confirmed() bool {
	return v.Kind == DuplicateVerdictConfirmed
}
