package models

import (
	"regexp"
	"strings"
	"time"
)

type PatternKind string

const (
	PatternKindContains PatternKind = "contains"
	PatternKindExact    PatternKind = "exact"
	PatternKindRegex    PatternKind = "regex"
)

func (k PatternKind) Valid() bool {
	switch k {
	case PatternKindContains, PatternKindExact, PatternKindRegex:
		return true
	default:
		return false
	}
}

type RuleField string

const (
	RuleFieldPayee    RuleField = "payee"
	RuleFieldMemo     RuleField = "memo"
	RuleFieldCombined RuleField = "payee_memo"
)

func (f RuleField) Valid() bool {
	switch f {
	case RuleFieldPayee, RuleFieldMemo, RuleFieldCombined:
		return true
	default:
		return false
	}
}

// Rule assigns a budget category to bank transactions whose target field
// matches the pattern. Lower priority number wins; ties break by insertion
// order (id).
type Rule struct {
	ID            uint64
	Name          string
	Pattern       string
	Kind          PatternKind
	Field         RuleField
	CategoryID    string
	CategoryName  string
	PayeeOverride string
	Priority      int
	Enabled       bool
	LastMatchedAt *time.Time
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// TargetText extracts the rule's target field from a bank transaction. The
// combined field joins payee and memo with a single space.
func (r Rule) TargetText(tx BankTransaction) string {
	switch r.Field {
	case RuleFieldMemo:
		return tx.Memo
	case RuleFieldCombined:
		return tx.Payee + " " + tx.Memo
	default:
		return tx.Payee
	}
}

// Matches evaluates the rule's pattern against the transaction. All kinds
// compare case-insensitively. An invalid regular expression is a non-match:
// pattern validity is checked at save time, never enforced on the hot path.
func (r Rule) Matches(tx BankTransaction) bool {
	target := r.TargetText(tx)

	switch r.Kind {
	case PatternKindContains:
		return strings.Contains(strings.ToLower(target), strings.ToLower(r.Pattern))
	case PatternKindExact:
		return strings.EqualFold(target, r.Pattern)
	case PatternKindRegex:
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return false
		}
		return re.MatchString(target)
	default:
		return false
	}
}

// ValidatePattern rejects a pattern that cannot compile under its declared
// kind. Only regex kinds can fail; this is the save-time half of the
// never-throw-at-match-time contract.
func ValidatePattern(kind PatternKind, pattern string) error {
	if kind != PatternKindRegex {
		return nil
	}
	if _, err := regexp.Compile("(?i)" + pattern); err != nil {
		return GetErrMap(ErrKeyRulePatternInvalid, err.Error())
	}
	return nil
}

func (r *Rule) ConvertToRuleOut() *RuleOut {
	return &RuleOut{
		Kind:          "rule",
		ID:            r.ID,
		Name:          r.Name,
		Pattern:       r.Pattern,
		PatternKind:   r.Kind,
		Field:         r.Field,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		PayeeOverride: r.PayeeOverride,
		Priority:      r.Priority,
		Enabled:       r.Enabled,
		LastMatchedAt: r.LastMatchedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type CreateRuleIn struct {
	Name          string
	Pattern       string
	Kind          PatternKind
	Field         RuleField
	CategoryID    string
	CategoryName  string
	PayeeOverride string
	Priority      int
	Enabled       bool
}

type UpdateRuleIn struct {
	ID uint64
	CreateRuleIn
}

type RuleOut struct {
	Kind          string      `json:"kind"`
	ID            uint64      `json:"id"`
	Name          string      `json:"name"`
	Pattern       string      `json:"pattern"`
	PatternKind   PatternKind `json:"patternKind"`
	Field         RuleField   `json:"field"`
	CategoryID    string      `json:"categoryId"`
	CategoryName  string      `json:"categoryName"`
	PayeeOverride string      `json:"payeeOverride,omitempty"`
	Priority      int         `json:"priority"`
	Enabled       bool        `json:"enabled"`
	LastMatchedAt *time.Time  `json:"lastMatchedAt"`
	CreatedAt     *time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt"`
}

type CreateRuleRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Pattern       string `json:"pattern" validate:"required,min=1,max=500"`
	PatternKind   string `json:"patternKind" validate:"required,oneof=contains exact regex"`
	Field         string `json:"field" validate:"required,oneof=payee memo payee_memo"`
	CategoryID    string `json:"categoryId" validate:"required"`
	CategoryName  string `json:"categoryName" validate:"required"`
	PayeeOverride string `json:"payeeOverride" validate:"max=200"`
	Priority      int    `json:"priority" validate:"gte=0"`
	Enabled       bool   `json:"enabled"`
}

func (r CreateRuleRequest) ConvertToCreateRuleIn() CreateRuleIn {
	return CreateRuleIn{
		Name:          r.Name,
		Pattern:       r.Pattern,
		Kind:          PatternKind(r.PatternKind),
		Field:         RuleField(r.Field),
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		PayeeOverride: r.PayeeOverride,
		Priority:      r.Priority,
		Enabled:       r.Enabled,
	}
}

// ListRulesOptions filters the rule list query.
type ListRulesOptions struct {
	EnabledOnly bool
}
