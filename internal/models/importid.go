// Import ids and memo references are the two duplicate markers this system
// stamps on everything it writes to the ledger. Their format lives in this one
// file and is shared by the write builder and the duplicate detector; the two
// sides must never re-derive it independently.
package models

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// ImportIDPrefix marks a ledger transaction as written by this system.
	ImportIDPrefix = "BB"

	// ImportIDSeparator joins the prefix and the normalized reference. The
	// same character is stripped from the reference during normalization so
	// the id stays unambiguous.
	ImportIDSeparator = ":"

	// RefMarker introduces the bank reference inside a ledger memo.
	RefMarker = "Ref: "

	// EllipsisMarker prefixes a memo whose body was truncated from the front.
	EllipsisMarker = "..."

	refSuffixLead = ", "
)

// NormalizeReference strips every occurrence of the import-id separator from
// a bank reference. The result is embedded in deterministic import ids and is
// the comparison key when mapping ledger rejections back to transactions.
func NormalizeReference(reference string) string {
	return strings.ReplaceAll(reference, ImportIDSeparator, "")
}

// NewImportID builds the deterministic import id for a bank reference.
func NewImportID(reference string) string {
	return ImportIDPrefix + ImportIDSeparator + NormalizeReference(reference)
}

// NewRandomImportID builds a randomized import id carrying the same prefix.
// Used when the user forces a re-import of a ledger-rejected transaction, so
// the ledger will not reject it again for the same import id.
func NewRandomImportID() string {
	id := uuid.New()
	return ImportIDPrefix + ImportIDSeparator + base64.RawURLEncoding.EncodeToString(id[:])
}

// MatchesImportID reports whether an import id read back from the ledger was
// generated for the given bank reference. A reference that normalizes to the
// empty string never matches: its id would be the bare prefix, which is a
// prefix of every id this system ever wrote.
func MatchesImportID(reference, importID string) bool {
	norm := NormalizeReference(reference)
	if norm == "" {
		return false
	}
	return strings.HasPrefix(importID, ImportIDPrefix+ImportIDSeparator+norm)
}

// StripImportIDPrefix returns the normalized reference embedded in a
// deterministic import id. The inverse of NewImportID for mapping ledger
// rejections back to transactions.
func StripImportIDPrefix(importID string) string {
	return strings.TrimPrefix(importID, ImportIDPrefix+ImportIDSeparator)
}

// RefSuffix is the memo suffix appended by the write builder.
func RefSuffix(reference string) string {
	return refSuffixLead + RefMarker + reference
}

// BuildMemo collapses whitespace runs in the bank memo to single spaces and
// appends the reference suffix. When the result exceeds limit runes the memo
// body is truncated from the front and prefixed with the ellipsis marker; the
// reference suffix always survives in full so ExtractReference recovers the
// original reference from any built memo. If the suffix alone meets or
// exceeds the limit the body is dropped entirely and the result is longer
// than the limit; the reference takes precedence over the limit.
func BuildMemo(memo, reference string, limit int) string {
	body := strings.Join(strings.Fields(memo), " ")
	suffix := RefSuffix(reference)

	full := body + suffix
	if len([]rune(full)) <= limit {
		return full
	}

	bodyRunes := []rune(body)
	keep := limit - len([]rune(suffix)) - len([]rune(EllipsisMarker))
	if keep < 0 {
		keep = 0
	}
	if keep < len(bodyRunes) {
		bodyRunes = bodyRunes[len(bodyRunes)-keep:]
	}

	return EllipsisMarker + string(bodyRunes) + suffix
}

// ExtractReference recovers the bank reference from a memo written by
// BuildMemo. It searches for the full suffix the builder appends, from the
// end, because the memo body or the reference itself may contain the bare
// marker text. A reference that itself contains the full suffix lead stays
// ambiguous; the trailing piece wins.
func ExtractReference(memo string) (string, bool) {
	lead := refSuffixLead + RefMarker
	idx := strings.LastIndex(memo, lead)
	if idx < 0 {
		return "", false
	}
	return memo[idx+len(lead):], true
}

// MemoContainsReference reports whether a ledger memo carries the given bank
// reference in marker form.
func MemoContainsReference(memo, reference string) bool {
	if reference == "" {
		return false
	}
	return strings.Contains(memo, RefMarker+reference)
}

// ImportIDMaxLength is the ledger-side field limit for import ids.
const ImportIDMaxLength = 36

// ValidateImportID guards against references long enough to overflow the
// ledger's import-id field.
func ValidateImportID(importID string) error {
	if len(importID) > ImportIDMaxLength {
		return fmt.Errorf("import id %q exceeds %d characters", importID, ImportIDMaxLength)
	}
	return nil
}
