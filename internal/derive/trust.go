// Package derive holds the pure functions computed over entity collections
// fetched through the storage facade: tenant trust scoring, stay-duration
// bucketing and date-keyed system alerts. Nothing here touches storage.
package derive

import (
	"strings"

	"github.com/rentport/rentport/internal/storage"
)

// Canonical trust-score formula. Scoring starts from trustBase and is
// adjusted per history record: payment and join events add, negative
// keywords in the free-text description subtract (one deduction per
// record, strongest match only), appreciative keywords add. The result is
// clamped to [0, 100].
const (
	trustBase     = 50
	paymentBonus  = 5
	positiveBonus = 3
	negativePen   = 5
)

var negativeKeywords = []string{"late", "issue", "warning", "complaint"}
var positiveKeywords = []string{"appreciate", "good"}

// TrustScore computes the tenant trust score from their history sequence
func TrustScore(records []*storage.History) int {
	score := trustBase
	for _, rec := range records {
		switch rec.Type {
		case "payment", "join":
			score += paymentBonus
		}

		desc := strings.ToLower(rec.Description)
		if containsAny(desc, negativeKeywords) {
			score -= negativePen
		} else if containsAny(desc, positiveKeywords) {
			score += positiveBonus
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
