// Package classify assigns documents to the closed taxonomy using
// keyword and pattern signals over normalized OCR text.
//
// The rules are deliberately simple: substring counting over curated
// keyword lists is cheap, explainable, and robust against noisy OCR
// output where exact-field extraction is unreliable.
package classify

import (
	"regexp"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// govKeywords are phrases typical of Vietnamese official dispatches:
// state-name boilerplate, salutation and urgency markers, government
// body names, and the numbering marker.
var govKeywords = []string{
	"cộng hòa xã hội chủ nghĩa việt nam",
	"độc lập - tự do - hạnh phúc",
	"công điện",
	"kính gửi",
	"số:",
	"khẩn",
	"hỏa tốc",
	"bộ ",
	"ủy ban nhân dân",
	"thủ tướng",
	"chính phủ",
}

// invoiceKeywords mix English and Vietnamese invoice, receipt, tax and
// total vocabulary.
var invoiceKeywords = []string{
	"invoice", "receipt", "vat", "tax", "subtotal", "total", "amount",
	"cashier", "change", "paid", "payment",
	"hóa đơn", "hoá đơn", "mã số thuế", "tổng cộng", "thành tiền", "tiền mặt",
	"số hóa đơn", "số hoá đơn", "ngày bán", "đơn giá", "số lượng",
}

// moneyLike matches a numeric token, optionally grouped by "." or ","
// thousand separators, followed after optional whitespace by a currency
// marker.
var moneyLike = regexp.MustCompile(`(\d{1,3}([.,]\d{3})+|\d+)\s*(vnd|đ|usd|\$)`)

// Classify assigns a taxonomy label to raw OCR text. Rules are ordered
// and the first match wins:
//
//  1. Two or more government phrases present: Government Telegram.
//  2. Two or more invoice keywords, or one keyword plus a money-like
//     pattern anywhere in the text: Invoice.
//  3. Otherwise: Normal.
//
// Matching is case-insensitive substring containment against the
// normalized text; each list entry counts at most once no matter how
// often it occurs. Deterministic, stateless, and total.
func Classify(raw string) domain.DocType {
	t := Normalize(raw)

	if countHits(t, govKeywords) >= 2 {
		return domain.DocTypeGovTelegram
	}

	invHits := countHits(t, invoiceKeywords)
	if invHits >= 2 || (invHits >= 1 && moneyLike.MatchString(t)) {
		return domain.DocTypeInvoice
	}

	return domain.DocTypeNormal
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
