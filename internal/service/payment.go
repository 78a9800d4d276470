// File: internal/service/payment.go
package service

import (
	"regexp"

	"reservas/internal/domain"
)

// 卡號必須是連續 16 位數字，僅做格式檢查，不做 Luhn 或 CVV 驗證
var cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)

// ValidateCardNumber 驗證卡號格式，不合法時回傳 domain.ValidationError
func ValidateCardNumber(cardNumber string) error {
	if !cardNumberPattern.MatchString(cardNumber) {
		return domain.ValidationError{Field: "card_number", Msg: "invalid card number"}
	}
	return nil
}
