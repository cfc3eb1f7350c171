package models

import "github.com/m04kA/SMC-BoxBooking/internal/domain"

// PaymentAccountResponse реквизиты для перевода
type PaymentAccountResponse struct {
	ID      int64  `json:"id"`
	Upi     string `json:"Upi"`
	Phone   string `json:"Phone"`
	Scanner string `json:"Scanner,omitempty"`
}

// PaymentAccountListResponse список реквизитов
type PaymentAccountListResponse struct {
	Accounts []PaymentAccountResponse `json:"accounts"`
}

// FromDomainAccounts конвертирует реквизиты в ответ
func FromDomainAccounts(accounts []domain.PaymentAccount) *PaymentAccountListResponse {
	out := make([]PaymentAccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = PaymentAccountResponse{
			ID:      a.ID,
			Upi:     a.Upi,
			Phone:   a.Phone,
			Scanner: a.Scanner,
		}
	}
	return &PaymentAccountListResponse{Accounts: out}
}
