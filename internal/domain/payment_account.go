package domain

// PaymentAccount реквизиты для ручного перевода
type PaymentAccount struct {
	ID      int64
	Upi     string // UPI ID
	Phone   string // номер для перевода по телефону
	Scanner string // URL изображения QR-кода, может быть пустым
}

// HasScanner true, если для реквизитов загружен QR-код
func (a *PaymentAccount) HasScanner() bool {
	return a.Scanner != ""
}
