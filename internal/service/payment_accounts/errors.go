package payment_accounts

import "errors"

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("payment_accounts.service: internal error")
