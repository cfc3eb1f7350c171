package payment_accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

type MockPaymentAccountRepository struct {
	mock.Mock
}

func (m *MockPaymentAccountRepository) List(ctx context.Context) ([]domain.PaymentAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentAccount), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_List(t *testing.T) {
	repo := new(MockPaymentAccountRepository)
	repo.On("List", mock.Anything).Return([]domain.PaymentAccount{
		{ID: 1, Upi: "arena@upi", Phone: "9618614860", Scanner: "http://localhost:8080/uploads/qr.png"},
		{ID: 2, Upi: "backup@upi", Phone: "8125770099"},
	}, nil)

	resp, err := NewService(repo, nopLogger{}).List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, "arena@upi", resp.Accounts[0].Upi)
	assert.Equal(t, "http://localhost:8080/uploads/qr.png", resp.Accounts[0].Scanner)
	assert.Empty(t, resp.Accounts[1].Scanner)
}

func TestService_List_Error(t *testing.T) {
	repo := new(MockPaymentAccountRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewService(repo, nopLogger{}).List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
