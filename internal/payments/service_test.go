package payments

import (
	"context"
	"testing"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPaymentTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Payment{}))
	return &Service{DB: db}
}

func TestCreatePayment(t *testing.T) {
	s := setupPaymentTest(t)

	payment, err := s.CreatePayment(context.Background(), CreatePaymentInput{
		PaymentRef:    "PAY-2026-0001",
		CompanyName:   "Lanka Agro Ltd",
		Amount:        50000,
		PaymentMethod: models.PaymentMethodOnline,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ID)

	// Same reference twice is rejected.
	_, err = s.CreatePayment(context.Background(), CreatePaymentInput{
		PaymentRef:    "PAY-2026-0001",
		CompanyName:   "Lanka Agro Ltd",
		Amount:        60000,
		PaymentMethod: models.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestCreatePayment_Validation(t *testing.T) {
	s := setupPaymentTest(t)

	cases := []struct {
		name string
		in   CreatePaymentInput
	}{
		{"missing ref", CreatePaymentInput{CompanyName: "X", Amount: 10, PaymentMethod: models.PaymentMethodCash}},
		{"missing company", CreatePaymentInput{PaymentRef: "P1", Amount: 10, PaymentMethod: models.PaymentMethodCash}},
		{"zero amount", CreatePaymentInput{PaymentRef: "P1", CompanyName: "X", PaymentMethod: models.PaymentMethodCash}},
		{"bad method", CreatePaymentInput{PaymentRef: "P1", CompanyName: "X", Amount: 10, PaymentMethod: "cheque"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreatePayment(context.Background(), tc.in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
		})
	}
}

func TestUpdatePayment(t *testing.T) {
	s := setupPaymentTest(t)
	payment, err := s.CreatePayment(context.Background(), CreatePaymentInput{
		PaymentRef:    "PAY-2026-0002",
		CompanyName:   "Lanka Agro Ltd",
		Amount:        50000,
		PaymentMethod: models.PaymentMethodCard,
	})
	require.NoError(t, err)

	amount := 75000.0
	updated, err := s.UpdatePayment(context.Background(), UpdatePaymentInput{
		ID:     payment.ID,
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, 75000.0, updated.Amount)
	assert.Equal(t, "PAY-2026-0002", updated.PaymentRef) // reference is immutable

	_, err = s.UpdatePayment(context.Background(), UpdatePaymentInput{ID: payment.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)

	_, err = s.UpdatePayment(context.Background(), UpdatePaymentInput{ID: uuid.New(), Amount: &amount})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestDeletePayment(t *testing.T) {
	s := setupPaymentTest(t)
	payment, err := s.CreatePayment(context.Background(), CreatePaymentInput{
		PaymentRef:    "PAY-2026-0003",
		CompanyName:   "Lanka Agro Ltd",
		Amount:        50000,
		PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeletePayment(context.Background(), payment.ID))
	err = s.DeletePayment(context.Background(), payment.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}
