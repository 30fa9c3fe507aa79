package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application"
	"github.com/DanielPopoola/ficmart-payments-service/internal/application/services"
	"github.com/DanielPopoola/ficmart-payments-service/internal/domain"
	"github.com/DanielPopoola/ficmart-payments-service/internal/infrastructure/metrics"
	"github.com/DanielPopoola/ficmart-payments-service/internal/infrastructure/persistence/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	repo    *memory.PaymentRepository
	service *services.PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// SetupTest runs before each test
func (suite *PaymentServiceTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.repo = memory.NewPaymentRepository()
	suite.service = services.NewPaymentService(suite.repo, logger, metrics.New(prometheus.NewRegistry()))
}

func defaultCommand() services.RequestPaymentCommand {
	return services.RequestPaymentCommand{
		AmountMinor:    1250,
		Currency:       "USD",
		OrderID:        "order-123",
		IdempotencyKey: "idem-key-12345678",
		Metadata:       map[string]string{"user_id": "user-789"},
	}
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_Success() {
	ctx := context.Background()
	t := suite.T()

	payment, err := suite.service.RequestPayment(ctx, defaultCommand())

	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, domain.StatusPending, payment.Status)
	assert.Equal(t, int64(1250), payment.AmountMinor)
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, "order-123", payment.OrderID)
	assert.Equal(t, domain.DefaultInitiatedMessage, payment.Message)
	assert.Equal(t, "user-789", payment.Metadata["user_id"])

	count, err := suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_IdenticalRetryReturnsSamePayment() {
	ctx := context.Background()
	t := suite.T()

	first, err := suite.service.RequestPayment(ctx, defaultCommand())
	require.NoError(t, err)

	second, err := suite.service.RequestPayment(ctx, defaultCommand())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first, second)

	count, err := suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "retry must not create a second record")
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_MismatchedPayloadUnderSameKey_FirstWriteWins() {
	ctx := context.Background()
	t := suite.T()

	first, err := suite.service.RequestPayment(ctx, defaultCommand())
	require.NoError(t, err)

	conflicting := services.RequestPaymentCommand{
		AmountMinor:    9999,
		Currency:       "EUR",
		OrderID:        "order-other",
		IdempotencyKey: first.IdempotencyKey,
		Metadata:       map[string]string{"user_id": "intruder"},
	}

	second, err := suite.service.RequestPayment(ctx, conflicting)
	require.NoError(t, err)

	// The stored payload wins in every field; the new one is silently ignored.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1250), second.AmountMinor)
	assert.Equal(t, "USD", second.Currency)
	assert.Equal(t, "order-123", second.OrderID)
	assert.Equal(t, "user-789", second.Metadata["user_id"])

	count, err := suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_ValidationPrecedence() {
	ctx := context.Background()
	t := suite.T()

	cmd := services.RequestPaymentCommand{
		AmountMinor:    -100,
		Currency:       "XXX",
		OrderID:        "",
		IdempotencyKey: "",
	}

	_, err := suite.service.RequestPayment(ctx, cmd)

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "Invalid amount")
	assert.Contains(t, err.Error(), "positive")

	count, cErr := suite.repo.Count(ctx)
	require.NoError(t, cErr)
	assert.Equal(t, 0, count, "a rejected request must not touch the store")
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_UnsupportedCurrency() {
	ctx := context.Background()
	t := suite.T()

	cmd := defaultCommand()
	cmd.Currency = "XXX"
	cmd.IdempotencyKey = "idem-key-fresh-0001"

	_, err := suite.service.RequestPayment(ctx, cmd)

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "Unsupported currency")
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_NormalizesCurrency() {
	ctx := context.Background()
	t := suite.T()

	cmd := defaultCommand()
	cmd.Currency = "usd"

	payment, err := suite.service.RequestPayment(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "USD", payment.Currency)

	stored, found, err := suite.repo.FindByIdempotencyKey(ctx, cmd.IdempotencyKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "USD", stored.Currency)
}

func (suite *PaymentServiceTestSuite) Test_GetPayment_RoundTrip() {
	ctx := context.Background()
	t := suite.T()

	created, err := suite.service.RequestPayment(ctx, defaultCommand())
	require.NoError(t, err)

	fetched, found, err := suite.service.GetPayment(ctx, created.ID)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, fetched, "lookup must return the payment field-for-field")
}

func (suite *PaymentServiceTestSuite) Test_GetPayment_NotFound() {
	ctx := context.Background()
	t := suite.T()

	_, found, err := suite.service.GetPayment(ctx, "any-id-never-issued")

	require.NoError(t, err, "absence is a normal outcome, not a failure")
	assert.False(t, found)
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_ConcurrentDistinctKeys() {
	ctx := context.Background()
	t := suite.T()

	const numRequests = 50

	var wg sync.WaitGroup
	results := make(chan domain.Payment, numRequests)
	failures := make(chan error, numRequests)

	for i := range numRequests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd := services.RequestPaymentCommand{
				AmountMinor:    int64(100 + i),
				Currency:       "USD",
				OrderID:        fmt.Sprintf("order-%d", i),
				IdempotencyKey: fmt.Sprintf("idem-key-%08d", i),
			}
			payment, err := suite.service.RequestPayment(ctx, cmd)
			if err != nil {
				failures <- err
				return
			}
			results <- payment
		}()
	}

	wg.Wait()
	close(results)
	close(failures)

	for err := range failures {
		t.Errorf("unexpected error: %v", err)
	}

	count, err := suite.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, numRequests, count)

	// Every record keeps its own fields; nothing bled across goroutines.
	for payment := range results {
		stored, found, err := suite.repo.FindByIdempotencyKey(ctx, payment.IdempotencyKey)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, payment, stored)
		assert.Equal(t, fmt.Sprintf("idem-key-%08d", payment.AmountMinor-100), payment.IdempotencyKey)
		assert.Equal(t, fmt.Sprintf("order-%d", payment.AmountMinor-100), payment.OrderID)
	}
}

func (suite *PaymentServiceTestSuite) Test_RequestPayment_ConcurrentSameKey() {
	ctx := context.Background()
	t := suite.T()

	const numRequests = 10

	var wg sync.WaitGroup
	results := make(chan domain.Payment, numRequests)

	for range numRequests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payment, err := suite.service.RequestPayment(ctx, defaultCommand())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- payment
		}()
	}

	wg.Wait()
	close(results)

	// Afterward exactly one payment is durably reachable by the key; every
	// caller got a fully formed payment with the requested payload.
	final, found, err := suite.repo.FindByIdempotencyKey(ctx, "idem-key-12345678")
	require.NoError(t, err)
	require.True(t, found)

	for payment := range results {
		assert.Equal(t, int64(1250), payment.AmountMinor)
		assert.Equal(t, "USD", payment.Currency)
		assert.Equal(t, domain.StatusPending, payment.Status)
	}
	assert.Equal(t, "idem-key-12345678", final.IdempotencyKey)
}

// failingRepository simulates an unreachable backend for StoreFailure
// propagation.
type failingRepository struct {
	err error
}

var _ domain.PaymentRepository = (*failingRepository)(nil)

func (f *failingRepository) Save(context.Context, domain.Payment) (domain.Payment, error) {
	return domain.Payment{}, f.err
}

func (f *failingRepository) FindByID(context.Context, string) (domain.Payment, bool, error) {
	return domain.Payment{}, false, f.err
}

func (f *failingRepository) FindByIdempotencyKey(context.Context, string) (domain.Payment, bool, error) {
	return domain.Payment{}, false, f.err
}

func (f *failingRepository) Clear(context.Context) error      { return f.err }
func (f *failingRepository) Count(context.Context) (int, error) { return 0, f.err }

func TestPaymentService_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("backend unreachable")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := services.NewPaymentService(&failingRepository{err: storeErr}, logger, metrics.New(prometheus.NewRegistry()))

	_, err := service.RequestPayment(context.Background(), defaultCommand())

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
	assert.ErrorIs(t, err, storeErr, "the store failure must stay reachable through the chain")

	_, _, err = service.GetPayment(context.Background(), "some-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
