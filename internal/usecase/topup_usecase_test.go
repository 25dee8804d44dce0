package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bakusam_topup/internal/adapter/persistence/memory"
	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/ratelimit"
	"bakusam_topup/internal/usecase/interfaces"
	mock_interfaces "bakusam_topup/internal/usecase/interfaces/mocks"
	"bakusam_topup/internal/validation"

	"go.uber.org/mock/gomock"
)

const (
	testPhone   = "6281234567890"
	testBalance = int64(100_000)
	testAmount  = int64(50_000)
)

type fixture struct {
	store    *memory.PendingOrderStore
	dir      *mock_interfaces.MockIDriverDirectory
	gateway  *mock_interfaces.MockIPaymentGateway
	txlog    *mock_interfaces.MockITransactionLog
	notifier *mock_interfaces.MockINotifier
	uc       *TopupUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:    memory.NewPendingOrderStore(),
		dir:      mock_interfaces.NewMockIDriverDirectory(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		txlog:    mock_interfaces.NewMockITransactionLog(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewTopupUseCase(
		f.store, f.dir, f.gateway, f.txlog, f.notifier,
		ratelimit.NewLimiter(ratelimit.DefaultWindow, ratelimit.DefaultLimit),
		5*time.Second,
	)
	return f
}

func testDriver() entities.Driver {
	return entities.Driver{
		ID:      "DRV-001",
		Name:    "Budi Santoso",
		Phone:   testPhone,
		Email:   "budi@bakusam.com",
		Balance: testBalance,
	}
}

func testHandle() entities.PaymentHandle {
	return entities.PaymentHandle{
		Ref:        "snap-token-abc",
		PaymentURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc",
		ExpiresAt:  time.Now().UTC().Add(24 * time.Hour),
	}
}

// createTestOrder admits one order through the full pipeline and returns
// its ticket.
func createTestOrder(t *testing.T, f *fixture) entities.OrderTicket {
	t.Helper()
	f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), testAmount, testDriver()).Return(testHandle(), nil)

	ticket, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	return ticket
}

func TestTopupUseCase_CreateOrder_Admission(t *testing.T) {
	t.Run("invalid phone", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), "12345", testAmount)
		if !errors.Is(err, validation.ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("amount below minimum", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), testPhone, 999)
		if !errors.Is(err, validation.ErrAmountOutOfRange) {
			t.Fatalf("expected ErrAmountOutOfRange, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("amount above maximum", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.CreateOrder(context.Background(), testPhone, 10_001_000)
		if !errors.Is(err, validation.ErrAmountOutOfRange) {
			t.Fatalf("expected ErrAmountOutOfRange, got %v", err)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		f := newFixture(t)
		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(entities.Driver{}, nil)

		_, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount)
		if !errors.Is(err, ErrUnknownDriver) {
			t.Fatalf("expected ErrUnknownDriver, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("duplicate pending regardless of amount", func(t *testing.T) {
		f := newFixture(t)
		createTestOrder(t, f)

		_, err := f.uc.CreateOrder(context.Background(), testPhone, 25_000)
		if !errors.Is(err, ErrDuplicatePending) {
			t.Fatalf("expected ErrDuplicatePending, got %v", err)
		}
		if f.store.Count() != 1 {
			t.Fatalf("expected 1 order, got %d", f.store.Count())
		}
	})

	t.Run("rate limiter counts rejected requests too", func(t *testing.T) {
		// The rate limiter and the duplicate guard are independent gates:
		// requests 2 and 3 are rejected as duplicates but still consume
		// slots, so request 4 is rate limited.
		f := newFixture(t)
		createTestOrder(t, f)

		for i := 0; i < 2; i++ {
			if _, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount); !errors.Is(err, ErrDuplicatePending) {
				t.Fatalf("expected ErrDuplicatePending, got %v", err)
			}
		}
		_, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount)
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})
}

func TestTopupUseCase_CreateOrder_Gateway(t *testing.T) {
	t.Run("gateway failure leaves no partial state", func(t *testing.T) {
		f := newFixture(t)
		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), testAmount, testDriver()).
			Return(entities.PaymentHandle{}, errors.New("midtrans 500"))

		_, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount)
		if !errors.Is(err, ErrGatewayCreateFailed) {
			t.Fatalf("expected ErrGatewayCreateFailed, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("gateway timeout surfaces explicitly", func(t *testing.T) {
		f := newFixture(t)
		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), testAmount, testDriver()).
			Return(entities.PaymentHandle{}, context.DeadlineExceeded)

		_, err := f.uc.CreateOrder(context.Background(), testPhone, testAmount)
		if !errors.Is(err, ErrGatewayTimeout) {
			t.Fatalf("expected ErrGatewayTimeout, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("unconfigured gateway rejected cleanly", func(t *testing.T) {
		// routes keeps serving when the gateway fails to configure; the
		// usecase must turn that into an error, not a nil dereference.
		f := newFixture(t)
		uc := NewTopupUseCase(
			f.store, f.dir, nil, f.txlog, f.notifier,
			ratelimit.NewLimiter(ratelimit.DefaultWindow, ratelimit.DefaultLimit),
			5*time.Second,
		)
		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)

		_, err := uc.CreateOrder(context.Background(), testPhone, testAmount)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected no order inserted, got %d", f.store.Count())
		}
	})

	t.Run("success inserts awaiting-payment order", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		if !strings.HasPrefix(ticket.OrderID, "TOPUP_"+testPhone+"_") {
			t.Fatalf("unexpected order id %s", ticket.OrderID)
		}
		order, ok := f.store.Get(ticket.OrderID)
		if !ok {
			t.Fatalf("order not in table")
		}
		if order.Status != entities.StatusAwaitingPayment {
			t.Fatalf("expected awaiting_payment, got %s", order.Status)
		}
		if order.GatewayPaymentRef != "snap-token-abc" {
			t.Fatalf("unexpected payment ref %s", order.GatewayPaymentRef)
		}
		if order.DriverSnapshot.Name != "Budi Santoso" {
			t.Fatalf("driver snapshot not captured")
		}
	})
}

func TestTopupUseCase_HandleGatewayEvent_Success(t *testing.T) {
	t.Run("round trip credits exact amount", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		var driverMsg string
		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		f.dir.EXPECT().UpdateBalance(gomock.Any(), testPhone, testBalance, testBalance+testAmount).Return(nil)
		f.txlog.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) error {
				if tx.PreviousBalance != testBalance || tx.NewBalance != testBalance+testAmount {
					t.Fatalf("unexpected transaction balances: %+v", tx)
				}
				if tx.OrderID != ticket.OrderID || tx.Type != entities.TransactionTypeTopup {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return nil
			})
		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, text string) error {
				driverMsg = text
				return nil
			})
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventSuccess, OrderID: ticket.OrderID, Amount: testAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(driverMsg, "150.000") {
			t.Fatalf("driver message missing new balance: %q", driverMsg)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected order removed, got %d live", f.store.Count())
		}
	})

	t.Run("duplicate success delivery credits exactly once", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		f.dir.EXPECT().UpdateBalance(gomock.Any(), testPhone, testBalance, testBalance+testAmount).Return(nil)
		f.txlog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		ev := entities.GatewayEvent{Kind: entities.EventSuccess, OrderID: ticket.OrderID, Amount: testAmount}
		if err := f.uc.HandleGatewayEvent(context.Background(), ev); err != nil {
			t.Fatalf("first delivery failed: %v", err)
		}

		// Second delivery: no directory call, no notification, no credit.
		err := f.uc.HandleGatewayEvent(context.Background(), ev)
		if !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}
	})

	t.Run("balance conflict retried with fresh read", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		first := f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		firstWrite := f.dir.EXPECT().UpdateBalance(gomock.Any(), testPhone, testBalance, testBalance+testAmount).
			Return(interfaces.ErrBalanceConflict).After(first)

		bumped := testDriver()
		bumped.Balance = testBalance + 10_000
		second := f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(bumped, nil).After(firstWrite)
		f.dir.EXPECT().UpdateBalance(gomock.Any(), testPhone, bumped.Balance, bumped.Balance+testAmount).
			Return(nil).After(second)

		f.txlog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventSuccess, OrderID: ticket.OrderID, Amount: testAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("directory write failure keeps order open and alerts operator", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		f.dir.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(testDriver(), nil)
		f.dir.EXPECT().UpdateBalance(gomock.Any(), testPhone, testBalance, testBalance+testAmount).
			Return(errors.New("dynamodb put rejected"))

		var alert string
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, text string) error {
				alert = text
				return nil
			})

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventSuccess, OrderID: ticket.OrderID, Amount: testAmount,
		})
		if !errors.Is(err, ErrDirectoryWriteFailed) {
			t.Fatalf("expected ErrDirectoryWriteFailed, got %v", err)
		}

		// Retryable: the order is still in the live table.
		if _, ok := f.store.Get(ticket.OrderID); !ok {
			t.Fatalf("order must stay open after balance write failure")
		}
		if !strings.Contains(alert, ticket.OrderID) {
			t.Fatalf("operator alert missing order id: %q", alert)
		}
	})
}

func TestTopupUseCase_HandleGatewayEvent_NonSuccess(t *testing.T) {
	t.Run("pending updates in place", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).Return(nil)

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventPending, OrderID: ticket.OrderID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		order, ok := f.store.Get(ticket.OrderID)
		if !ok {
			t.Fatalf("pending event must not remove the order")
		}
		if order.Status != entities.StatusPending {
			t.Fatalf("expected pending, got %s", order.Status)
		}
	})

	t.Run("expired removes order and invites retry", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		var driverMsg string
		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, text string) error {
				driverMsg = text
				return nil
			})
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventExpired, OrderID: ticket.OrderID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected order removed")
		}
		if !strings.Contains(driverMsg, "TOPUP <jumlah>") {
			t.Fatalf("driver message must invite retry: %q", driverMsg)
		}

		st, ok := f.store.FinalizedStatus(ticket.OrderID)
		if !ok || st != entities.StatusExpired {
			t.Fatalf("expected finalized expired, got %s ok=%v", st, ok)
		}
	})

	t.Run("cancelled removes order", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventCancelled, OrderID: ticket.OrderID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.store.Count() != 0 {
			t.Fatalf("expected order removed")
		}
	})

	t.Run("pending after terminal rejected as already finalized", func(t *testing.T) {
		f := newFixture(t)
		ticket := createTestOrder(t, f)

		f.notifier.EXPECT().SendMessage(gomock.Any(), testPhone, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendAdminMessage(gomock.Any(), gomock.Any()).Return(nil)

		if err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventFailed, OrderID: ticket.OrderID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventPending, OrderID: ticket.OrderID,
		})
		if !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}

		st, _ := f.store.FinalizedStatus(ticket.OrderID)
		if st != entities.StatusFailed {
			t.Fatalf("terminal status must not revert, got %s", st)
		}
	})

	t.Run("unknown order is an idempotent no-op", func(t *testing.T) {
		f := newFixture(t)
		err := f.uc.HandleGatewayEvent(context.Background(), entities.GatewayEvent{
			Kind: entities.EventSuccess, OrderID: "TOPUP_62811_0_deadbeef", Amount: testAmount,
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
