package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/metrics"
	"bakusam_topup/internal/ratelimit"
	"bakusam_topup/internal/usecase/interfaces"
	"bakusam_topup/internal/validation"
	"bakusam_topup/pkg"

	"github.com/google/uuid"
)

var (
	ErrUnknownDriver        = errors.New("phone not registered as driver")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrDuplicatePending     = interfaces.ErrDuplicatePending
	ErrRateLimited          = errors.New("too many topup requests")
	ErrGatewayCreateFailed  = errors.New("payment gateway failed to create payment")
	ErrGatewayTimeout       = errors.New("payment gateway timed out")
	ErrDirectoryTimeout     = errors.New("driver directory timed out")
	ErrDirectoryWriteFailed = errors.New("driver balance update failed")
	ErrOrderNotFound        = interfaces.ErrOrderNotFound
	ErrAlreadyFinalized     = errors.New("order already finalized")
)

const balanceUpdateAttempts = 3

// ITopupUseCase is the payment orchestration core: it admits top-up requests
// into the pending order table and reconciles gateway events against it,
// driving every order to a terminal outcome.
//
// Concurrency model: chat commands and webhook deliveries run on independent
// goroutines. CreateOrder serializes per driver phone; HandleGatewayEvent
// serializes per order id and, on the success path, per driver phone as well,
// so a chat request racing a webhook never gets past the duplicate-pending
// check twice and balance read-modify-write never interleaves.

type ITopupUseCase interface {
	CreateOrder(ctx context.Context, phone string, amount int64) (entities.OrderTicket, error)
	HandleGatewayEvent(ctx context.Context, event entities.GatewayEvent) error
}

type TopupUseCase struct {
	orders    interfaces.IPendingOrderStore
	directory interfaces.IDriverDirectory
	gateway   interfaces.IPaymentGateway
	txlog     interfaces.ITransactionLog
	notifier  interfaces.INotifier
	limiter   *ratelimit.Limiter

	locks     *keyedMutex
	ioTimeout time.Duration
	now       func() time.Time
}

var _ ITopupUseCase = (*TopupUseCase)(nil)

func NewTopupUseCase(
	orders interfaces.IPendingOrderStore,
	directory interfaces.IDriverDirectory,
	gateway interfaces.IPaymentGateway,
	txlog interfaces.ITransactionLog,
	notifier interfaces.INotifier,
	limiter *ratelimit.Limiter,
	ioTimeout time.Duration,
) *TopupUseCase {
	if ioTimeout <= 0 {
		ioTimeout = 10 * time.Second
	}
	return &TopupUseCase{
		orders:    orders,
		directory: directory,
		gateway:   gateway,
		txlog:     txlog,
		notifier:  notifier,
		limiter:   limiter,
		locks:     newKeyedMutex(),
		ioTimeout: ioTimeout,
		now:       time.Now,
	}
}

// CreateOrder runs the admission pipeline and, when everything passes,
// registers a payment at the gateway and inserts the order. Gate order:
// validator, rate limiter, duplicate-pending guard, directory lookup. The
// rate limiter and the duplicate guard are deliberately independent; a
// request the duplicate guard rejects still consumed a rate-limit slot.
// On gateway failure nothing is inserted.
func (u *TopupUseCase) CreateOrder(ctx context.Context, phone string, amount int64) (entities.OrderTicket, error) {
	metrics.TopupRequestsTotal.Inc()
	log.Printf("[topup][usecase] create start phone=%q amount=%d", phone, amount)

	normalized, err := validation.ValidatePhone(phone)
	if err != nil {
		metrics.TopupAdmissionRejectedTotal.WithLabelValues("invalid_phone").Inc()
		return entities.OrderTicket{}, err
	}
	if err := validation.ValidateAmount(amount); err != nil {
		metrics.TopupAdmissionRejectedTotal.WithLabelValues("amount_out_of_range").Inc()
		return entities.OrderTicket{}, err
	}

	if !u.limiter.CheckAndRecord(normalized) {
		log.Printf("[topup][usecase] rate limited phone=%s", normalized)
		metrics.TopupAdmissionRejectedTotal.WithLabelValues("rate_limited").Inc()
		return entities.OrderTicket{}, ErrRateLimited
	}

	unlock := u.locks.Lock("driver:" + normalized)
	defer unlock()

	if _, busy := u.orders.GetByDriver(normalized); busy {
		log.Printf("[topup][usecase] duplicate pending phone=%s", normalized)
		metrics.TopupAdmissionRejectedTotal.WithLabelValues("duplicate_pending").Inc()
		return entities.OrderTicket{}, ErrDuplicatePending
	}

	driver, err := u.lookupDriver(ctx, normalized)
	if err != nil {
		if !errors.Is(err, ErrUnknownDriver) {
			log.Printf("[topup][usecase] directory lookup failed phone=%s err=%v", normalized, err)
			return entities.OrderTicket{}, err
		}
		metrics.TopupAdmissionRejectedTotal.WithLabelValues("unknown_driver").Inc()
		return entities.OrderTicket{}, err
	}

	if u.gateway == nil {
		log.Printf("[topup][usecase] gateway not configured phone=%s", normalized)
		return entities.OrderTicket{}, ErrGatewayNotConfigured
	}

	orderID := newOrderID(normalized, u.now())
	log.Printf("[topup][usecase] calling gateway phone=%s order_id=%s amount=%d", normalized, orderID, amount)

	gctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()
	handle, err := u.gateway.CreatePayment(gctx, orderID, amount, driver)
	if err != nil {
		log.Printf("[topup][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return entities.OrderTicket{}, ErrGatewayTimeout
		}
		return entities.OrderTicket{}, fmt.Errorf("%w: %v", ErrGatewayCreateFailed, err)
	}

	order := entities.TopupOrder{
		OrderID:           orderID,
		DriverPhone:       normalized,
		Amount:            amount,
		GatewayPaymentRef: handle.Ref,
		Status:            entities.StatusAwaitingPayment,
		CreatedAt:         u.now().UTC(),
		DriverSnapshot:    driver,
	}
	if err := u.orders.Insert(order); err != nil {
		// Should not happen while the driver lock is held; surface it anyway.
		log.Printf("[topup][usecase] order insert failed order_id=%s err=%v", orderID, err)
		return entities.OrderTicket{}, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.PendingOrders.Set(float64(u.orders.Count()))
	log.Printf("[topup][usecase] create success phone=%s order_id=%s ref=%s", normalized, orderID, handle.Ref)

	return entities.OrderTicket{
		OrderID:    orderID,
		PaymentRef: handle.Ref,
		Amount:     amount,
		PaymentURL: handle.PaymentURL,
		ExpiresAt:  handle.ExpiresAt,
	}, nil
}

// HandleGatewayEvent reconciles one verified webhook event against the
// pending order table.
//
// Idempotency: an event for an order that was already finalized returns
// ErrAlreadyFinalized; an event for an order that never existed returns
// ErrOrderNotFound. Both are no-ops the webhook endpoint acknowledges with
// 200 so the provider stops retrying.
func (u *TopupUseCase) HandleGatewayEvent(ctx context.Context, event entities.GatewayEvent) error {
	log.Printf("[topup][usecase] event start order_id=%s kind=%s amount=%d", event.OrderID, event.Kind, event.Amount)

	unlock := u.locks.Lock("order:" + event.OrderID)
	defer unlock()

	order, ok := u.orders.Get(event.OrderID)
	if !ok {
		if st, finalized := u.orders.FinalizedStatus(event.OrderID); finalized {
			log.Printf("[topup][usecase] event for finalized order order_id=%s terminal=%s kind=%s", event.OrderID, st, event.Kind)
			metrics.WebhookEventsTotal.WithLabelValues("already_finalized").Inc()
			return ErrAlreadyFinalized
		}
		log.Printf("[topup][usecase] event for unknown order order_id=%s kind=%s", event.OrderID, event.Kind)
		metrics.WebhookEventsTotal.WithLabelValues("order_not_found").Inc()
		return ErrOrderNotFound
	}

	switch event.Kind {
	case entities.EventSuccess:
		return u.reconcileSuccess(ctx, order, event)
	case entities.EventPending:
		return u.reconcilePending(ctx, order)
	case entities.EventExpired:
		return u.reconcileTerminalFailure(ctx, order, entities.StatusExpired,
			fmt.Sprintf("⏰ Pembayaran top-up Rp %s telah expired.\n\nSilakan buat ulang pembayaran dengan command:\nTOPUP <jumlah>", pkg.FormatRupiah(order.Amount)))
	case entities.EventFailed:
		return u.reconcileTerminalFailure(ctx, order, entities.StatusFailed,
			fmt.Sprintf("❌ Pembayaran top-up Rp %s gagal.\n\nSilakan coba lagi dengan command:\nTOPUP <jumlah>", pkg.FormatRupiah(order.Amount)))
	case entities.EventCancelled:
		return u.reconcileTerminalFailure(ctx, order, entities.StatusCancelled,
			fmt.Sprintf("🚫 Pembayaran top-up Rp %s dibatalkan.\n\nSilakan buat ulang pembayaran dengan command:\nTOPUP <jumlah>", pkg.FormatRupiah(order.Amount)))
	default:
		return fmt.Errorf("unhandled gateway event kind %q", event.Kind)
	}
}

// reconcileSuccess credits the balance and finalizes the order. When the
// directory write keeps failing the order stays in the table, retryable by
// the provider's next webhook delivery, and the operator gets an alert; a
// confirmed payment must never be dropped silently.
func (u *TopupUseCase) reconcileSuccess(ctx context.Context, order entities.TopupOrder, event entities.GatewayEvent) error {
	amount := event.Amount
	if amount == 0 {
		amount = order.Amount
	}
	if amount != order.Amount {
		log.Printf("[topup][usecase] event amount differs from order order_id=%s order_amount=%d event_amount=%d", order.OrderID, order.Amount, amount)
	}

	unlock := u.locks.Lock("driver:" + order.DriverPhone)
	defer unlock()

	var prevBalance, newBalance int64
	var err error
	for attempt := 1; ; attempt++ {
		prevBalance, newBalance, err = u.creditBalance(ctx, order.DriverPhone, amount)
		if err == nil {
			break
		}
		if errors.Is(err, interfaces.ErrBalanceConflict) && attempt < balanceUpdateAttempts {
			log.Printf("[topup][usecase] balance conflict, retrying order_id=%s attempt=%d", order.OrderID, attempt)
			continue
		}
		log.Printf("[topup][usecase] balance update failed order_id=%s err=%v", order.OrderID, err)
		metrics.WebhookEventsTotal.WithLabelValues("directory_write_failed").Inc()
		u.notifyAdmin(ctx, fmt.Sprintf("❌ *PAYMENT ERROR*\n\n📋 Order ID: %s\n📱 Driver: %s\n💰 Amount: Rp %s\n⚠️ Error: gagal update saldo driver, order tetap terbuka untuk rekonsiliasi",
			order.OrderID, order.DriverPhone, pkg.FormatRupiah(amount)))
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrDirectoryTimeout
		}
		return fmt.Errorf("%w: %v", ErrDirectoryWriteFailed, err)
	}

	tx := entities.Transaction{
		ID:              uuid.NewString(),
		OrderID:         order.OrderID,
		PaymentRef:      order.GatewayPaymentRef,
		DriverPhone:     order.DriverPhone,
		DriverName:      order.DriverSnapshot.Name,
		Amount:          amount,
		PreviousBalance: prevBalance,
		NewBalance:      newBalance,
		Type:            entities.TransactionTypeTopup,
		Timestamp:       u.now().UTC(),
	}
	if err := u.appendTransaction(ctx, tx); err != nil {
		// The credit already applied; losing the audit row is an operator
		// problem, not a reason to re-credit on the provider's retry.
		log.Printf("[topup][usecase] transaction append failed order_id=%s tx_id=%s err=%v", order.OrderID, tx.ID, err)
		u.notifyAdmin(ctx, fmt.Sprintf("⚠️ *AUDIT WRITE FAILED*\n\n📋 Order ID: %s\n🧾 Tx ID: %s\n📱 Driver: %s\n💰 Amount: Rp %s",
			order.OrderID, tx.ID, order.DriverPhone, pkg.FormatRupiah(amount)))
	}

	if _, err := u.orders.Finalize(order.OrderID, entities.StatusSucceeded); err != nil {
		// Unreachable while the order lock is held.
		log.Printf("[topup][usecase] finalize failed order_id=%s err=%v", order.OrderID, err)
		return err
	}
	metrics.WebhookEventsTotal.WithLabelValues("success").Inc()
	metrics.CreditedRupiahTotal.Add(float64(amount))
	metrics.PendingOrders.Set(float64(u.orders.Count()))

	u.notifyDriver(ctx, order.DriverPhone, fmt.Sprintf(
		"🎉 *TOP-UP BERHASIL!*\n\n💰 Jumlah: Rp %s\n💳 Order ID: %s\n💵 Saldo Baru: Rp %s\n\nTerima kasih telah menggunakan layanan top-up kami! 🚗💨",
		pkg.FormatRupiah(amount), order.OrderID, pkg.FormatRupiah(newBalance)))
	u.notifyAdmin(ctx, fmt.Sprintf(
		"✅ *PAYMENT SUCCESS*\n\n📋 Order ID: %s\n📱 Driver: %s\n💰 Amount: Rp %s\n💵 New Balance: Rp %s",
		order.OrderID, order.DriverPhone, pkg.FormatRupiah(amount), pkg.FormatRupiah(newBalance)))

	log.Printf("[topup][usecase] topup credited order_id=%s phone=%s amount=%d new_balance=%d", order.OrderID, order.DriverPhone, amount, newBalance)
	return nil
}

func (u *TopupUseCase) reconcilePending(ctx context.Context, order entities.TopupOrder) error {
	if err := u.orders.MarkAwaitingConfirmation(order.OrderID); err != nil {
		return err
	}
	metrics.WebhookEventsTotal.WithLabelValues("pending").Inc()
	u.notifyDriver(ctx, order.DriverPhone, fmt.Sprintf(
		"⏳ Pembayaran top-up Rp %s sedang diproses.\n\nSilakan selesaikan pembayaran Anda.", pkg.FormatRupiah(order.Amount)))
	log.Printf("[topup][usecase] order pending order_id=%s", order.OrderID)
	return nil
}

func (u *TopupUseCase) reconcileTerminalFailure(ctx context.Context, order entities.TopupOrder, status entities.OrderStatus, driverMessage string) error {
	if _, err := u.orders.Finalize(order.OrderID, status); err != nil {
		return err
	}
	metrics.WebhookEventsTotal.WithLabelValues(string(status)).Inc()
	metrics.PendingOrders.Set(float64(u.orders.Count()))

	u.notifyDriver(ctx, order.DriverPhone, driverMessage)
	u.notifyAdmin(ctx, fmt.Sprintf(
		"%s\n\n📋 Order ID: %s\n📱 Driver: %s\n💰 Amount: Rp %s",
		adminHeaderFor(status), order.OrderID, order.DriverPhone, pkg.FormatRupiah(order.Amount)))

	log.Printf("[topup][usecase] order finalized order_id=%s status=%s", order.OrderID, status)
	return nil
}

func (u *TopupUseCase) lookupDriver(ctx context.Context, phone string) (entities.Driver, error) {
	dctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()

	driver, err := u.directory.GetByPhone(dctx, phone)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return entities.Driver{}, ErrDirectoryTimeout
		}
		return entities.Driver{}, err
	}
	if driver.Phone == "" {
		return entities.Driver{}, ErrUnknownDriver
	}
	return driver, nil
}

func (u *TopupUseCase) creditBalance(ctx context.Context, phone string, amount int64) (prev, next int64, err error) {
	dctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()

	driver, err := u.directory.GetByPhone(dctx, phone)
	if err != nil {
		return 0, 0, err
	}
	if driver.Phone == "" {
		return 0, 0, interfaces.ErrDriverNotFound
	}

	prev = driver.Balance
	next = prev + amount
	if err := u.directory.UpdateBalance(dctx, phone, prev, next); err != nil {
		return 0, 0, err
	}
	return prev, next, nil
}

func (u *TopupUseCase) appendTransaction(ctx context.Context, tx entities.Transaction) error {
	tctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()
	return u.txlog.Append(tctx, tx)
}

func (u *TopupUseCase) notifyDriver(ctx context.Context, phone, text string) {
	if err := u.notifier.SendMessage(ctx, phone, text); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Printf("[topup][usecase] driver notification failed phone=%s err=%v", phone, err)
	}
}

func (u *TopupUseCase) notifyAdmin(ctx context.Context, text string) {
	if err := u.notifier.SendAdminMessage(ctx, text); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Printf("[topup][usecase] admin notification failed err=%v", err)
	}
}

func adminHeaderFor(status entities.OrderStatus) string {
	switch status {
	case entities.StatusExpired:
		return "⏰ *PAYMENT EXPIRED*"
	case entities.StatusCancelled:
		return "🚫 *PAYMENT CANCELLED*"
	default:
		return "❌ *PAYMENT FAILED*"
	}
}

// newOrderID builds a globally unique order id from the identity, the
// creation instant and a random suffix: TOPUP_<phone>_<unix-millis>_<suffix>.
func newOrderID(phone string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("TOPUP_%s_%d_%s", phone, now.UnixMilli(), suffix)
}
