package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/printing"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

const maxInvoiceRetries = 3

// OrderService owns the order lifecycle: every operation that moves stock,
// money or table state runs as one locked transaction, and print jobs are
// enqueued only after the transaction commits.
type OrderService struct {
	db      *gorm.DB
	spooler printing.Spooler
	rdb     *redis.Client
	log     zerolog.Logger
}

func NewOrderService(db *gorm.DB, spooler printing.Spooler, rdb *redis.Client) *OrderService {
	return &OrderService{
		db:      db,
		spooler: spooler,
		rdb:     rdb,
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "orders").Logger(),
	}
}

type LineRequest struct {
	ItemID   uint
	Quantity int
}

type CreateOrderCmd struct {
	AttendantID   uint
	TableID       *uint
	Lines         []LineRequest
	IdempotentKey string
}

type AddItemsCmd struct {
	OrderID uint
	ActorID uint
	Lines   []LineRequest
}

type RemoveItemsCmd struct {
	OrderID uint
	ActorID uint
	Lines   []LineRequest
}

type DiscountCmd struct {
	OrderID    uint
	Percentage int
	ActorID    uint
}

type SplitCmd struct {
	OrderID    uint
	NewTableID uint
	ActorID    uint
	Lines      []LineRequest
}

type PayCmd struct {
	OrderID        uint
	Method         models.PaymentMethod
	AmountReceived float64
	ActorID        uint
}

// storeGroup accumulates ticket lines per fulfillment store.
type storeGroup struct {
	storeName string
	printer   string
	lines     []printing.Line
}

func validateLines(lines []LineRequest) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for _, l := range lines {
		if l.ItemID == 0 || l.Quantity <= 0 {
			return fmt.Errorf("item %d quantity %d: %w", l.ItemID, l.Quantity, ErrEmptyOrder)
		}
	}
	return nil
}

// CreateOrder opens a tab: freezes catalog prices into line rows, decrements
// stock, occupies the table, then queues one kitchen/bar ticket per store.
func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCmd) (*models.Order, error) {
	if err := validateLines(cmd.Lines); err != nil {
		return nil, err
	}
	if err := s.checkIdempotency(ctx, cmd.IdempotentKey); err != nil {
		return nil, err
	}

	var (
		order  models.Order
		groups map[uint]*storeGroup
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attendant models.User
		if err := tx.First(&attendant, cmd.AttendantID).Error; err != nil {
			return wrapNotFound(err, "attendant")
		}

		var table *models.Table
		if cmd.TableID != nil {
			table = &models.Table{}
			if err := forUpdate(tx).First(table, *cmd.TableID).Error; err != nil {
				return wrapNotFound(err, "table")
			}
			if table.Status == models.TableOccupied || table.CurrentOrderID != nil {
				return ErrTableOccupied
			}
		}

		order = models.Order{
			AttendantID: cmd.AttendantID,
			TableID:     cmd.TableID,
			Status:      models.OrderPending,
		}

		var err error
		groups, err = s.takeStock(tx, &order, cmd.Lines)
		if err != nil {
			return err
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if table != nil {
			if err := tx.Model(&models.Table{}).Where("id = ?", table.ID).
				Updates(map[string]interface{}{
					"status":           models.TableOccupied,
					"current_order_id": order.ID,
					"attendant_id":     cmd.AttendantID,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStoreTickets(ctx, printing.JobOrderTicket, groups, order)
	s.log.Info().Uint("order_id", order.ID).Float64("total", order.TotalAmount).Msg("order created")
	return s.loadOrder(ctx, order.ID)
}

// AddItems appends new line rows (never merges with existing ones) and bumps
// the running total by the added subtotal.
func (s *OrderService) AddItems(ctx context.Context, cmd AddItemsCmd) (*models.Order, error) {
	if err := validateLines(cmd.Lines); err != nil {
		return nil, err
	}

	var (
		order  models.Order
		groups map[uint]*storeGroup
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&order, cmd.OrderID).Error; err != nil {
			return wrapNotFound(err, "order")
		}
		if order.Status != models.OrderPending {
			return ErrOrderNotPending
		}

		added := models.Order{ID: order.ID}
		var err error
		groups, err = s.takeStock(tx, &added, cmd.Lines)
		if err != nil {
			return err
		}
		for i := range added.Items {
			added.Items[i].OrderID = order.ID
		}
		if err := tx.Create(&added.Items).Error; err != nil {
			return err
		}

		order.TotalAmount += added.TotalAmount
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", order.TotalAmount).Error
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStoreTickets(ctx, printing.JobOrderTicket, groups, order)
	return s.loadOrder(ctx, order.ID)
}

// RemoveItems cancels quantities off an order: stock goes back, one audit
// row is written per request, and emptying the order deletes it and frees
// its table in the same transaction.
func (s *OrderService) RemoveItems(ctx context.Context, cmd RemoveItemsCmd) (*models.Order, error) {
	if err := validateLines(cmd.Lines); err != nil {
		return nil, err
	}

	var (
		order   models.Order
		groups  map[uint]*storeGroup
		deleted bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&order, cmd.OrderID).Error; err != nil {
			return wrapNotFound(err, "order")
		}
		if order.Status != models.OrderPending {
			return ErrOrderNotPending
		}

		groups = map[uint]*storeGroup{}
		for _, req := range cmd.Lines {
			var line models.OrderItem
			err := tx.Where("order_id = ? AND item_id = ?", order.ID, req.ItemID).
				Order("id ASC").First(&line).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d not on order: %w", req.ItemID, ErrInvalidCancellation)
			}
			if err != nil {
				return err
			}
			if req.Quantity > line.Quantity {
				return fmt.Errorf("item %d has quantity %d: %w", req.ItemID, line.Quantity, ErrInvalidCancellation)
			}

			var item models.Item
			if err := forUpdate(tx).First(&item, req.ItemID).Error; err != nil {
				return wrapNotFound(err, "item")
			}

			// audit snapshot before mutating the line
			cancel := models.Cancellation{
				ItemName:      item.Name,
				Quantity:      req.Quantity,
				UnitPrice:     line.Price,
				TotalPrice:    line.Price * float64(req.Quantity),
				CancelledByID: cmd.ActorID,
			}
			if err := tx.Create(&cancel).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
				Update("stock", gorm.Expr("stock + ?", req.Quantity)).Error; err != nil {
				return err
			}

			if req.Quantity == line.Quantity {
				if err := tx.Delete(&models.OrderItem{}, line.ID).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&models.OrderItem{}).Where("id = ?", line.ID).
					Update("quantity", gorm.Expr("quantity - ?", req.Quantity)).Error; err != nil {
					return err
				}
			}

			s.addGroupLine(tx, groups, item, req.Quantity, line.Price)
		}

		total, remaining, err := sumOrderLines(tx, order.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			deleted = true
			return s.retireOrder(tx, order.ID)
		}

		// raw recomputation: an active discount is voided by any cancel
		order.TotalAmount = total
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStoreTickets(ctx, printing.JobCancelTicket, groups, order)
	if deleted {
		s.log.Info().Uint("order_id", order.ID).Msg("order emptied and deleted")
		return nil, nil
	}
	return s.loadOrder(ctx, order.ID)
}

// Discount applies one of the fixed percentages to the current total and
// records the audit row. Repeated discounts compound on purpose: each one
// starts from whatever the total is now.
func (s *OrderService) Discount(ctx context.Context, cmd DiscountCmd) (*models.Order, error) {
	if cmd.Percentage < 5 || cmd.Percentage > 100 || cmd.Percentage%5 != 0 {
		return nil, ErrInvalidDiscount
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&order, cmd.OrderID).Error; err != nil {
			return wrapNotFound(err, "order")
		}
		if order.Status != models.OrderPending {
			return ErrOrderNotPending
		}

		amount := order.TotalAmount * float64(cmd.Percentage) / 100
		newTotal := order.TotalAmount - amount

		d := models.Discount{
			OrderID:    order.ID,
			UserID:     cmd.ActorID,
			Percentage: cmd.Percentage,
			Amount:     amount,
			NewTotal:   newTotal,
		}
		if err := tx.Create(&d).Error; err != nil {
			return err
		}

		order.TotalAmount = newTotal
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", newTotal).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(ctx, order.ID)
}

// Split moves quantities from the source order onto a brand-new order on an
// available table. Stock never moves: nothing is voided, only relocated.
func (s *OrderService) Split(ctx context.Context, cmd SplitCmd) (*models.Order, error) {
	if err := validateLines(cmd.Lines); err != nil {
		return nil, err
	}

	var dest models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src models.Order
		if err := forUpdate(tx).First(&src, cmd.OrderID).Error; err != nil {
			return wrapNotFound(err, "order")
		}
		if src.Status != models.OrderPending {
			return ErrOrderNotPending
		}
		if src.TableID != nil && *src.TableID == cmd.NewTableID {
			return fmt.Errorf("source and destination table are the same: %w", ErrInvalidSplit)
		}

		var table models.Table
		if err := forUpdate(tx).First(&table, cmd.NewTableID).Error; err != nil {
			return wrapNotFound(err, "table")
		}
		if table.Status != models.TableAvailable || table.CurrentOrderID != nil {
			return ErrTableNotAvailable
		}

		dest = models.Order{
			AttendantID: src.AttendantID,
			TableID:     &table.ID,
			Status:      models.OrderPending,
		}
		for _, req := range cmd.Lines {
			var line models.OrderItem
			err := tx.Where("order_id = ? AND item_id = ?", src.ID, req.ItemID).
				Order("id ASC").First(&line).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d not on order: %w", req.ItemID, ErrInvalidSplit)
			}
			if err != nil {
				return err
			}
			if req.Quantity > line.Quantity {
				return fmt.Errorf("item %d has quantity %d: %w", req.ItemID, line.Quantity, ErrInvalidSplit)
			}

			if req.Quantity == line.Quantity {
				if err := tx.Delete(&models.OrderItem{}, line.ID).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&models.OrderItem{}).Where("id = ?", line.ID).
					Update("quantity", gorm.Expr("quantity - ?", req.Quantity)).Error; err != nil {
					return err
				}
			}

			dest.Items = append(dest.Items, models.OrderItem{
				ItemID:   req.ItemID,
				Quantity: req.Quantity,
				Price:    line.Price,
			})
			dest.TotalAmount += line.Price * float64(req.Quantity)
		}

		if err := tx.Create(&dest).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Table{}).Where("id = ?", table.ID).
			Updates(map[string]interface{}{
				"status":           models.TableOccupied,
				"current_order_id": dest.ID,
				"attendant_id":     src.AttendantID,
			}).Error; err != nil {
			return err
		}

		total, remaining, err := sumOrderLines(tx, src.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return s.retireOrder(tx, src.ID)
		}
		return tx.Model(&models.Order{}).Where("id = ?", src.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(ctx, dest.ID)
}

// Sign finalizes the order as a credit sale against the named client. Goods
// left the premises, so stock stays where it is.
func (s *OrderService) Sign(ctx context.Context, orderID, clientID, actorID uint) (*models.Sale, error) {
	var sale *models.Sale
	var err error
	for attempt := 0; attempt < maxInvoiceRetries; attempt++ {
		sale, err = s.finalize(ctx, orderID, func(tx *gorm.DB, order *models.Order, sl *models.Sale) error {
			var client models.Client
			if err := tx.First(&client, clientID).Error; err != nil {
				return wrapNotFound(err, "client")
			}
			sl.Status = models.SaleSigned
			return nil
		}, func(tx *gorm.DB, sl *models.Sale) error {
			bill := models.SignedBill{
				SaleID:      sl.ID,
				ClientID:    clientID,
				AttendantID: sl.AttendantID,
				Amount:      sl.TotalAmount,
			}
			return tx.Create(&bill).Error
		})
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	return sale, err
}

// Pay finalizes the order as a cash/card/mobile sale and computes change.
func (s *OrderService) Pay(ctx context.Context, cmd PayCmd) (*models.Sale, error) {
	switch cmd.Method {
	case models.PayCash, models.PayCard, models.PayMobile:
	default:
		return nil, ErrInvalidPayment
	}

	var sale *models.Sale
	var err error
	for attempt := 0; attempt < maxInvoiceRetries; attempt++ {
		sale, err = s.finalize(ctx, cmd.OrderID, func(tx *gorm.DB, order *models.Order, sl *models.Sale) error {
			if cmd.AmountReceived < order.TotalAmount {
				return ErrUnderpaid
			}
			sl.Status = models.SalePaid
			sl.PaymentMethod = cmd.Method
			sl.AmountReceived = cmd.AmountReceived
			sl.Change = cmd.AmountReceived - order.TotalAmount
			return nil
		}, nil)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	return sale, err
}

// finalize is the single PENDING -> Sale path shared by Pay and Sign: it
// snapshots the lines, retires the order, frees the table and queues the
// customer invoice.
func (s *OrderService) finalize(
	ctx context.Context,
	orderID uint,
	prepare func(tx *gorm.DB, order *models.Order, sale *models.Sale) error,
	after func(tx *gorm.DB, sale *models.Sale) error,
) (*models.Sale, error) {
	var sale models.Sale
	var bill printing.Job
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := forUpdate(tx).Preload("Items").Preload("Attendant").First(&order, orderID).Error; err != nil {
			return wrapNotFound(err, "order")
		}
		if order.Status != models.OrderPending {
			return ErrOrderNotPending
		}

		tableNumber := 0
		if order.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *order.TableID).Error; err == nil {
				tableNumber = table.Number
			}
		}

		var seq int64
		if err := tx.Model(&models.Sale{}).Count(&seq).Error; err != nil {
			return err
		}

		sale = models.Sale{
			InvoiceNo:   utils.GenInvoiceNo(seq+1, time.Now()),
			AttendantID: order.AttendantID,
			TableNumber: tableNumber,
			TotalAmount: order.TotalAmount,
		}
		if err := prepare(tx, &order, &sale); err != nil {
			return err
		}

		lines := make([]printing.Line, 0, len(order.Items))
		for _, li := range order.Items {
			var item models.Item
			if err := tx.First(&item, li.ItemID).Error; err != nil {
				return wrapNotFound(err, "item")
			}
			sale.Items = append(sale.Items, models.SaleItem{
				ItemID:   li.ItemID,
				ItemName: item.Name,
				StoreID:  item.StoreID,
				Quantity: li.Quantity,
				Price:    li.Price,
			})
			lines = append(lines, printing.Line{Name: item.Name, Quantity: li.Quantity, Price: li.Price})
		}

		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		if after != nil {
			if err := after(tx, &sale); err != nil {
				return err
			}
		}
		if err := s.retireOrder(tx, order.ID); err != nil {
			return err
		}

		bill = printing.Job{
			ID:             uuid.NewString(),
			Type:           printing.JobBill,
			PrinterAddress: billPrinterAddress(tx),
			StoreName:      "",
			TableNumber:    tableNumber,
			Attendant:      order.Attendant.FullName,
			Lines:          lines,
			Total:          sale.TotalAmount,
			Footer:         []string{"Invoice: " + sale.InvoiceNo},
			CreatedAt:      time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if bill.PrinterAddress != "" {
		s.spooler.Enqueue(ctx, bill)
	}
	s.log.Info().Uint("sale_id", sale.ID).Str("invoice", sale.InvoiceNo).
		Str("status", string(sale.Status)).Float64("total", sale.TotalAmount).Msg("order finalized")
	return &sale, nil
}

// OrderByTable returns the open order on a table, or ErrNoActiveOrder.
func (s *OrderService) OrderByTable(ctx context.Context, tableID uint) (*models.Order, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).First(&table, tableID).Error; err != nil {
		return nil, wrapNotFound(err, "table")
	}
	if table.CurrentOrderID == nil {
		return nil, ErrNoActiveOrder
	}
	return s.loadOrder(ctx, *table.CurrentOrderID)
}

// PrintBill queues a customer bill for the table's open order. Read-only.
func (s *OrderService) PrintBill(ctx context.Context, tableID uint) error {
	order, err := s.OrderByTable(ctx, tableID)
	if err != nil {
		return err
	}

	var table models.Table
	if err := s.db.WithContext(ctx).First(&table, tableID).Error; err != nil {
		return wrapNotFound(err, "table")
	}

	lines := make([]printing.Line, 0, len(order.Items))
	for _, li := range order.Items {
		lines = append(lines, printing.Line{Name: li.Item.Name, Quantity: li.Quantity, Price: li.Price})
	}
	s.spooler.Enqueue(ctx, printing.Job{
		ID:             uuid.NewString(),
		Type:           printing.JobBill,
		PrinterAddress: billPrinterAddress(s.db.WithContext(ctx)),
		TableNumber:    table.Number,
		Attendant:      order.Attendant.FullName,
		Lines:          lines,
		Total:          order.TotalAmount,
		CreatedAt:      time.Now(),
	})
	return nil
}

// ---- internals ----

// takeStock freezes prices, checks and decrements stock, and accumulates
// ticket lines per store. Appends the built lines to order.Items and adds
// their subtotal to order.TotalAmount.
func (s *OrderService) takeStock(tx *gorm.DB, order *models.Order, lines []LineRequest) (map[uint]*storeGroup, error) {
	groups := map[uint]*storeGroup{}
	for _, req := range lines {
		var item models.Item
		if err := forUpdate(tx).First(&item, req.ItemID).Error; err != nil {
			return nil, wrapNotFound(err, "item")
		}
		if item.Stock < req.Quantity {
			return nil, fmt.Errorf("%s has stock %d, requested %d: %w",
				item.Name, item.Stock, req.Quantity, ErrInsufficientStock)
		}
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
			Update("stock", gorm.Expr("stock - ?", req.Quantity)).Error; err != nil {
			return nil, err
		}

		order.Items = append(order.Items, models.OrderItem{
			ItemID:   item.ID,
			Quantity: req.Quantity,
			Price:    item.Price,
		})
		order.TotalAmount += item.Price * float64(req.Quantity)
		s.addGroupLine(tx, groups, item, req.Quantity, item.Price)
	}
	return groups, nil
}

func (s *OrderService) addGroupLine(tx *gorm.DB, groups map[uint]*storeGroup, item models.Item, qty int, price float64) {
	g, ok := groups[item.StoreID]
	if !ok {
		var store models.Store
		if err := tx.Preload("Printer").First(&store, item.StoreID).Error; err != nil {
			s.log.Warn().Err(err).Uint("store_id", item.StoreID).Msg("ticket store lookup failed")
			return
		}
		g = &storeGroup{storeName: store.Name}
		if store.Printer != nil {
			g.printer = store.Printer.Address
		}
		groups[item.StoreID] = g
	}
	g.lines = append(g.lines, printing.Line{Name: item.Name, Quantity: qty, Price: price})
}

func (s *OrderService) enqueueStoreTickets(ctx context.Context, typ printing.JobType, groups map[uint]*storeGroup, order models.Order) {
	if len(groups) == 0 {
		return
	}

	tableNumber := 0
	attendant := ""
	if order.TableID != nil {
		var table models.Table
		if err := s.db.WithContext(ctx).First(&table, *order.TableID).Error; err == nil {
			tableNumber = table.Number
		}
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, order.AttendantID).Error; err == nil {
		attendant = user.FullName
	}

	for _, g := range groups {
		if g.printer == "" {
			s.log.Warn().Str("store", g.storeName).Msg("store has no printer, ticket skipped")
			continue
		}
		s.spooler.Enqueue(ctx, printing.Job{
			ID:             uuid.NewString(),
			Type:           typ,
			PrinterAddress: g.printer,
			StoreName:      g.storeName,
			TableNumber:    tableNumber,
			Attendant:      attendant,
			Lines:          g.lines,
			CreatedAt:      time.Now(),
		})
	}
}

// retireOrder removes the order, its lines and its discount rows, and frees
// whichever table references it. Used by empty-cancel, split-drain and
// finalize; the caller's transaction makes it atomic.
func (s *OrderService) retireOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&models.Discount{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Order{}, orderID).Error; err != nil {
		return err
	}
	return tx.Model(&models.Table{}).Where("current_order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":           models.TableAvailable,
			"current_order_id": nil,
			"attendant_id":     nil,
		}).Error
}

func sumOrderLines(tx *gorm.DB, orderID uint) (float64, int64, error) {
	var row struct {
		Total float64
		N     int64
	}
	err := tx.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(price * quantity), 0) AS total, COUNT(*) AS n").
		Where("order_id = ?", orderID).
		Scan(&row).Error
	return row.Total, row.N, err
}

func (s *OrderService) loadOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items.Item").
		Preload("Attendant").
		First(&order, id).Error
	if err != nil {
		return nil, wrapNotFound(err, "order")
	}
	return &order, nil
}

// billPrinterAddress picks the cashier printer for customer bills: the
// printer named "cashier" when present, else the first one registered.
func billPrinterAddress(tx *gorm.DB) string {
	var p models.Printer
	if err := tx.Where("LOWER(name) = ?", "cashier").First(&p).Error; err == nil {
		return p.Address
	}
	if err := tx.Order("id ASC").First(&p).Error; err == nil {
		return p.Address
	}
	return ""
}

// checkIdempotency claims the Idempotent-Key header in redis for 24h. A
// second request with the same key is rejected; an unreachable redis never
// blocks a sale.
func (s *OrderService) checkIdempotency(ctx context.Context, key string) error {
	if s.rdb == nil || key == "" {
		return nil
	}
	set, err := s.rdb.SetNX(ctx, "idempotent-key:"+key, "exists", 24*time.Hour).Result()
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency check skipped")
		return nil
	}
	if !set {
		return ErrDuplicateRequest
	}
	return nil
}

func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
