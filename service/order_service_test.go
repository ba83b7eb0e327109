package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/printing"
	"github.com/gbalekage/my-pos-v2-sub000/service"
)

func newOrderService(t *testing.T) (*service.OrderService, *gorm.DB, fixture, *recordSpooler) {
	t.Helper()
	db := newTestDB(t)
	f := seedFixture(t, db)
	sp := &recordSpooler{}
	return service.NewOrderService(db, sp, nil), db, f, sp
}

func TestCreateOrderFreezesPriceAndTakesStock(t *testing.T) {
	svc, db, f, sp := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 2000.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1000.0, order.Items[0].Price)
	assert.Equal(t, 8, itemStock(t, db, f.itemA.ID))

	table := reloadTable(t, db, f.table1.ID)
	assert.Equal(t, models.TableOccupied, table.Status)
	require.NotNil(t, table.CurrentOrderID)
	assert.Equal(t, order.ID, *table.CurrentOrderID)
	require.NotNil(t, table.AttendantID)
	assert.Equal(t, f.attendant.ID, *table.AttendantID)

	tickets := sp.byType(printing.JobOrderTicket)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Kitchen", tickets[0].StoreName)
	assert.Equal(t, "10.0.0.11:9100", tickets[0].PrinterAddress)
}

func TestCreateOrderCatalogPriceEditDoesNotMoveFrozenLines(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", f.itemA.ID).
		Update("price", 9999.0).Error)

	added, err := svc.AddItems(ctx, service.AddItemsCmd{
		OrderID: order.ID,
		ActorID: f.attendant.ID,
		Lines:   []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, added.Items, 2)
	assert.Equal(t, 1000.0, added.Items[0].Price)
	assert.Equal(t, 9999.0, added.Items[1].Price)
	assert.Equal(t, 1000.0+9999.0, added.TotalAmount)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	svc, db, f, sp := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines: []service.LineRequest{
			{ItemID: f.itemA.ID, Quantity: 1},
			{ItemID: f.itemB.ID, Quantity: 6},
		},
	})
	require.ErrorIs(t, err, service.ErrInsufficientStock)

	assert.Equal(t, 10, itemStock(t, db, f.itemA.ID))
	assert.Equal(t, 5, itemStock(t, db, f.itemB.ID))
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, f.table1.ID).Status)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
	assert.Empty(t, sp.jobs)
}

func TestCreateOrderRejectsOccupiedTable(t *testing.T) {
	svc, _, f, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrTableOccupied)
}

func TestCreateOrderUnknownItem(t *testing.T) {
	svc, _, f, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: 9999, Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateOrderEmptyLines(t *testing.T) {
	svc, _, f, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
	})
	require.ErrorIs(t, err, service.ErrEmptyOrder)
}

func TestAddItemsAppendsRowsAndBumpsTotal(t *testing.T) {
	svc, db, f, sp := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err = svc.AddItems(ctx, service.AddItemsCmd{
		OrderID: order.ID,
		ActorID: f.attendant.ID,
		Lines: []service.LineRequest{
			{ItemID: f.itemA.ID, Quantity: 1},
			{ItemID: f.itemB.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Len(t, order.Items, 3)
	assert.Equal(t, 1000.0+1000.0+2*1500.0, order.TotalAmount)
	assert.Equal(t, 8, itemStock(t, db, f.itemA.ID))
	assert.Equal(t, 3, itemStock(t, db, f.itemB.ID))

	// one ticket per store per request: kitchen on create, kitchen+bar on add
	assert.Len(t, sp.byType(printing.JobOrderTicket), 3)
}

func TestDiscountAppliesAndAudits(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	order, err = svc.Discount(ctx, service.DiscountCmd{
		OrderID:    order.ID,
		Percentage: 10,
		ActorID:    f.cashier.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1800.0, order.TotalAmount)

	var d models.Discount
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&d).Error)
	assert.Equal(t, 10, d.Percentage)
	assert.Equal(t, 200.0, d.Amount)
	assert.Equal(t, 1800.0, d.NewTotal)
}

func TestDiscountRejectsOffGridPercentages(t *testing.T) {
	svc, _, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, pct := range []int{0, 3, 7, 101, -5} {
		_, err := svc.Discount(ctx, service.DiscountCmd{OrderID: order.ID, Percentage: pct, ActorID: f.cashier.ID})
		assert.ErrorIs(t, err, service.ErrInvalidDiscount, "pct %d", pct)
	}
}

func TestRemoveItemsRestoresStockAndVoidsDiscount(t *testing.T) {
	svc, db, f, sp := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines: []service.LineRequest{
			{ItemID: f.itemA.ID, Quantity: 2},
			{ItemID: f.itemB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	order, err = svc.Discount(ctx, service.DiscountCmd{OrderID: order.ID, Percentage: 10, ActorID: f.cashier.ID})
	require.NoError(t, err)
	assert.Equal(t, 3150.0, order.TotalAmount)

	order, err = svc.RemoveItems(ctx, service.RemoveItemsCmd{
		OrderID: order.ID,
		ActorID: f.attendant.ID,
		Lines:   []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// raw recomputation: 1xA + 1xB, the discount is gone
	assert.Equal(t, 2500.0, order.TotalAmount)
	assert.Equal(t, 9, itemStock(t, db, f.itemA.ID))

	var cancel models.Cancellation
	require.NoError(t, db.First(&cancel).Error)
	assert.Equal(t, "Grilled Chicken", cancel.ItemName)
	assert.Equal(t, 1, cancel.Quantity)
	assert.Equal(t, 1000.0, cancel.TotalPrice)
	assert.Equal(t, f.attendant.ID, cancel.CancelledByID)

	// discount row survives as audit even though the total no longer uses it
	var discounts int64
	require.NoError(t, db.Model(&models.Discount{}).Where("order_id = ?", order.ID).Count(&discounts).Error)
	assert.EqualValues(t, 1, discounts)

	require.Len(t, sp.byType(printing.JobCancelTicket), 1)
}

func TestRemoveItemsEmptiesOrderAndFreesTable(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	orderID := order.ID

	order, err = svc.RemoveItems(ctx, service.RemoveItemsCmd{
		OrderID: orderID,
		ActorID: f.attendant.ID,
		Lines:   []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Nil(t, order)

	assert.ErrorIs(t, db.First(&models.Order{}, orderID).Error, gorm.ErrRecordNotFound)
	assert.Equal(t, 10, itemStock(t, db, f.itemA.ID))

	table := reloadTable(t, db, f.table1.ID)
	assert.Equal(t, models.TableAvailable, table.Status)
	assert.Nil(t, table.CurrentOrderID)
	assert.Nil(t, table.AttendantID)
}

func TestRemoveItemsRejectsExcessQuantity(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = svc.RemoveItems(ctx, service.RemoveItemsCmd{
		OrderID: order.ID,
		ActorID: f.attendant.ID,
		Lines:   []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 3}},
	})
	require.ErrorIs(t, err, service.ErrInvalidCancellation)

	assert.Equal(t, 8, itemStock(t, db, f.itemA.ID))
	var cancels int64
	require.NoError(t, db.Model(&models.Cancellation{}).Count(&cancels).Error)
	assert.Zero(t, cancels)
}

func TestSplitMovesLinesWithoutTouchingStock(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	src, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines: []service.LineRequest{
			{ItemID: f.itemA.ID, Quantity: 3},
			{ItemID: f.itemB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	dest, err := svc.Split(ctx, service.SplitCmd{
		OrderID:    src.ID,
		NewTableID: f.table2.ID,
		ActorID:    f.attendant.ID,
		Lines:      []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, dest.Items, 1)
	assert.Equal(t, 1, dest.Items[0].Quantity)
	assert.Equal(t, 1000.0, dest.TotalAmount)

	var srcReloaded models.Order
	require.NoError(t, db.Preload("Items").First(&srcReloaded, src.ID).Error)
	assert.Equal(t, 2*1000.0+1500.0, srcReloaded.TotalAmount)

	// conservation: quantities only moved, stock is untouched
	assert.Equal(t, 7, itemStock(t, db, f.itemA.ID))
	assert.Equal(t, 3, openQuantity(t, db, f.itemA.ID))

	table2 := reloadTable(t, db, f.table2.ID)
	assert.Equal(t, models.TableOccupied, table2.Status)
	require.NotNil(t, table2.CurrentOrderID)
	assert.Equal(t, dest.ID, *table2.CurrentOrderID)
}

func TestSplitDrainsSourceOrder(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	src, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = svc.Split(ctx, service.SplitCmd{
		OrderID:    src.ID,
		NewTableID: f.table2.ID,
		ActorID:    f.attendant.ID,
		Lines:      []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, db.First(&models.Order{}, src.ID).Error, gorm.ErrRecordNotFound)
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, f.table1.ID).Status)
}

func TestSplitRejectsOccupiedDestination(t *testing.T) {
	svc, _, f, _ := newOrderService(t)
	ctx := context.Background()

	src, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table2.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemB.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Split(ctx, service.SplitCmd{
		OrderID:    src.ID,
		NewTableID: f.table2.ID,
		ActorID:    f.attendant.ID,
		Lines:      []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrTableNotAvailable)
}

func TestPayCreatesSaleWithChangeAndRetiresOrder(t *testing.T) {
	svc, db, f, sp := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	sale, err := svc.Pay(ctx, service.PayCmd{
		OrderID:        order.ID,
		Method:         models.PayCash,
		AmountReceived: 2500,
		ActorID:        f.cashier.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.SalePaid, sale.Status)
	assert.Equal(t, models.PayCash, sale.PaymentMethod)
	assert.Equal(t, 2000.0, sale.TotalAmount)
	assert.Equal(t, 500.0, sale.Change)
	assert.Equal(t, 1, reloadTable(t, db, f.table1.ID).Number)
	assert.NotEmpty(t, sale.InvoiceNo)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Grilled Chicken", sale.Items[0].ItemName)
	assert.Equal(t, f.kitchen.ID, sale.Items[0].StoreID)

	// sold goods stay out of stock
	assert.Equal(t, 8, itemStock(t, db, f.itemA.ID))
	assert.ErrorIs(t, db.First(&models.Order{}, order.ID).Error, gorm.ErrRecordNotFound)
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, f.table1.ID).Status)

	require.Len(t, sp.byType(printing.JobBill), 1)
}

func TestPayRejectsUnderpayment(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = svc.Pay(ctx, service.PayCmd{
		OrderID:        order.ID,
		Method:         models.PayCash,
		AmountReceived: 1999,
		ActorID:        f.cashier.ID,
	})
	require.ErrorIs(t, err, service.ErrUnderpaid)

	// order untouched
	require.NoError(t, db.First(&models.Order{}, order.ID).Error)
	var sales int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&sales).Error)
	assert.Zero(t, sales)
}

func TestPayRejectsUnknownMethod(t *testing.T) {
	svc, _, f, _ := newOrderService(t)

	order, err := svc.CreateOrder(context.Background(), service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), service.PayCmd{
		OrderID:        order.ID,
		Method:         "CHECK",
		AmountReceived: 5000,
	})
	require.ErrorIs(t, err, service.ErrInvalidPayment)
}

func TestSignCreatesReceivable(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemB.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	sale, err := svc.Sign(ctx, order.ID, f.client.ID, f.cashier.ID)
	require.NoError(t, err)

	assert.Equal(t, models.SaleSigned, sale.Status)
	assert.Equal(t, 3000.0, sale.TotalAmount)

	var bill models.SignedBill
	require.NoError(t, db.Where("sale_id = ?", sale.ID).First(&bill).Error)
	assert.Equal(t, f.client.ID, bill.ClientID)
	assert.Equal(t, 3000.0, bill.Amount)
	assert.Equal(t, f.attendant.ID, bill.AttendantID)

	assert.Equal(t, models.TableAvailable, reloadTable(t, db, f.table1.ID).Status)
	assert.Equal(t, 3, itemStock(t, db, f.itemB.ID))
}

func TestSignUnknownClient(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Sign(ctx, order.ID, 9999, f.cashier.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	require.NoError(t, db.First(&models.Order{}, order.ID).Error)
}

func TestInvoiceNumbersAreSequentialPerSale(t *testing.T) {
	svc, _, f, _ := newOrderService(t)
	ctx := context.Background()

	var invoices []string
	for i := 0; i < 3; i++ {
		order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
			AttendantID: f.attendant.ID,
			Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		sale, err := svc.Pay(ctx, service.PayCmd{
			OrderID:        order.ID,
			Method:         models.PayCard,
			AmountReceived: 1000,
			ActorID:        f.cashier.ID,
		})
		require.NoError(t, err)
		invoices = append(invoices, sale.InvoiceNo)
	}

	assert.Len(t, invoices, 3)
	for i := 1; i < len(invoices); i++ {
		assert.NotEqual(t, invoices[i-1], invoices[i])
	}
}

func TestOrderByTable(t *testing.T) {
	svc, _, f, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.OrderByTable(ctx, f.table1.ID)
	require.ErrorIs(t, err, service.ErrNoActiveOrder)

	created, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	found, err := svc.OrderByTable(ctx, f.table1.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.OrderByTable(ctx, 9999)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPrintBillQueuesJobWithoutMutating(t *testing.T) {
	svc, db, f, sp := newOrderService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.PrintBill(ctx, f.table1.ID))

	bills := sp.byType(printing.JobBill)
	require.Len(t, bills, 1)
	assert.Equal(t, "10.0.0.10:9100", bills[0].PrinterAddress)
	assert.Equal(t, 2000.0, bills[0].Total)
	assert.Equal(t, 1, bills[0].TableNumber)

	// still pending, stock unchanged
	require.NoError(t, db.First(&models.Order{}, order.ID).Error)
	assert.Equal(t, 8, itemStock(t, db, f.itemA.ID))
}

// Stock conservation across the whole lifecycle: whatever is not on an open
// order or in a sale is back in the catalog.
func TestStockConservation(t *testing.T) {
	svc, db, f, _ := newOrderService(t)
	ctx := context.Background()
	const initial = 10

	check := func(stage string) {
		total := itemStock(t, db, f.itemA.ID) +
			openQuantity(t, db, f.itemA.ID) +
			soldQuantity(t, db, f.itemA.ID)
		assert.Equal(t, initial, total, stage)
	}

	order, err := svc.CreateOrder(ctx, service.CreateOrderCmd{
		AttendantID: f.attendant.ID,
		TableID:     &f.table1.ID,
		Lines:       []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	check("after create")

	order, err = svc.AddItems(ctx, service.AddItemsCmd{
		OrderID: order.ID, ActorID: f.attendant.ID,
		Lines: []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	check("after add")

	order, err = svc.RemoveItems(ctx, service.RemoveItemsCmd{
		OrderID: order.ID, ActorID: f.attendant.ID,
		Lines: []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	check("after cancel")

	_, err = svc.Split(ctx, service.SplitCmd{
		OrderID: order.ID, NewTableID: f.table2.ID, ActorID: f.attendant.ID,
		Lines: []service.LineRequest{{ItemID: f.itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	check("after split")

	_, err = svc.Pay(ctx, service.PayCmd{
		OrderID: order.ID, Method: models.PayCash, AmountReceived: 100000, ActorID: f.cashier.ID,
	})
	require.NoError(t, err)
	check("after pay")
}
