package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/gbalekage/my-pos-v2-sub000/config"
	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/printing"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

// recordSpooler captures enqueued jobs instead of printing them.
type recordSpooler struct {
	mu   sync.Mutex
	jobs []printing.Job
}

func (r *recordSpooler) Enqueue(ctx context.Context, job printing.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
}

func (r *recordSpooler) Close() error { return nil }

func (r *recordSpooler) byType(t printing.JobType) []printing.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []printing.Job
	for _, j := range r.jobs {
		if j.Type == t {
			out = append(out, j)
		}
	}
	return out
}

type fixture struct {
	attendant models.User
	cashier   models.User
	client    models.Client
	kitchen   models.Store
	bar       models.Store
	itemA     models.Item // kitchen, price 1000, stock 10
	itemB     models.Item // bar, price 1500, stock 5
	table1    models.Table
	table2    models.Table
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{}

	f.attendant = models.User{Username: "alice", FullName: "Alice", Role: models.RoleAttendant, IsActive: true}
	f.cashier = models.User{Username: "bob", FullName: "Bob", Role: models.RoleCashier, IsActive: true}
	require.NoError(t, db.Create(&f.attendant).Error)
	require.NoError(t, db.Create(&f.cashier).Error)

	f.client = models.Client{Name: "Regular Joe"}
	require.NoError(t, db.Create(&f.client).Error)

	kitchenPrinter := models.Printer{Name: "kitchen", Address: "10.0.0.11:9100"}
	barPrinter := models.Printer{Name: "bar", Address: "10.0.0.12:9100"}
	cashPrinter := models.Printer{Name: "cashier", Address: "10.0.0.10:9100"}
	require.NoError(t, db.Create(&kitchenPrinter).Error)
	require.NoError(t, db.Create(&barPrinter).Error)
	require.NoError(t, db.Create(&cashPrinter).Error)

	f.kitchen = models.Store{Name: "Kitchen", PrinterID: &kitchenPrinter.ID}
	f.bar = models.Store{Name: "Bar", PrinterID: &barPrinter.ID}
	require.NoError(t, db.Create(&f.kitchen).Error)
	require.NoError(t, db.Create(&f.bar).Error)

	cat := models.Category{Name: "Food"}
	require.NoError(t, db.Create(&cat).Error)

	f.itemA = models.Item{Name: "Grilled Chicken", Barcode: "A-001", StoreID: f.kitchen.ID, CategoryID: cat.ID, Price: 1000, Stock: 10}
	f.itemB = models.Item{Name: "Cold Beer", Barcode: "B-001", StoreID: f.bar.ID, CategoryID: cat.ID, Price: 1500, Stock: 5}
	require.NoError(t, db.Create(&f.itemA).Error)
	require.NoError(t, db.Create(&f.itemB).Error)

	f.table1 = models.Table{Number: 1, Status: models.TableAvailable}
	f.table2 = models.Table{Number: 2, Status: models.TableAvailable}
	require.NoError(t, db.Create(&f.table1).Error)
	require.NoError(t, db.Create(&f.table2).Error)

	return f
}

func itemStock(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var item models.Item
	require.NoError(t, db.First(&item, itemID).Error)
	return item.Stock
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) models.Table {
	t.Helper()
	var table models.Table
	require.NoError(t, db.First(&table, id).Error)
	return table
}

// openQuantity sums the quantity of an item across all open order lines.
func openQuantity(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var n struct{ Total int }
	require.NoError(t, db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("item_id = ?", itemID).Scan(&n).Error)
	return n.Total
}

// soldQuantity sums the quantity of an item across all finalized sales.
func soldQuantity(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var n struct{ Total int }
	require.NoError(t, db.Model(&models.SaleItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("item_id = ?", itemID).Scan(&n).Error)
	return n.Total
}
