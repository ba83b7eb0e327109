package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/printing"
)

// ClosingService turns the day's Sales and Expenses into one immutable
// reconciliation snapshot and serves the dashboard totals.
type ClosingService struct {
	db      *gorm.DB
	spooler printing.Spooler
	log     zerolog.Logger
}

func NewClosingService(db *gorm.DB, spooler printing.Spooler) *ClosingService {
	return &ClosingService{
		db:      db,
		spooler: spooler,
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "closing").Logger(),
	}
}

type CloseDayCmd struct {
	Date             string
	DeclaredCash     float64
	DeclaredCard     float64
	DeclaredMobile   float64
	DeclaredExpenses float64
	Notes            string
	ActorID          uint
}

type StoreBreakdownRow struct {
	StoreID   uint    `json:"store_id"`
	StoreName string  `json:"store_name"`
	Quantity  int64   `json:"quantity"`
	Amount    float64 `json:"amount"`
}

type ItemBreakdownRow struct {
	ItemID   uint    `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quantity int64   `json:"quantity"`
	Amount   float64 `json:"amount"`
}

type AttendantBreakdownRow struct {
	AttendantID uint    `json:"attendant_id"`
	Name        string  `json:"name"`
	Sales       int64   `json:"sales"`
	Amount      float64 `json:"amount"`
}

// CloseDay writes the reconciliation row for the date. Blocked while any
// table is occupied and when the date was already closed.
func (s *ClosingService) CloseDay(ctx context.Context, cmd CloseDayCmd) (*models.CloseDay, error) {
	day, err := time.ParseInLocation("2006-01-02", cmd.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	from, to := day, day.Add(24*time.Hour)

	var snapshot models.CloseDay
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occupied int64
		if err := tx.Model(&models.Table{}).
			Where("status = ?", models.TableOccupied).Count(&occupied).Error; err != nil {
			return err
		}
		if occupied > 0 {
			return ErrActiveTablesExist
		}

		var existing int64
		if err := tx.Model(&models.CloseDay{}).
			Where("date = ?", cmd.Date).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyClosed
		}

		sums := struct {
			Paid   float64
			Signed float64
			Cash   float64
			Card   float64
			Mobile float64
		}{}
		err := tx.Model(&models.Sale{}).
			Select(`
				COALESCE(SUM(CASE WHEN status = 'PAID' THEN total_amount ELSE 0 END), 0)   AS paid,
				COALESCE(SUM(CASE WHEN status = 'SIGNED' THEN total_amount ELSE 0 END), 0) AS signed,
				COALESCE(SUM(CASE WHEN payment_method = 'CASH' THEN total_amount ELSE 0 END), 0)   AS cash,
				COALESCE(SUM(CASE WHEN payment_method = 'CARD' THEN total_amount ELSE 0 END), 0)   AS card,
				COALESCE(SUM(CASE WHEN payment_method = 'MOBILE' THEN total_amount ELSE 0 END), 0) AS mobile
			`).
			Where("created_at >= ? AND created_at < ?", from, to).
			Scan(&sums).Error
		if err != nil {
			return err
		}

		var expenses float64
		if err := tx.Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("created_at >= ? AND created_at < ?", from, to).
			Scan(&expenses).Error; err != nil {
			return err
		}

		stores, items, attendants, err := s.breakdowns(tx, from, to)
		if err != nil {
			return err
		}

		declaredTotal := cmd.DeclaredCash + cmd.DeclaredCard + cmd.DeclaredMobile
		totalSales := sums.Paid + sums.Signed
		// signed sales are receivables, not cash in the drawer
		totalCollections := totalSales - expenses - sums.Signed
		difference := declaredTotal - totalCollections

		status := models.CloseBalance
		switch {
		case difference > 0:
			status = models.CloseExcess
		case difference < 0:
			status = models.CloseShortage
		}

		snapshot = models.CloseDay{
			Date:               cmd.Date,
			DeclaredCash:       cmd.DeclaredCash,
			DeclaredCard:       cmd.DeclaredCard,
			DeclaredMobile:     cmd.DeclaredMobile,
			DeclaredTotal:      declaredTotal,
			CollectedCash:      sums.Cash - expenses,
			CollectedCard:      sums.Card,
			CollectedMobile:    sums.Mobile,
			PaidTotal:          sums.Paid,
			SignedTotal:        sums.Signed,
			TotalSales:         totalSales,
			ExpensesTotal:      expenses,
			DeclaredExpenses:   cmd.DeclaredExpenses,
			TotalCollections:   totalCollections,
			TotalDifference:    difference,
			Status:             status,
			Notes:              cmd.Notes,
			StoreBreakdown:     mustJSON(stores),
			ItemBreakdown:      mustJSON(items),
			AttendantBreakdown: mustJSON(attendants),
			ClosedByID:         cmd.ActorID,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyClosed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.spooler.Enqueue(ctx, printing.Job{
		ID:             uuid.NewString(),
		Type:           printing.JobCloseReport,
		PrinterAddress: billPrinterAddress(s.db.WithContext(ctx)),
		Total:          snapshot.TotalCollections,
		Footer: []string{
			"Date: " + snapshot.Date,
			"Status: " + string(snapshot.Status),
		},
		CreatedAt: time.Now(),
	})
	s.log.Info().Str("date", snapshot.Date).Str("status", string(snapshot.Status)).
		Float64("difference", snapshot.TotalDifference).Msg("day closed")
	return &snapshot, nil
}

func (s *ClosingService) breakdowns(tx *gorm.DB, from, to time.Time) ([]StoreBreakdownRow, []ItemBreakdownRow, []AttendantBreakdownRow, error) {
	var stores []StoreBreakdownRow
	err := tx.Table("sale_items").
		Select(`
			sale_items.store_id,
			st.name AS store_name,
			SUM(sale_items.quantity) AS quantity,
			SUM(sale_items.price * sale_items.quantity) AS amount
		`).
		Joins("INNER JOIN sales s ON s.id = sale_items.sale_id").
		Joins("INNER JOIN stores st ON st.id = sale_items.store_id").
		Where("s.created_at >= ? AND s.created_at < ?", from, to).
		Group("sale_items.store_id, st.name").
		Scan(&stores).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var items []ItemBreakdownRow
	err = tx.Table("sale_items").
		Select(`
			sale_items.item_id,
			sale_items.item_name,
			SUM(sale_items.quantity) AS quantity,
			SUM(sale_items.price * sale_items.quantity) AS amount
		`).
		Joins("INNER JOIN sales s ON s.id = sale_items.sale_id").
		Where("s.created_at >= ? AND s.created_at < ?", from, to).
		Group("sale_items.item_id, sale_items.item_name").
		Scan(&items).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var attendants []AttendantBreakdownRow
	err = tx.Table("sales").
		Select(`
			sales.attendant_id,
			u.full_name AS name,
			COUNT(sales.id) AS sales,
			SUM(sales.total_amount) AS amount
		`).
		Joins("INNER JOIN users u ON u.id = sales.attendant_id").
		Where("sales.created_at >= ? AND sales.created_at < ?", from, to).
		Group("sales.attendant_id, u.full_name").
		Scan(&attendants).Error
	if err != nil {
		return nil, nil, nil, err
	}
	return stores, items, attendants, nil
}

// TodayPendingTotal sums the open orders' current totals.
func (s *ClosingService) TodayPendingTotal(ctx context.Context) (float64, error) {
	var total float64
	from, to := todayRange()
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderPending, from, to).
		Scan(&total).Error
	return total, err
}

// TodaySalesTotal sums today's PAID sales.
func (s *ClosingService) TodaySalesTotal(ctx context.Context) (float64, error) {
	return s.todaySalesByStatus(ctx, models.SalePaid)
}

// TodaySignedTotal sums today's SIGNED sales.
func (s *ClosingService) TodaySignedTotal(ctx context.Context) (float64, error) {
	return s.todaySalesByStatus(ctx, models.SaleSigned)
}

func (s *ClosingService) todaySalesByStatus(ctx context.Context, status models.SaleStatus) (float64, error) {
	var total float64
	from, to := todayRange()
	err := s.db.WithContext(ctx).Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND created_at >= ? AND created_at < ?", status, from, to).
		Scan(&total).Error
	return total, err
}

// TodayExpensesTotal sums today's expenses.
func (s *ClosingService) TodayExpensesTotal(ctx context.Context) (float64, error) {
	var total float64
	from, to := todayRange()
	err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total, err
}

func todayRange() (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.Add(24 * time.Hour)
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
