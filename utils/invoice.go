package utils

import (
	"fmt"
	"time"
)

// GenInvoiceNo builds invoice numbers like INV-2026-000123.
func GenInvoiceNo(seq int64, t time.Time) string {
	return fmt.Sprintf("INV-%d-%06d", t.Year(), seq)
}
