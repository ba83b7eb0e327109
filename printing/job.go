package printing

import (
	"fmt"
	"strings"
	"time"
)

type JobType string

const (
	JobOrderTicket  JobType = "ORDER_TICKET"
	JobCancelTicket JobType = "CANCEL_TICKET"
	JobBill         JobType = "BILL"
	JobCloseReport  JobType = "CLOSE_REPORT"
)

// Line is one printable row of a ticket.
type Line struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Job is a fully self-contained print job: by the time it is enqueued the
// owning transaction has committed, so the job carries everything the
// renderer needs and never reads the database.
type Job struct {
	ID             string    `json:"id"`
	Type           JobType   `json:"type"`
	PrinterAddress string    `json:"printer_address"`
	StoreName      string    `json:"store_name"`
	TableNumber    int       `json:"table_number"`
	Attendant      string    `json:"attendant"`
	Lines          []Line    `json:"lines,omitempty"`
	Total          float64   `json:"total,omitempty"`
	Footer         []string  `json:"footer,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

const ticketWidth = 32

// Render produces the plain-text ticket body sent to the printer, ending
// with an ESC/POS full-cut sequence.
func Render(j Job) []byte {
	var b strings.Builder

	center := func(s string) {
		if pad := (ticketWidth - len(s)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	rule := func() {
		b.WriteString(strings.Repeat("-", ticketWidth))
		b.WriteByte('\n')
	}

	switch j.Type {
	case JobOrderTicket:
		center(j.StoreName)
		center("NEW ORDER")
	case JobCancelTicket:
		center(j.StoreName)
		center("** CANCELLED **")
	case JobBill:
		center(j.StoreName)
		center("BILL")
	case JobCloseReport:
		center("CLOSE DAY")
	}
	rule()

	if j.TableNumber > 0 {
		fmt.Fprintf(&b, "Table: %d\n", j.TableNumber)
	}
	if j.Attendant != "" {
		fmt.Fprintf(&b, "Served by: %s\n", j.Attendant)
	}
	fmt.Fprintf(&b, "%s\n", j.CreatedAt.Format("2006-01-02 15:04"))
	rule()

	for _, l := range j.Lines {
		name := l.Name
		if len(name) > 20 {
			name = name[:20]
		}
		if l.Price > 0 {
			fmt.Fprintf(&b, "%2dx %-20s %7.0f\n", l.Quantity, name, l.Price*float64(l.Quantity))
		} else {
			fmt.Fprintf(&b, "%2dx %s\n", l.Quantity, name)
		}
	}

	if j.Total != 0 || j.Type == JobBill || j.Type == JobCloseReport {
		rule()
		fmt.Fprintf(&b, "%-24s %7.0f\n", "TOTAL", j.Total)
	}
	for _, f := range j.Footer {
		b.WriteString(f)
		b.WriteByte('\n')
	}

	b.WriteString("\n\n\n")
	b.WriteString("\x1dV\x00") // GS V 0, full cut
	return []byte(b.String())
}
