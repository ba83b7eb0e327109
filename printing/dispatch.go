package printing

import (
	"context"
	"fmt"
	"net"
)

// TCPDispatcher writes rendered tickets straight to the printer's raw
// socket (the usual jetdirect port 9100 on thermal printers).
type TCPDispatcher struct{}

func (TCPDispatcher) Dispatch(ctx context.Context, job Job) error {
	if job.PrinterAddress == "" {
		return fmt.Errorf("job %s has no printer address", job.ID)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", job.PrinterAddress)
	if err != nil {
		return fmt.Errorf("dial printer %s: %w", job.PrinterAddress, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if _, err := conn.Write(Render(job)); err != nil {
		return fmt.Errorf("write to printer %s: %w", job.PrinterAddress, err)
	}
	return nil
}
