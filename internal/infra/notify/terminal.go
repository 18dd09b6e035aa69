// Package notify delivers user-facing outcome messages to the terminal.
package notify

import (
	"fmt"
	"io"

	"foodies/internal/domain/service"
)

type terminalNotifier struct {
	out io.Writer
	err io.Writer
}

// NewTerminalNotifier writes success messages to out and failures to err.
func NewTerminalNotifier(out, err io.Writer) service.Notifier {
	return &terminalNotifier{out: out, err: err}
}

func (n *terminalNotifier) Success(message string) {
	fmt.Fprintln(n.out, message)
}

func (n *terminalNotifier) Error(message string) {
	fmt.Fprintln(n.err, "error: "+message)
}
