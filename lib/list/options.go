package list

import (
	"strings"

	"github.com/benz9527/xlist/lib/xlog"
)

type sllOptions struct {
	logger      xlog.XLogger
	statsName   string
	enableStats bool
}

type SinglyLinkedListOption func(opts *sllOptions)

// WithSinglyLinkedListStats enables the otel metrics of one list. The
// name keeps the meters of multiple lists inside one process apart.
func WithSinglyLinkedListStats(name string) SinglyLinkedListOption {
	return func(opts *sllOptions) {
		if len(strings.TrimSpace(name)) <= 0 {
			panic("singly-linked-list's stats name must not be empty or blank")
		}
		opts.enableStats = true
		opts.statsName = name
	}
}

// WithSinglyLinkedListLogger hands the list a logger for the swap debug
// logs. Without it the list stays silent.
func WithSinglyLinkedListLogger(logger xlog.XLogger) SinglyLinkedListOption {
	return func(opts *sllOptions) {
		if logger == nil {
			panic("singly-linked-list's logger must not be nil")
		}
		opts.logger = logger
	}
}
