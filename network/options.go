// Package network: functional configuration for graph construction.
// Options select the three structural column names and the logger used to
// report dropped columns during reverse extraction. Defaults are the
// package-level Default* constants and log.Default().

package network

import "github.com/charmbracelet/log"

// Internal panic messages for nonsensical option values (programmer error).
const (
	panicEmptySourceColumn = "network: WithSourceColumn: name must not be empty"
	panicEmptyTargetColumn = "network: WithTargetColumn: name must not be empty"
	panicEmptyNodeIDColumn = "network: WithNodeIDColumn: name must not be empty"
)

// Option configures graph construction. Apply order is last-writer-wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	sourceCol string
	targetCol string
	nodeIDCol string
	logger    *log.Logger
}

// WithSourceColumn sets the name of the edge source-endpoint column.
// Panics on an empty name.
func WithSourceColumn(name string) Option {
	if name == "" {
		panic(panicEmptySourceColumn)
	}

	return func(o *options) { o.sourceCol = name }
}

// WithTargetColumn sets the name of the edge target-endpoint column.
// Panics on an empty name.
func WithTargetColumn(name string) Option {
	if name == "" {
		panic(panicEmptyTargetColumn)
	}

	return func(o *options) { o.targetCol = name }
}

// WithNodeIDColumn sets the name of the node identifier column.
// Panics on an empty name.
func WithNodeIDColumn(name string) Option {
	if name == "" {
		panic(panicEmptyNodeIDColumn)
	}

	return func(o *options) { o.nodeIDCol = name }
}

// WithLogger sets the logger used for construction diagnostics.
// A nil logger restores log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		sourceCol: DefaultSourceColumn,
		targetCol: DefaultTargetColumn,
		nodeIDCol: DefaultNodeIDColumn,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	return o
}
