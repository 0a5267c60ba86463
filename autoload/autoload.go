package autoload

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InitFunc is a registered initializer. It runs exactly once per Run or
// RunCollect invocation and reports failure through its error.
type InitFunc func() error

var (
	mu       sync.Mutex
	registry = make(map[string]InitFunc)
)

// Register records an initializer under a unique name, typically from the
// registering package's init function:
//
//	func init() {
//	    autoload.Register("reports.cleanup", setupCleanup)
//	}
//
// Registering a nil function or reusing a name panics, since both are
// programming errors that must surface at startup.
func Register(name string, fn InitFunc) {
	mu.Lock()
	defer mu.Unlock()

	if fn == nil {
		panic("autoload: Register called with nil InitFunc for " + name)
	}
	if _, dup := registry[name]; dup {
		panic("autoload: Register called twice for " + name)
	}
	registry[name] = fn
}

// Names returns the registered initializer names in the order they will
// run (sorted lexically).
func Names() []string {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes every registered initializer in sorted name order, stopping
// at the first failure. A panicking initializer is reported as a failure,
// not propagated.
func Run() error {
	for _, name := range Names() {
		if err := call(name); err != nil {
			return fmt.Errorf("autoload: initializer %s failed: %w", name, err)
		}
	}
	return nil
}

// RunCollect executes every registered initializer in sorted name order,
// logging each failure and carrying on with the rest. It reports whether
// any initializer failed. All log lines from one invocation share a
// run_id, so interleaved startup output stays attributable.
//
// If logger is nil, slog.Default() is used.
func RunCollect(logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.New().String())

	hadError := false
	for _, name := range Names() {
		if err := call(name); err != nil {
			hadError = true
			logger.Error("initializer failed",
				"initializer", name,
				"error", err)
		}
	}
	return hadError
}

// Reset clears the registry. This is primarily useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[string]InitFunc)
}

// call runs one initializer, converting a panic into an error so a single
// broken initializer cannot take down the whole startup sequence.
func call(name string) (err error) {
	mu.Lock()
	fn, ok := registry[name]
	mu.Unlock()
	if !ok {
		return fmt.Errorf("initializer %s is not registered", name)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initializer %s panicked: %v", name, r)
		}
	}()
	return fn()
}
