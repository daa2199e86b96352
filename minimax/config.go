package minimax

import (
	"runtime"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config collects everything that shapes a search.
type Config struct {
	// MaxDepth is the number of plies searched before the quiescence
	// rules take over.
	MaxDepth int

	// QMaxDepth bounds how far past zero the quiescence extension may
	// chase captures. It is zero or negative.
	QMaxDepth int

	// Timeout is the wall-clock budget for one BestMove call; zero
	// means unlimited.
	Timeout time.Duration

	// UseThreads fans the root moves out across workers.
	UseThreads bool

	// UseCache consults and feeds the move cache.
	UseCache bool

	// AcceptableRisk is the highest cache-entry risk the search will
	// trust without re-evaluating, between 0 and 1.
	AcceptableRisk float32

	// ReservedCores is how many CPUs the parallel root leaves idle.
	ReservedCores int
}

// DefaultConfig returns the standard configuration for a search of
// maxDepth plies: two quiescence plies, quarter risk tolerance, no
// timeout, serial, cache off.
func DefaultConfig(maxDepth int) Config {
	return Config{
		MaxDepth:       maxDepth,
		QMaxDepth:      -2,
		AcceptableRisk: 0.25,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.MaxDepth < 1 {
		errs = multierror.Append(errs, errors.Errorf("max depth must be at least 1, got %d", c.MaxDepth))
	}
	if c.QMaxDepth > 0 {
		errs = multierror.Append(errs, errors.Errorf("quiescence depth must be zero or negative, got %d", c.QMaxDepth))
	}
	if c.Timeout < 0 {
		errs = multierror.Append(errs, errors.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.AcceptableRisk < 0 || c.AcceptableRisk > 1 {
		errs = multierror.Append(errs, errors.Errorf("acceptable risk must be within [0,1], got %g", c.AcceptableRisk))
	}
	if c.ReservedCores < 0 {
		errs = multierror.Append(errs, errors.Errorf("reserved cores must not be negative, got %d", c.ReservedCores))
	}
	return errs.ErrorOrNil()
}

// workerLimit bounds the parallel root fan-out. Reserving more cores
// than the machine has still leaves one worker.
func (c Config) workerLimit() int {
	limit := runtime.NumCPU() - c.ReservedCores
	if limit < 1 {
		limit = 1
	}
	return limit
}
