package execution

import (
	"context"

	"surefire/internal/booter"
	"surefire/internal/domain"
)

// Engine runs the batteries of a configured booter and reports the overall verdict.
// A returned error means the run itself broke (launch failure, I/O, bad configuration),
// test failures are reported through RunResult.Success.
type Engine interface {
	Run(ctx context.Context, b *booter.Booter) (*domain.RunResult, error)
}

// Progress receives per-set completion updates
type Progress interface {
	Update(passed, failed int)
	Finish()
}
