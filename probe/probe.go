package probe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/airbusgeo/imagery-probe/common"
	"github.com/airbusgeo/imagery-probe/interface/provider"
	"github.com/airbusgeo/imagery-probe/service"
	"github.com/airbusgeo/imagery-probe/service/log"
	"go.uber.org/zap"
)

// Outcome of the probe of a provider: either a Result or an Err
type Outcome struct {
	Provider string
	Result   common.Result
	Err      error
}

// Line returns the status line of the outcome
func (o Outcome) Line() string {
	if o.Err != nil {
		return fmt.Sprintf("%s error: %v", o.Provider, o.Err)
	}
	return o.Result.Message
}

// Run probes the providers one after the other and writes one status line per provider.
// The failure of a provider never prevents the following ones from running.
func Run(ctx context.Context, w io.Writer, area common.Area, providers ...provider.ImageryProvider) []Outcome {
	outcomes := make([]Outcome, 0, len(providers))
	for _, p := range providers {
		outcome := probeOne(log.With(ctx, zap.String(common.TagProvider, p.Name())), p, area)
		fmt.Fprintln(w, outcome.Line())
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func probeOne(ctx context.Context, p provider.ImageryProvider, area common.Area) (outcome Outcome) {
	outcome.Provider = p.Name()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			outcome.Result = common.Result{}
			outcome.Err = fmt.Errorf("panic: %v", r)
		}
		logOutcome(ctx, outcome, time.Since(start))
	}()

	outcome.Result, outcome.Err = p.Probe(ctx, area)
	switch {
	case outcome.Err != nil && outcome.Err.Error() == "":
		outcome.Err = fmt.Errorf("%s failure%w", service.KindOf(outcome.Err), outcome.Err)
	case outcome.Err == nil && outcome.Result.Message == "":
		outcome.Result.Message = p.Name() + ": ok"
	}
	return outcome
}

func logOutcome(ctx context.Context, outcome Outcome, elapsed time.Duration) {
	logger := log.Logger(ctx)
	if outcome.Err != nil {
		logger.Warn("probe failed",
			zap.Error(outcome.Err),
			zap.Stringer(common.TagKind, service.KindOf(outcome.Err)),
			zap.Bool(common.TagTemporary, service.Temporary(outcome.Err)),
			zap.Duration(common.TagDuration, elapsed))
		return
	}
	logger.Debug("probe succeeded",
		zap.String(common.TagURL, outcome.Result.URL),
		zap.Bool("found", outcome.Result.Found),
		zap.Duration(common.TagDuration, elapsed))
}
