package mock

import (
	"context"

	"github.com/fwojciec/brief"
)

var (
	_ brief.Adapter = (*Adapter)(nil)
	_ brief.Adapter = (*ReducingAdapter)(nil)
	_ brief.Reducer = (*ReducingAdapter)(nil)
)

// Adapter is a mock implementation of brief.Adapter.
type Adapter struct {
	DefaultModelFn func() string
	SummarizeOneFn func(ctx context.Context, text, model string) (string, error)
}

func (a *Adapter) DefaultModel() string {
	return a.DefaultModelFn()
}

func (a *Adapter) SummarizeOne(ctx context.Context, text, model string) (string, error) {
	return a.SummarizeOneFn(ctx, text, model)
}

// ReducingAdapter is a mock implementation of brief.Adapter that also
// implements brief.Reducer.
type ReducingAdapter struct {
	Adapter
	ReduceFn func(ctx context.Context, text, model string) (string, error)
}

func (a *ReducingAdapter) Reduce(ctx context.Context, text, model string) (string, error) {
	return a.ReduceFn(ctx, text, model)
}
