package mock

import (
	"context"

	"github.com/fwojciec/brief"
)

var _ brief.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of brief.SummaryService.
type SummaryService struct {
	SummarizeFn func(ctx context.Context, req *brief.SummarizeRequest) (*brief.SummarizeResult, error)
	ProvidersFn func() []*brief.ProviderInfo
}

func (s *SummaryService) Summarize(ctx context.Context, req *brief.SummarizeRequest) (*brief.SummarizeResult, error) {
	return s.SummarizeFn(ctx, req)
}

func (s *SummaryService) Providers() []*brief.ProviderInfo {
	return s.ProvidersFn()
}
