// Package summarize dispatches summarization requests to provider adapters,
// chunking long content for providers with small input ceilings and
// recombining the partial results.
package summarize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/brief"
	"golang.org/x/time/rate"
)

// Defaults for chunked providers.
const (
	DefaultChunkSize       = 1000
	DefaultMinChunkLength  = 50
	DefaultReduceThreshold = 200
)

// partialSeparator joins partial summaries into the combined summary.
const partialSeparator = "\n\n"

// Ensure Service implements brief.SummaryService at compile time.
var _ brief.SummaryService = (*Service)(nil)

// Service orchestrates summarization across providers.
// Service holds no per-request state and is safe for concurrent use once
// configured.
type Service struct {
	// Adapters maps each supported provider to its adapter. A provider
	// without an entry is rejected with EUNSUPPORTED.
	Adapters map[brief.Provider]brief.Adapter

	// ChunkSize is the maximum chunk length in characters.
	// Defaults to DefaultChunkSize.
	ChunkSize int

	// MinChunkLength is the shortest chunk, after trimming, worth sending.
	// Shorter chunks are skipped. Defaults to DefaultMinChunkLength.
	MinChunkLength int

	// ReduceThreshold is the combined summary word count above which a
	// reduction pass is attempted. Defaults to DefaultReduceThreshold.
	ReduceThreshold int

	// ChunkInterval is the minimum spacing between consecutive chunk
	// requests within one call. Zero disables pacing.
	ChunkInterval time.Duration

	// Logger receives progress messages. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Summarize summarizes req.Content with the requested provider.
//
// Hosted LLM providers receive the full content in one call. Chunked
// providers receive each eligible chunk in order, one call at a time; the
// partial summaries are joined with blank lines and, if still long,
// compressed by one best-effort reduction pass.
func (s *Service) Summarize(ctx context.Context, req *brief.SummarizeRequest) (*brief.SummarizeResult, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, brief.Errorf(brief.EINVALID, "Content is required")
	}

	provider := brief.DefaultProvider
	if strings.TrimSpace(req.Provider) != "" {
		p, err := brief.ParseProvider(req.Provider)
		if err != nil {
			return nil, err
		}
		provider = p
	}
	adapter, ok := s.Adapters[provider]
	if !ok || adapter == nil {
		return nil, brief.Errorf(brief.EUNSUPPORTED, "provider %s is not available", provider)
	}

	if c, ok := adapter.(brief.CredentialChecker); ok && !c.Configured() {
		return nil, brief.Errorf(brief.EMISSINGCREDENTIALS, "%s API key not configured", provider.DisplayName())
	}

	model := req.Model
	if model == "" {
		model = adapter.DefaultModel()
	}

	log := s.logger().With("provider", string(provider), "model", model)
	log.InfoContext(ctx, "summarization started", "chars", utf8.RuneCountInString(req.Content))

	result := &brief.SummarizeResult{Provider: provider, Model: model}

	if !provider.Chunked() {
		summary, err := adapter.SummarizeOne(ctx, req.Content, model)
		if err != nil {
			return nil, err
		}
		result.Summary = summary
		result.Chunks = 1
		return result, nil
	}

	combined, n, err := s.summarizeChunks(ctx, log, adapter, req.Content, model)
	if err != nil {
		return nil, err
	}
	result.Summary = combined
	result.Chunks = n

	if brief.WordCount(combined) > s.reduceThreshold() {
		if reduced, ok := s.reduce(ctx, log, adapter, combined, model); ok {
			result.Summary = reduced
			result.Reduced = true
		}
	}

	return result, nil
}

// Providers lists every provider with a configured adapter, in display order.
func (s *Service) Providers() []*brief.ProviderInfo {
	var infos []*brief.ProviderInfo
	for _, p := range brief.Providers() {
		adapter, ok := s.Adapters[p]
		if !ok || adapter == nil {
			continue
		}
		configured := true
		if c, ok := adapter.(brief.CredentialChecker); ok {
			configured = c.Configured()
		}
		infos = append(infos, &brief.ProviderInfo{
			ID:           p,
			Name:         p.DisplayName(),
			Description:  p.Description(),
			DefaultModel: adapter.DefaultModel(),
			Configured:   configured,
		})
	}
	return infos
}

// summarizeChunks summarizes each eligible chunk sequentially and returns the
// combined summary along with the number of adapter calls made.
func (s *Service) summarizeChunks(ctx context.Context, log *slog.Logger, adapter brief.Adapter, content, model string) (string, int, error) {
	minLen := s.minChunkLength()

	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < minLen {
		return "", 0, brief.Errorf(brief.ECONTENTTOOSHORT, "content too short to summarize (minimum %d characters)", minLen)
	}

	chunks := brief.ChunkText(content, s.chunkSize())
	log.InfoContext(ctx, "content chunked", "chunks", len(chunks))

	limiter := s.newLimiter()
	partials := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		if utf8.RuneCountInString(strings.TrimSpace(chunk.Text)) < minLen {
			log.InfoContext(ctx, "skipping short chunk",
				"chunk", chunk.Index+1,
				"chunks", len(chunks),
				"chars", chunk.Len())
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return "", len(partials), err
		}

		log.DebugContext(ctx, "summarizing chunk",
			"chunk", chunk.Index+1,
			"chunks", len(chunks),
			"chars", chunk.Len())

		partial, err := adapter.SummarizeOne(ctx, chunk.Text, model)
		if err != nil {
			return "", len(partials), fmt.Errorf("summarize chunk %d/%d: %w", chunk.Index+1, len(chunks), err)
		}
		partials = append(partials, partial)
	}

	if len(partials) == 0 {
		return "", 0, brief.Errorf(brief.EALLCHUNKSTOOSHORT, "all chunks were too short to summarize")
	}

	return strings.Join(partials, partialSeparator), len(partials), nil
}

// reduce runs the compression pass over the combined summary.
//
// This pass is best-effort: when it fails the error is logged and dropped,
// and the caller keeps the unreduced combined summary. A failure here never
// fails the request.
func (s *Service) reduce(ctx context.Context, log *slog.Logger, adapter brief.Adapter, combined, model string) (string, bool) {
	var (
		reduced string
		err     error
	)
	if r, ok := adapter.(brief.Reducer); ok {
		reduced, err = r.Reduce(ctx, combined, model)
	} else {
		reduced, err = adapter.SummarizeOne(ctx, combined, model)
	}
	if err != nil {
		log.WarnContext(ctx, "reduction pass failed, using combined summaries",
			"words", brief.WordCount(combined),
			"err", err)
		return "", false
	}
	if strings.TrimSpace(reduced) == "" {
		log.WarnContext(ctx, "reduction pass returned empty summary, using combined summaries",
			"words", brief.WordCount(combined))
		return "", false
	}
	return reduced, true
}

// newLimiter returns a limiter scoped to a single Summarize call.
func (s *Service) newLimiter() *rate.Limiter {
	if s.ChunkInterval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(s.ChunkInterval), 1)
}

func (s *Service) chunkSize() int {
	if s.ChunkSize > 0 {
		return s.ChunkSize
	}
	return DefaultChunkSize
}

func (s *Service) minChunkLength() int {
	if s.MinChunkLength > 0 {
		return s.MinChunkLength
	}
	return DefaultMinChunkLength
}

func (s *Service) reduceThreshold() int {
	if s.ReduceThreshold > 0 {
		return s.ReduceThreshold
	}
	return DefaultReduceThreshold
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
