package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// WarmupConfig defines configuration for warming up evaluators before serving
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager fills the buffer pools of registered components so the first
// real requests do not pay for allocation.
type Manager struct {
	logger      ports.Logger
	evaluators  []ports.Evaluator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterEvaluator adds an evaluator to be warmed up
func (wm *Manager) RegisterEvaluator(e ports.Evaluator) {
	wm.evaluators = append(wm.evaluators, e)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(n ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, n)
}

// WarmUp runs every registered component over sample text and returns the
// number of calls made.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"components", len(wm.evaluators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	samples := []string{
		generatePalindrome(wm.config.SampleTextSize),
		generateSampleText(wm.config.SampleTextSize),
		"",
	}

	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			defer func() {
				mu.Lock()
				calls += local
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				if ctx.Err() != nil {
					return
				}
				sample := samples[j%len(samples)]
				for _, n := range wm.normalizers {
					_ = n.Normalize(sample)
					local++
				}
				for _, e := range wm.evaluators {
					_ = e.Evaluate(sample)
					local++
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Warmup completed",
		"calls", calls,
		"duration", time.Since(startTime),
	)
	return calls
}

var sampleWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"Anita", "lava", "la", "tina", "level", "Noon", "racecar", "kayak",
}

// generateSampleText creates mixed-case text with punctuation, roughly size bytes long
func generateSampleText(size int) string {
	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			if i%7 == 0 {
				sb.WriteString(", ")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(sampleWords[i%len(sampleWords)])
	}
	return sb.String()
}

// generatePalindrome mirrors sample text so the evaluator walks the whole input
func generatePalindrome(size int) string {
	half := []rune(generateSampleText(size / 2))
	mirrored := make([]rune, 0, len(half)*2)
	mirrored = append(mirrored, half...)
	for i := len(half) - 1; i >= 0; i-- {
		mirrored = append(mirrored, half[i])
	}
	return string(mirrored)
}
