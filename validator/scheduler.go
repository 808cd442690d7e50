package validator

import (
	"context"
	"fmt"
	"sync"

	"github.com/transitlint/gtfs-validator/notice"
	"github.com/transitlint/gtfs-validator/parser"
)

// ProgressFunc is invoked after each validator completes, naming it and
// reporting how many of the total have finished.
type ProgressFunc func(validatorName string, completed, total int)

// Schedule runs a set of registrations against a loaded feed: every
// SingleFile validator runs in a bounded worker pool, then a barrier, then
// every CrossFile validator runs sequentially. Each worker owns a local
// notice container and merges it into the shared container when its job
// completes, avoiding lock contention on the hot path (see design notes).
// A panic or the validator's own recovered error is converted into a
// SystemError naming the validator; scheduling continues with the rest.
func Schedule(ctx context.Context, regs []Registration, loader *parser.FeedLoader, shared *notice.NoticeContainer, cfg Config, workers int, progress ProgressFunc) error {
	singleFile, crossFile := Partition(regs)
	total := len(singleFile) + len(crossFile)
	var completed int
	var completedMu sync.Mutex

	report := func(name string) {
		if progress == nil {
			return
		}
		completedMu.Lock()
		completed++
		n := completed
		completedMu.Unlock()
		progress(name, n, total)
	}

	if err := runPool(ctx, singleFile, loader, shared, cfg, workers, report); err != nil {
		return err
	}

	// Barrier: every single-file validator has finished and merged before
	// any cross-file validator starts.
	for _, reg := range crossFile {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		runOne(reg, loader, shared, cfg)
		report(reg.Name)
	}

	return nil
}

// runPool executes registrations concurrently across `workers` goroutines,
// each draining a shared job channel and merging its own local container
// into `shared` after every job.
func runPool(ctx context.Context, regs []Registration, loader *parser.FeedLoader, shared *notice.NoticeContainer, cfg Config, workers int, report func(string)) error {
	if len(regs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(regs) {
		workers = len(regs)
	}

	jobs := make(chan Registration, len(regs))
	for _, r := range regs {
		jobs <- r
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for reg := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				local := notice.NewNoticeContainerWithLimit(0) // quota enforced on merge into shared
				runOne(reg, loader, local, cfg)
				shared.Merge(local)
				report(reg.Name)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// runOne invokes a single validator, recovering from panics and converting
// them (and any process-level failure) into a SystemError on container so a
// single broken rule never stops the run.
func runOne(reg Registration, loader *parser.FeedLoader, container *notice.NoticeContainer, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			container.AddSystemError(notice.SystemError{
				ValidatorName: reg.Name,
				Message:       fmt.Sprintf("panic: %v", r),
			})
		}
	}()

	v := reg.Factory()
	v.Validate(loader, container, cfg)
}
