package notice

import (
	"testing"
)

func TestNoticeContainer_AddSystemError(t *testing.T) {
	container := NewNoticeContainer()

	if container.HasSystemErrors() {
		t.Fatal("Expected no system errors on a fresh container")
	}

	container.AddSystemError(SystemError{
		ValidatorName: "core.DuplicateKey",
		Message:       "index out of range",
	})

	if !container.HasSystemErrors() {
		t.Error("Expected HasSystemErrors to be true after AddSystemError")
	}

	errs := container.GetSystemErrors()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 system error, got %d", len(errs))
	}
	if errs[0].ValidatorName != "core.DuplicateKey" {
		t.Errorf("Expected ValidatorName 'core.DuplicateKey', got %s", errs[0].ValidatorName)
	}
	if errs[0].Code() != "system_error" {
		t.Errorf("Expected Code() 'system_error', got %s", errs[0].Code())
	}

	// A system error must never count against, or appear in, validation notices.
	if len(container.GetNotices()) != 0 {
		t.Errorf("Expected system errors not to appear as notices, got %d", len(container.GetNotices()))
	}
}

func TestNoticeContainer_TotalNoticeCount(t *testing.T) {
	container := NewNoticeContainerWithLimit(1)

	for i := 0; i < 5; i++ {
		container.AddNotice(NewBaseNotice("duplicate_key", ERROR, map[string]interface{}{
			"filename": "stops.txt",
		}))
	}

	// Storage is capped at 1, but the true count keeps tracking all 5.
	if stored := len(container.GetNoticesByCode("duplicate_key")); stored != 1 {
		t.Errorf("Expected 1 stored notice under the quota, got %d", stored)
	}
	if total := container.TotalNoticeCount("duplicate_key"); total != 5 {
		t.Errorf("Expected TotalNoticeCount 5, got %d", total)
	}
	if total := container.TotalNoticeCount("never_added"); total != 0 {
		t.Errorf("Expected TotalNoticeCount 0 for an unseen code, got %d", total)
	}
}

func TestNoticeContainer_Merge(t *testing.T) {
	a := NewNoticeContainer()
	a.AddNotice(NewBaseNotice("missing_required_field", ERROR, map[string]interface{}{
		"filename": "agency.txt",
	}))
	a.AddSystemError(SystemError{ValidatorName: "core.A", Message: "boom"})

	b := NewNoticeContainer()
	b.AddNotice(NewBaseNotice("duplicate_key", ERROR, map[string]interface{}{
		"filename": "stops.txt",
	}))
	b.AddNotice(NewBaseNotice("duplicate_key", ERROR, map[string]interface{}{
		"filename": "routes.txt",
	}))

	a.Merge(b)

	if got := len(a.GetNotices()); got != 3 {
		t.Fatalf("Expected 3 notices after merge, got %d", got)
	}
	if got := a.TotalNoticeCount("duplicate_key"); got != 2 {
		t.Errorf("Expected merged TotalNoticeCount 2 for duplicate_key, got %d", got)
	}
	if !a.HasSystemErrors() {
		t.Error("Expected system errors to survive a merge")
	}
	if got := len(a.GetSystemErrors()); got != 1 {
		t.Errorf("Expected 1 system error after merge, got %d", got)
	}

	// Merging a nil container is a no-op, not a panic.
	a.Merge(nil)
	if got := len(a.GetNotices()); got != 3 {
		t.Errorf("Expected merging nil to leave notices untouched, got %d", got)
	}
}

func TestNoticeContainer_Merge_RespectsQuota(t *testing.T) {
	a := NewNoticeContainerWithLimit(1)
	a.AddNotice(NewBaseNotice("duplicate_key", ERROR, nil))

	b := NewNoticeContainer()
	b.AddNotice(NewBaseNotice("duplicate_key", ERROR, nil))
	b.AddNotice(NewBaseNotice("duplicate_key", ERROR, nil))

	a.Merge(b)

	if stored := len(a.GetNoticesByCode("duplicate_key")); stored != 1 {
		t.Errorf("Expected merge to respect the per-code quota, stored %d", stored)
	}
	if total := a.TotalNoticeCount("duplicate_key"); total != 3 {
		t.Errorf("Expected merged TotalNoticeCount 3, got %d", total)
	}
}

func TestNoticeContainer_ExportSorted(t *testing.T) {
	container := NewNoticeContainer()

	container.AddNotice(NewBaseNotice("missing_required_field", ERROR, map[string]interface{}{
		"filename":     "stops.txt",
		"csvRowNumber": 5,
	}))
	container.AddNotice(NewBaseNotice("duplicate_key", ERROR, map[string]interface{}{
		"filename":     "stops.txt",
		"csvRowNumber": 3,
	}))
	container.AddNotice(NewBaseNotice("duplicate_key", ERROR, map[string]interface{}{
		"filename":     "agency.txt",
		"csvRowNumber": 9,
	}))

	sorted := container.ExportSorted()
	if len(sorted) != 3 {
		t.Fatalf("Expected 3 notices, got %d", len(sorted))
	}

	// Sorted by code first: "duplicate_key" < "missing_required_field".
	if sorted[0].Code() != "duplicate_key" || sorted[1].Code() != "duplicate_key" {
		t.Errorf("Expected the two duplicate_key notices first, got %s, %s", sorted[0].Code(), sorted[1].Code())
	}
	if sorted[2].Code() != "missing_required_field" {
		t.Errorf("Expected missing_required_field last, got %s", sorted[2].Code())
	}

	// Within the same code, sorted by filename.
	if sorted[0].Context()["filename"] != "agency.txt" {
		t.Errorf("Expected agency.txt to sort before stops.txt within duplicate_key, got %v", sorted[0].Context()["filename"])
	}

	// Repeated calls are stable and deterministic regardless of insertion order.
	again := container.ExportSorted()
	for i := range sorted {
		if sorted[i].Code() != again[i].Code() {
			t.Errorf("Expected ExportSorted to be deterministic across calls at index %d", i)
		}
	}
}
