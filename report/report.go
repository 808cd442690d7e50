package report

import (
	"encoding/json"
	"time"

	"github.com/transitlint/gtfs-validator/notice"
)

// ValidationReport represents the complete validation report
type ValidationReport struct {
	Summary      Summary            `json:"summary"`
	Notices      []NoticeReport     `json:"notices"`
	SystemErrors []SystemErrorGroup `json:"-"`
}

// SystemErrorGroup groups system errors raised by the same validator.
type SystemErrorGroup struct {
	ValidatorName string   `json:"validatorName"`
	TotalErrors   int      `json:"totalErrors"`
	Messages      []string `json:"messages"`
}

// SystemErrorsReport is the standalone system_errors.json document: a
// population disjoint from validation notices, reporting exceptions caught
// inside validators rather than findings about the feed.
type SystemErrorsReport struct {
	ValidatorVersion string             `json:"validatorVersion"`
	Date             string             `json:"date"`
	Errors           []SystemErrorGroup `json:"errors"`
}

// Summary contains summary information about the validation
type Summary struct {
	ValidatorVersion string       `json:"validatorVersion"`
	ValidationTime   float64      `json:"validationTimeSeconds"`
	Date             string       `json:"date"`
	FeedInfo         FeedInfo     `json:"feedInfo"`
	Counts           NoticeCounts `json:"counts"`
}

// FeedInfo contains information about the validated feed
type FeedInfo struct {
	FeedPath        string `json:"feedPath"`
	FeedName        string `json:"feedName,omitempty"`
	AgencyCount     int    `json:"agencyCount"`
	RouteCount      int    `json:"routeCount"`
	TripCount       int    `json:"tripCount"`
	StopCount       int    `json:"stopCount"`
	StopTimeCount   int    `json:"stopTimeCount"`
	ServiceDateFrom string `json:"serviceDateFrom,omitempty"`
	ServiceDateTo   string `json:"serviceDateTo,omitempty"`
}

// NoticeCounts contains counts of notices by severity
type NoticeCounts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Total    int `json:"total"`
}

// NoticeReport represents a group of notices with the same code
type NoticeReport struct {
	Code          string                   `json:"code"`
	Severity      string                   `json:"severity"`
	Description   string                   `json:"description"`
	TotalNotices  int                      `json:"totalNotices"`
	SampleNotices []map[string]interface{} `json:"sampleNotices"`
}

// ReportGenerator generates validation reports
type ReportGenerator struct {
	validatorVersion    string
	maxSamplesPerNotice int
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(validatorVersion string) *ReportGenerator {
	return &ReportGenerator{
		validatorVersion:    validatorVersion,
		maxSamplesPerNotice: 5, // Limit samples to prevent huge reports
	}
}

// GenerateReport generates a validation report from a notice container. The
// notice ordering is deterministic (code, filename, csvRowNumber,
// fieldName), independent of which goroutine produced each notice.
func (g *ReportGenerator) GenerateReport(container *notice.NoticeContainer, feedInfo FeedInfo, validationTime float64) *ValidationReport {
	sorted := container.ExportSorted()

	// Group notices by code, preserving the deterministic order above.
	var codeOrder []string
	groups := make(map[string][]notice.Notice)
	for _, n := range sorted {
		code := n.Code()
		if _, seen := groups[code]; !seen {
			codeOrder = append(codeOrder, code)
		}
		groups[code] = append(groups[code], n)
	}

	noticeReports := make([]NoticeReport, 0, len(groups))
	for _, code := range codeOrder {
		notices := groups[code]
		if len(notices) == 0 {
			continue
		}

		report := NoticeReport{
			Code:          code,
			Severity:      notices[0].Severity().String(),
			Description:   "", // Will be populated by the main package
			TotalNotices:  container.TotalNoticeCount(code),
			SampleNotices: g.getSampleNotices(notices),
		}
		noticeReports = append(noticeReports, report)
	}

	// Calculate counts
	counts := container.CountBySeverity()
	noticeCounts := NoticeCounts{
		Errors:   counts[notice.ERROR],
		Warnings: counts[notice.WARNING],
		Infos:    counts[notice.INFO],
		Total:    len(sorted),
	}

	// Create summary
	summary := Summary{
		ValidatorVersion: g.validatorVersion,
		ValidationTime:   validationTime,
		Date:             time.Now().Format(time.RFC3339),
		FeedInfo:         feedInfo,
		Counts:           noticeCounts,
	}

	return &ValidationReport{
		Summary:      summary,
		Notices:      noticeReports,
		SystemErrors: groupSystemErrors(container.GetSystemErrors()),
	}
}

// GenerateSystemErrorsReport produces the system_errors.json document: the
// population of exceptions caught inside validators, kept disjoint from
// validation notices.
func (g *ReportGenerator) GenerateSystemErrorsReport(container *notice.NoticeContainer) *SystemErrorsReport {
	return &SystemErrorsReport{
		ValidatorVersion: g.validatorVersion,
		Date:             time.Now().Format(time.RFC3339),
		Errors:           groupSystemErrors(container.GetSystemErrors()),
	}
}

// groupSystemErrors groups system errors by the validator that raised them,
// preserving first-seen order.
func groupSystemErrors(errs []notice.SystemError) []SystemErrorGroup {
	var order []string
	byValidator := make(map[string]*SystemErrorGroup)
	for _, e := range errs {
		g, ok := byValidator[e.ValidatorName]
		if !ok {
			g = &SystemErrorGroup{ValidatorName: e.ValidatorName}
			byValidator[e.ValidatorName] = g
			order = append(order, e.ValidatorName)
		}
		g.TotalErrors++
		g.Messages = append(g.Messages, e.Message)
	}
	out := make([]SystemErrorGroup, 0, len(order))
	for _, name := range order {
		out = append(out, *byValidator[name])
	}
	return out
}

// getSampleNotices returns a sample of notices (limited to maxSamplesPerNotice)
func (g *ReportGenerator) getSampleNotices(notices []notice.Notice) []map[string]interface{} {
	limit := g.maxSamplesPerNotice
	if len(notices) < limit {
		limit = len(notices)
	}

	samples := make([]map[string]interface{}, limit)
	for i := 0; i < limit; i++ {
		samples[i] = notices[i].Context()
	}

	return samples
}

// ToJSON converts the report to JSON
func (r *ValidationReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToJSONCompact converts the report to compact JSON
func (r *ValidationReport) ToJSONCompact() ([]byte, error) {
	return json.Marshal(r)
}

// HasErrors returns true if the report contains any errors
func (r *ValidationReport) HasErrors() bool {
	return r.Summary.Counts.Errors > 0
}

// HasWarnings returns true if the report contains any warnings
func (r *ValidationReport) HasWarnings() bool {
	return r.Summary.Counts.Warnings > 0
}

// HasSystemErrors returns true if any validator raised a system error.
func (r *ValidationReport) HasSystemErrors() bool {
	return len(r.SystemErrors) > 0
}

// ToJSON converts the system errors report to JSON.
func (r *SystemErrorsReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// HasErrors returns true if any system error was recorded.
func (r *SystemErrorsReport) HasErrors() bool {
	return len(r.Errors) > 0
}
