package generate

import "github.com/zacklukem/try-utils/internal/expand"

// Status is the outcome for one source file.
type Status string

const (
	StatusExpanded  Status = "expanded"  // output written (or would be, in a dry run)
	StatusUnchanged Status = "unchanged" // output already matched
	StatusCached    Status = "cached"    // skipped, cache entry still fresh
	StatusStale     Status = "stale"     // check mode: output missing or out of date
	StatusFailed    Status = "failed"    // source could not be read, expanded or written
)

// FileReport describes one source file.
type FileReport struct {
	Source         string             `json:"source"`
	Output         string             `json:"output"`
	Status         Status             `json:"status"`
	DirectiveCount int                `json:"directive_count"`
	Directives     []expand.Directive `json:"directives,omitempty"`
	Errors         []*expand.Error    `json:"errors,omitempty"`
	Err            error              `json:"-"`
}

// Report is the result of Run.
type Report struct {
	RunID  string       `json:"run_id,omitempty"`
	DryRun bool         `json:"dry_run,omitempty"`
	Files  []FileReport `json:"files"`

	Expanded  int `json:"expanded"`
	Unchanged int `json:"unchanged"`
	Cached    int `json:"cached"`
	Stale     int `json:"stale"`
	Failed    int `json:"failed"`
}

func (r *Report) tally() {
	for _, f := range r.Files {
		switch f.Status {
		case StatusExpanded:
			r.Expanded++
		case StatusUnchanged:
			r.Unchanged++
		case StatusCached:
			r.Cached++
		case StatusStale:
			r.Stale++
		case StatusFailed:
			r.Failed++
		}
	}
}

// Failures returns the reports of files that failed.
func (r *Report) Failures() []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

// UpToDate reports whether every output matched its source.
func (r *Report) UpToDate() bool {
	return r.Stale == 0 && r.Failed == 0 && r.Expanded == 0
}
