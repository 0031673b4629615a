package model

// ClassifiedItem pairs the text extracted from one item with its finished
// classification record. Immutable once produced.
type ClassifiedItem struct {
	OriginalText   string `json:"originalText"`
	Classification Record `json:"classification"`
}

// SummaryEntry is one ranked (tag, count) pair within a category summary.
type SummaryEntry struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Report is the full output of a batch run: every classified item in input
// order plus ranked per-category tag counts. Consumers serialize it verbatim.
type Report struct {
	TotalItems      int                       `json:"totalItems"`
	ClassifiedItems []ClassifiedItem          `json:"classifiedItems"`
	Summary         map[string][]SummaryEntry `json:"summary"`
}
