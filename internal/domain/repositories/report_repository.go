package repositories

// ReportRepository persists rendered reports.
type ReportRepository interface {
	// Save stores content under name, replacing anything already there.
	// It returns the location the report was written to.
	Save(name, content string) (string, error)
}
