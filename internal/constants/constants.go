package constants

const (
	// DateFormat is the calendar-day format used for entry dates and snapshot keys
	DateFormat = "2006-01-02"

	// SnapshotVersion is the schema tag written into every persisted snapshot
	SnapshotVersion = 1

	// StreakScanDays bounds the backward scan of the streak engine
	StreakScanDays = 365
)
