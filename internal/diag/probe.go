package diag

// Statuses mirror what the frontend's /test page expects.
const (
	statusAvailable = "✅ Available"
	statusWorking   = "✅ Connected & Working"
	statusDegraded  = "⚠️  Connected but Error: "

	maxCollections = 10
	maxErrorChars  = 50
)

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorChars {
		msg = msg[:maxErrorChars]
	}
	return msg
}
