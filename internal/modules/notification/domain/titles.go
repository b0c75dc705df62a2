package domain

// Titles used for each event kind
const (
	EpisodeGrabbedTitle            = "Episode Grabbed"
	EpisodeDownloadedTitle         = "Episode Downloaded"
	EpisodeDeletedTitle            = "Episode Deleted"
	SeriesAddedTitle               = "Series Added"
	SeriesDeletedTitle             = "Series Deleted"
	HealthIssueTitle               = "Health Check Failure"
	HealthRestoredTitle            = "Health Check Restored"
	ApplicationUpdateTitle         = "Application Updated"
	ManualInteractionRequiredTitle = "Manual Interaction Required"

	TestTitle   = "Test Notification"
	TestMessage = "This is a test message from telegram-notifier"
)

// HealthRestoredPrefix precedes the previous check message when a health issue clears.
const HealthRestoredPrefix = "The following issue is now resolved: "
