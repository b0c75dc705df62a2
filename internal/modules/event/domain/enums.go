//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EventType identifies the kind of event a notification is sent for
// ENUM(grab,download,episode_delete,series_add,series_delete,health_issue,health_restored,application_update,manual_interaction_required)
type EventType string

// HealthCheckResult is the severity reported by a health check
// ENUM(ok,notice,warning,error)
type HealthCheckResult string
