package domain

// Event is one occurrence the host wants delivered. The set of
// implementations is closed to this package.
type Event interface {
	Type() EventType
	isEvent()
}

// Series carries the external IDs used for metadata links
type Series struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	ImdbID   string `json:"imdb_id,omitempty"`
	TvdbID   int    `json:"tvdb_id,omitempty"`
	TvMazeID int    `json:"tvmaze_id,omitempty"`
}

// HealthCheck is a single health check outcome
type HealthCheck struct {
	Source  string            `json:"source"`
	Type    HealthCheckResult `json:"type"`
	Message string            `json:"message"`
	WikiURL string            `json:"wiki_url,omitempty"`
}

type GrabMessage struct {
	Message        string  `json:"message"`
	Series         *Series `json:"series,omitempty"`
	Quality        string  `json:"quality,omitempty"`
	DownloadClient string  `json:"download_client,omitempty"`
}

type DownloadMessage struct {
	Message    string  `json:"message"`
	Series     *Series `json:"series,omitempty"`
	SourcePath string  `json:"source_path,omitempty"`
	IsUpgrade  bool    `json:"is_upgrade,omitempty"`
}

type EpisodeDeleteMessage struct {
	Message string  `json:"message"`
	Series  *Series `json:"series,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

type SeriesAddMessage struct {
	Message string  `json:"message"`
	Series  *Series `json:"series,omitempty"`
}

type SeriesDeleteMessage struct {
	Message      string  `json:"message"`
	Series       *Series `json:"series,omitempty"`
	DeletedFiles bool    `json:"deleted_files,omitempty"`
}

// HealthIssueMessage reports a failing health check
type HealthIssueMessage struct {
	Check HealthCheck `json:"health_check"`
}

// HealthRestoredMessage reports that a previously failing check now passes.
// PreviousCheck is the check as it was while failing.
type HealthRestoredMessage struct {
	PreviousCheck HealthCheck `json:"health_check"`
}

type ApplicationUpdateMessage struct {
	Message         string `json:"message"`
	PreviousVersion string `json:"previous_version,omitempty"`
	NewVersion      string `json:"new_version,omitempty"`
}

type ManualInteractionRequiredMessage struct {
	Message        string  `json:"message"`
	Series         *Series `json:"series,omitempty"`
	DownloadClient string  `json:"download_client,omitempty"`
}

func (GrabMessage) Type() EventType                      { return EventTypeGrab }
func (DownloadMessage) Type() EventType                  { return EventTypeDownload }
func (EpisodeDeleteMessage) Type() EventType             { return EventTypeEpisodeDelete }
func (SeriesAddMessage) Type() EventType                 { return EventTypeSeriesAdd }
func (SeriesDeleteMessage) Type() EventType              { return EventTypeSeriesDelete }
func (HealthIssueMessage) Type() EventType               { return EventTypeHealthIssue }
func (HealthRestoredMessage) Type() EventType            { return EventTypeHealthRestored }
func (ApplicationUpdateMessage) Type() EventType         { return EventTypeApplicationUpdate }
func (ManualInteractionRequiredMessage) Type() EventType { return EventTypeManualInteractionRequired }

func (GrabMessage) isEvent()                      {}
func (DownloadMessage) isEvent()                  {}
func (EpisodeDeleteMessage) isEvent()             {}
func (SeriesAddMessage) isEvent()                 {}
func (SeriesDeleteMessage) isEvent()              {}
func (HealthIssueMessage) isEvent()               {}
func (HealthRestoredMessage) isEvent()            {}
func (ApplicationUpdateMessage) isEvent()         {}
func (ManualInteractionRequiredMessage) isEvent() {}
