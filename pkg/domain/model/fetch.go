package model

import "time"

// FetchStatus is the outcome of a single fetch
type FetchStatus string

const (
	FetchStatusSucceeded FetchStatus = "succeeded"
	FetchStatusFailed    FetchStatus = "failed"
	FetchStatusRejected  FetchStatus = "rejected" // parameters or target directory were unusable
)

// FetchStage names the step a fetch was in when it stopped
type FetchStage string

const (
	FetchStageValidate  FetchStage = "validate"
	FetchStageDirectory FetchStage = "directory"
	FetchStageLogin     FetchStage = "login"
	FetchStageLoad      FetchStage = "load"
	FetchStageDone      FetchStage = "done"
)

// FetchResult reports what happened during a fetch. Command failures are
// absorbed by the fetcher, so this is the only programmatic view of them.
type FetchResult struct {
	ID                  string        `json:"id" firestore:"id"`
	Source              string        `json:"source,omitempty" firestore:"source"`
	ServerURL           string        `json:"server_url" firestore:"server_url"`
	RepositoryWorkspace string        `json:"repository_workspace" firestore:"repository_workspace"`
	TargetDirectory     string        `json:"target_directory" firestore:"target_directory"`
	Status              FetchStatus   `json:"status" firestore:"status"`
	Stage               FetchStage    `json:"stage" firestore:"stage"`
	CreatedDirectory    bool          `json:"created_directory" firestore:"created_directory"`
	Stderr              string        `json:"stderr,omitempty" firestore:"stderr"`
	Error               string        `json:"error,omitempty" firestore:"error"`
	StartedAt           time.Time     `json:"started_at" firestore:"started_at"`
	Duration            time.Duration `json:"duration" firestore:"duration"`
}

// Succeeded reports whether the workspace was loaded
func (r *FetchResult) Succeeded() bool {
	return r.Status == FetchStatusSucceeded
}

// Source is one [[source]] table of a config file
type Source struct {
	Name                string `toml:"name"`
	ServerURL           string `toml:"server_url"`
	ProjectArea         string `toml:"project_area"`
	RepositoryWorkspace string `toml:"repository_workspace"`
	TargetDirectory     string `toml:"target_directory"`
	Username            string `toml:"username"`
	Password            string `toml:"password"`
}

// Params converts the source into connection parameters
func (s *Source) Params() *ConnectionParams {
	return &ConnectionParams{
		ServerURL:           s.ServerURL,
		ProjectArea:         s.ProjectArea,
		RepositoryWorkspace: s.RepositoryWorkspace,
		TargetDirectory:     s.TargetDirectory,
		Username:            s.Username,
		Password:            Password(s.Password),
	}
}
