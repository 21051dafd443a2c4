package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
)

// Connection field names as supplied by the hosting framework
const (
	FieldServerURL           = "server_url"
	FieldProjectArea         = "project_area"
	FieldRepositoryWorkspace = "repository_workspace"
	FieldTargetDirectory     = "target_directory"
	FieldUsername            = "username"
	FieldPassword            = "password"
)

// ConnectionType identifies the RTC connector
const ConnectionType = "RationalTeamConcert"

// connectionFields is the advertised field order
var connectionFields = []string{
	FieldServerURL,
	FieldProjectArea,
	FieldRepositoryWorkspace,
	FieldUsername,
	FieldPassword,
	FieldTargetDirectory,
}

// ConnectionFields returns a copy of the advertised field list in its stable order.
func ConnectionFields() []string {
	fields := make([]string, len(connectionFields))
	copy(fields, connectionFields)
	return fields
}

// Password holds a secret. It never renders its value through slog.
type Password string

// LogValue implements slog.LogValuer
func (p Password) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}

// String returns a masked form so the secret does not leak through fmt
func (p Password) String() string {
	return "[REDACTED]"
}

// ConnectionParams holds everything needed to fetch one RTC workspace
type ConnectionParams struct {
	ServerURL           string   `json:"server_url"`
	ProjectArea         string   `json:"project_area"`
	RepositoryWorkspace string   `json:"repository_workspace"`
	TargetDirectory     string   `json:"target_directory"`
	Username            string   `json:"username"`
	Password            Password `json:"password"`
}

// ParseConnectionParams converts the framework's parameter mapping. Keys that
// are absent or empty produce ErrMissingParameter.
func ParseConnectionParams(params map[string]string) (*ConnectionParams, error) {
	p := &ConnectionParams{
		ServerURL:           params[FieldServerURL],
		ProjectArea:         params[FieldProjectArea],
		RepositoryWorkspace: params[FieldRepositoryWorkspace],
		TargetDirectory:     params[FieldTargetDirectory],
		Username:            params[FieldUsername],
		Password:            Password(params[FieldPassword]),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that all six connection fields are set
func (p *ConnectionParams) Validate() error {
	values := map[string]string{
		FieldServerURL:           p.ServerURL,
		FieldProjectArea:         p.ProjectArea,
		FieldRepositoryWorkspace: p.RepositoryWorkspace,
		FieldTargetDirectory:     p.TargetDirectory,
		FieldUsername:            p.Username,
		FieldPassword:            string(p.Password),
	}

	var missing []string
	for _, field := range connectionFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return goerr.Wrap(types.ErrMissingParameter,
			"connection parameters are incomplete: "+strings.Join(missing, ", "),
			goerr.V("missing", missing))
	}
	return nil
}

// ConnectionData describes the connector for discovery and UI purposes
type ConnectionData struct {
	ConnectionType string   `json:"connection_type"`
	Fields         []string `json:"fields"`
}
