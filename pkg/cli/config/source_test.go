package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
)

const sourceFile = `
[[source]]
name = "core"
server_url = "https://rtc.example.com/ccm"
project_area = "Core Platform"
repository_workspace = "Core Stream Workspace"
target_directory = "/srv/rtc/core"
username = "builder"
password = "s3cret"

[[source]]
name = "ui"
server_url = "https://rtc.example.com/ccm"
project_area = "UI"
repository_workspace = "UI Stream Workspace"
target_directory = "/srv/rtc/ui"
username = "builder"
password = "s3cret"
`

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.toml")
	gt.NoError(t, os.WriteFile(path, []byte(sourceFile), 0600))

	cfg := &config.Source{ConfigFile: path}
	sources, err := cfg.Load()
	gt.NoError(t, err)
	gt.Equal(t, len(sources), 2)

	gt.Equal(t, sources[0].Name, "core")
	gt.Equal(t, sources[0].RepositoryWorkspace, "Core Stream Workspace")
	gt.Equal(t, sources[0].TargetDirectory, "/srv/rtc/core")
	gt.Equal(t, sources[1].ProjectArea, "UI")

	params := sources[1].Params()
	gt.NoError(t, params.Validate())
	gt.Equal(t, string(params.Password), "s3cret")
}

func TestSource_Load_NoFile(t *testing.T) {
	sources, err := (&config.Source{}).Load()
	gt.NoError(t, err)
	gt.Equal(t, len(sources), 0)

	_, err = (&config.Source{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")}).Load()
	gt.Error(t, err)
}

func TestParseSources_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "broken syntax", raw: "[[source]\nname = "},
		{name: "no source table", raw: "title = \"nothing here\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseSources([]byte(tt.raw))
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidConfig))
		})
	}
}

func TestSource_HasFlags(t *testing.T) {
	cfg := &config.Source{}
	gt.False(t, cfg.HasFlags())

	cfg.TargetDirectory = "/srv/rtc/core"
	gt.True(t, cfg.HasFlags())
}
