package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
)

func TestPrintMetadata(t *testing.T) {
	color.NoColor = true
	uc := usecase.NewMetadata()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, printMetadata(&buf, uc, true, false))

		var data model.ConnectionData
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &data))
		gt.Equal(t, data.ConnectionType, "RationalTeamConcert")
		gt.Equal(t, len(data.Fields), 6)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, printMetadata(&buf, uc, false, false))
		gt.Equal(t, buf.String(), "RationalTeamConcert\n"+
			"  - server_url\n"+
			"  - project_area\n"+
			"  - repository_workspace\n"+
			"  - username\n"+
			"  - password\n"+
			"  - target_directory\n")
	})

	t.Run("icon", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, printMetadata(&buf, uc, false, true))
		gt.Equal(t, buf.String(), usecase.DefaultIcon+"\n")
	})
}

func TestCheckResults(t *testing.T) {
	succeeded := &model.FetchResult{Source: "core", Status: model.FetchStatusSucceeded}
	failed := &model.FetchResult{Source: "ui", Status: model.FetchStatusFailed}
	rejected := &model.FetchResult{RepositoryWorkspace: "docs-ws", Status: model.FetchStatusRejected}

	gt.NoError(t, checkResults([]*model.FetchResult{succeeded, failed}, false))
	gt.Error(t, checkResults([]*model.FetchResult{succeeded, failed}, true))
	gt.Error(t, checkResults([]*model.FetchResult{succeeded, rejected}, false))
	gt.NoError(t, checkResults([]*model.FetchResult{succeeded}, true))
}
