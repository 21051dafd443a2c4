package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMetadata() *cli.Command {
	var (
		iconCfg  config.Icon
		asJSON   bool
		showIcon bool
	)

	flags := append(iconCfg.Flags(),
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print connection data as JSON",
			Destination: &asJSON,
		},
		&cli.BoolFlag{
			Name:        "icon",
			Usage:       "Print the connector icon (SVG) instead of connection data",
			Destination: &showIcon,
		},
	)

	return &cli.Command{
		Name:    "metadata",
		Aliases: []string{"m"},
		Usage:   "Show connector type, required fields and icon",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			metadataUC := usecase.NewMetadata(iconCfg.Options()...)
			return printMetadata(os.Stdout, metadataUC, asJSON, showIcon)
		},
	}
}

func printMetadata(w io.Writer, metadataUC interfaces.MetadataUseCase, asJSON, showIcon bool) error {
	if showIcon {
		if _, err := fmt.Fprintln(w, metadataUC.Icon()); err != nil {
			return goerr.Wrap(err, "failed to write icon")
		}
		return nil
	}

	data := metadataUC.ConnectionData()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return goerr.Wrap(err, "failed to encode connection data")
		}
		return nil
	}

	title := color.New(color.FgCyan, color.Bold)
	field := color.New(color.FgGreen)

	if _, err := title.Fprintf(w, "%s\n", data.ConnectionType); err != nil {
		return goerr.Wrap(err, "failed to write connection data")
	}
	for _, name := range data.Fields {
		if _, err := field.Fprintf(w, "  - %s\n", name); err != nil {
			return goerr.Wrap(err, "failed to write connection data")
		}
	}
	return nil
}
