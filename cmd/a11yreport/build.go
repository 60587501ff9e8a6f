/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/report"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/service"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	source     service.Source
	targetName string
	targetURL  string
	reportID   string
	format     string
	out        string
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a report from a snapshot",
		Example: `  a11yreport build --snapshot results.json --target-name "Contoso" --format html --out report.html
  a11yreport build --catalog catalog.yaml --snapshot results.json --format terminal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source.CatalogPath, "catalog", "", "assessment catalog YAML (default: built-in catalog)")
	flags.StringVar(&opts.source.SnapshotPath, "snapshot", "", "assessment results JSON")
	flags.StringVar(&opts.targetName, "target-name", "", "name of the page under test")
	flags.StringVar(&opts.targetURL, "target-url", "", "URL of the page under test")
	flags.StringVar(&opts.reportID, "report-id", "", "report identifier (default: random UUID)")
	flags.StringVarP(&opts.format, "format", "f", string(report.FormatMarkdown), "output format: json, markdown, html or terminal")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func runBuild(cmd *cobra.Command, opts buildOptions) error {
	ctx := cmd.Context()

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	svc := service.New(opts.source, reportmodel.Target{
		Name:     opts.targetName,
		URL:      opts.targetURL,
		ReportID: opts.reportID,
	})

	if opts.out == "" {
		return svc.Render(ctx, cmd.OutOrStdout(), format)
	}

	var buf bytes.Buffer
	if err := svc.Render(ctx, &buf, format); err != nil {
		return err
	}
	if err := replaceFile(opts.out, buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	clog.InfoContextf(ctx, "Wrote %s report to %s", format, opts.out)
	return nil
}

// replaceFile writes b to a temporary file next to path and renames it into
// place, so path holds either its previous contents or all of b.
func replaceFile(path string, b []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()

	if _, err := f.Write(b); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Chmod(0o644); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
