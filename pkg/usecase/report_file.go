package usecase

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/utils/safe"
)

// WriteReportFile persists the result envelope. This file is the only
// artifact shared between the aggregator and its downstream consumers.
func WriteReportFile(path string, report *model.TrendingReport) error {
	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create report file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode report", goerr.V("path", path))
	}

	return nil
}

// ReadReportFile loads a result envelope written by WriteReportFile.
func ReadReportFile(path string) (*model.TrendingReport, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open report file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	var report model.TrendingReport
	if err := json.NewDecoder(fd).Decode(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("path", path))
	}

	return &report, nil
}
