package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all resolved application paths. This is the single source
// of truth for file locations; every component takes paths from here rather
// than building its own.
type Paths struct {
	ExecutableDir string
	DataDir       string
	DownloadsDir  string
	ReportsDir    string
	LogsDir       string

	// Well-known files
	RequestsCSV      string
	SupplyDemandCSV  string
	SupplyDemandJSON string
	SupplyDemandXLSX string
	HourlyDemandCSV  string
}

// NewPaths resolves the configured paths. Relative entries are resolved
// against the executable directory, never the working directory, so the
// program behaves the same wherever it is launched from.
//
// Layout:
//
//	<exe dir>/
//	  ├── config.yaml
//	  ├── data/
//	  │   ├── downloads/   (input CSV)
//	  │   └── reports/     (generated summary tables)
//	  └── logs/
func NewPaths(cfg PathsConfig) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}
	exeDir := filepath.Dir(exe)

	resolve := func(p, fallback string) string {
		if p == "" {
			p = fallback
		}
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(exeDir, p)
	}

	dataDir := resolve(cfg.DataDir, "data")
	downloadsDir := filepath.Join(dataDir, "downloads")
	reportsDir := cfg.ReportsDir
	if reportsDir == "" {
		reportsDir = filepath.Join(dataDir, "reports")
	} else if !filepath.IsAbs(reportsDir) {
		reportsDir = filepath.Join(exeDir, reportsDir)
	}

	requestsCSV := cfg.InputCSV
	if requestsCSV == "" {
		requestsCSV = filepath.Join(downloadsDir, "cab_requests.csv")
	} else if !filepath.IsAbs(requestsCSV) {
		requestsCSV = filepath.Join(exeDir, requestsCSV)
	}

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		DownloadsDir:  downloadsDir,
		ReportsDir:    reportsDir,
		LogsDir:       resolve(cfg.LogsDir, "logs"),

		RequestsCSV:      requestsCSV,
		SupplyDemandCSV:  filepath.Join(reportsDir, "supply_demand.csv"),
		SupplyDemandJSON: filepath.Join(reportsDir, "supply_demand.json"),
		SupplyDemandXLSX: filepath.Join(reportsDir, "supply_demand.xlsx"),
		HourlyDemandCSV:  filepath.Join(reportsDir, "hourly_demand.csv"),
	}, nil
}

// EnsureDirectories creates the base directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.DownloadsDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetReportPath returns the path of a named file in the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path of a named file in the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
