// Package verify drives proof checking across files, directories, and raw
// sources. Directories are expanded to .proof files and checked concurrently
// with a bounded worker pool; results keep the scanned path order.
package verify

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/prooflabs/pcheck/internal/proof"
	"github.com/prooflabs/pcheck/scanner"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// ProofChecker verifies a single proof text and reports per-line verdicts.
type ProofChecker interface {
	Verify(input string) *proof.Report
}

// FileReport pairs a verified file with its report.
type FileReport struct {
	Path   string
	Report *proof.Report
}

// New builds a checker from the configuration file at configurationPath.
func New(configurationPath string) (*proof.Checker, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}

	return proof.NewChecker(proof.Config{StrictCitations: config.Strict}), nil
}

// ProcessFiles verifies every path in paths, expanding directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	checker ProofChecker,
	paths []string,
	processor func(ProofChecker, string) (*proof.Report, error),
) ([]FileReport, error) {
	var allReports []FileReport
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, checker, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allReports = append(allReports, reports...)
	}

	return allReports, nil
}

// ProcessPath verifies a single file, or every .proof file under a
// directory. A file given explicitly is checked whatever its extension.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	checker ProofChecker,
	path string,
	processor func(ProofChecker, string) (*proof.Report, error),
) ([]FileReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		report, err := processor(checker, path)
		if err != nil {
			return nil, err
		}
		return []FileReport{{Path: path, Report: report}}, nil
	}

	files, err := scanner.New(path).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	// reports is indexed by file position so the scanned order survives
	// the concurrent workers
	reports := make([]*FileReport, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// for each file, run a goroutine
	for i, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(idx int, fp string) {
				defer func() { <-sem }()

				report, err := processor(checker, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
				} else {
					reports[idx] = &FileReport{Path: fp, Report: report}
					errorChan <- nil
				}
				bar.Add(1)
			}(i, file.Path)
		}
	}

	// collect all results; files that failed to read are skipped
	for range files {
		<-errorChan
	}

	fmt.Println()

	ordered := make([]FileReport, 0, len(files))
	for _, report := range reports {
		if report != nil {
			ordered = append(ordered, *report)
		}
	}
	return ordered, nil
}

// ProcessFile reads filePath and verifies its contents.
func ProcessFile(checker ProofChecker, filePath string) (*proof.Report, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	return checker.Verify(string(data)), nil
}

// ProcessSource verifies a proof given as raw bytes, as read from stdin.
func ProcessSource(checker ProofChecker, source []byte) *proof.Report {
	return checker.Verify(string(source))
}
