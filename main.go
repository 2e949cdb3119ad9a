// main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/atotto/clipboard"
	pflag "github.com/spf13/pflag"
)

const Version = "0.1.0"

var (
	targetDirFlagValue string
	outputFile         string
	logLevelStr        string
	configFileFlag     string
	includeEmptyFlag   bool
	clipboardFlag      bool
	versionFlag        bool
)

func init() {
	pflag.StringVarP(&targetDirFlagValue, "directory", "d", ".", "Target directory to scan.")
	pflag.StringVarP(&outputFile, "output", "o", "", "Output file path (default: <directory name><output_suffix> inside the target).")
	pflag.StringVar(&logLevelStr, "loglevel", "info", "Set logging verbosity (debug, info, warn, error).")
	pflag.StringVarP(&configFileFlag, "config", "c", "", "Path to a custom configuration file.")
	pflag.BoolVar(&includeEmptyFlag, "include-empty", false, "Include empty files in the report.")
	pflag.BoolVar(&clipboardFlag, "clipboard", false, "Also copy the finished report to the clipboard.")
	pflag.BoolVarP(&versionFlag, "version", "v", false, "Print version and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [target_directory]
   or: %s [flags]

Concatenate a directory tree into a single annotated report file:
statistics, folder tree, file index, then every included file's content.

Flags:
`, os.Args[0], os.Args[0])
		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()

	if versionFlag {
		fmt.Printf("repocat version %s\n", Version)
		os.Exit(0)
	}

	// Setup Logging
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, defaulting to 'info'.\n", logLevelStr)
		logLevel = slog.LevelInfo
	}
	logOpts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, logOpts)))

	// Load Configuration
	cfg, loadErr := loadConfig(configFileFlag)
	if loadErr != nil {
		if pflag.CommandLine.Changed("config") {
			slog.Error("Failed to load configuration.", "error", loadErr)
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		slog.Warn("Failed to load configuration, using defaults.", "error", loadErr)
		cfg = defaultConfig
	}
	if pflag.CommandLine.Changed("include-empty") {
		cfg.IncludeEmpty = &includeEmptyFlag
	}

	// Target directory: single positional argument or the -d flag.
	finalTargetDirectory := targetDirFlagValue
	positionalArgs := pflag.Args()
	if len(positionalArgs) > 1 {
		fmt.Fprintf(os.Stderr, "Refusing execution: Multiple positional arguments provided: %v.\n", positionalArgs)
		os.Exit(1)
	} else if len(positionalArgs) == 1 {
		if pflag.CommandLine.Changed("directory") {
			fmt.Fprintf(os.Stderr, "Refusing execution: Cannot mix positional argument '%s' with flag '--directory'.\n", positionalArgs[0])
			os.Exit(1)
		}
		finalTargetDirectory = positionalArgs[0]
		if finalTargetDirectory == "" {
			finalTargetDirectory = "."
		}
	}

	absTargetDir, err := filepath.Abs(finalTargetDirectory)
	if err != nil {
		slog.Error("Could not determine absolute path.", "path", finalTargetDirectory, "error", err)
		fmt.Fprintf(os.Stderr, "Error: Invalid target directory path '%s': %v\n", finalTargetDirectory, err)
		os.Exit(1)
	}

	dirInfo, err := os.Stat(absTargetDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: Target directory '%s' not found.\n", absTargetDir)
		} else {
			fmt.Fprintf(os.Stderr, "Error accessing target directory '%s': %v\n", absTargetDir, err)
		}
		os.Exit(1)
	}
	if !dirInfo.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: Specified target path '%s' is not a directory.\n", absTargetDir)
		os.Exit(1)
	}

	// The output artifact is named after the resolved root unless
	// overridden; either way its basename is self-excluded from the walk.
	rootLabel := filepath.Base(absTargetDir)
	outputPath := outputFile
	if outputPath == "" {
		outputPath = filepath.Join(absTargetDir, rootLabel+cfg.OutputSuffix)
	}
	outputName := filepath.Base(outputPath)
	toolName := filepath.Base(os.Args[0])

	slog.Info("Starting scan.", "directory", absTargetDir, "output", outputPath)
	report, files, fileErrs, genErr := generateReport(absTargetDir, rootLabel, outputName, toolName, cfg)
	if genErr != nil {
		slog.Error("Error during file processing.", "error", genErr)
		fmt.Fprintf(os.Stderr, "Error during processing: %v\n", genErr)
		os.Exit(1)
	}

	// Fully buffered write: the report only hits disk once it is complete.
	if err := os.WriteFile(outputPath, []byte(report), 0644); err != nil {
		slog.Error("Failed to write output file.", "path", outputPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error writing output file '%s': %v\n", outputPath, err)
		os.Exit(1)
	}

	if clipboardFlag {
		if err := clipboard.WriteAll(report); err != nil {
			slog.Warn("Could not copy report to clipboard.", "error", err)
		} else {
			fmt.Println("Report copied to clipboard.")
		}
	}

	if len(fileErrs) > 0 {
		paths := make([]string, 0, len(fileErrs))
		for p := range fileErrs {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		fmt.Fprintf(os.Stderr, "Completed with %d file errors:\n", len(fileErrs))
		for _, p := range paths {
			fmt.Fprintf(os.Stderr, "- %s: %v\n", p, fileErrs[p])
		}
	}

	var totalSize int64
	for _, f := range files {
		totalSize += f.Size
	}
	fmt.Printf("All %d files (%s) have been concatenated into %s\n", len(files), formatBytes(totalSize), outputPath)
}
