package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/autovibez/release-tools/pkg"
	"github.com/autovibez/release-tools/pkg/assets/release"
)

const version = "1.0.0"

var (
	outputDir   string
	catalogPath string
	logLevel    string
	tarballs    bool
	versionFlag bool
	rootCmd     *cobra.Command
)

func getPackagerTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "autovibez-packager",
		Short: "Package AutoVibez release assets",
		Long:  `Package AutoVibez preset and texture bundles into release archives`,
		Run:   buildAssets,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output", "o", release.DefaultOutputDir, "Output directory for release assets")
	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog JSON overriding the built-in asset sets")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&tarballs, "tarballs", false, "Also write .tar.gz and .tar.bz2 mirrors of each package")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("autovibez-packager %s\n", version)
		fmt.Printf("Built: %s\n", getPackagerTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildAssets(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("autovibez-packager %s\n", version)
		fmt.Printf("Built: %s\n", getPackagerTimestamp())
		return
	}

	artifacts, err := pkg.BuildReleaseAssetsWithOptions(release.BuildOptions{
		OutputDir:   outputDir,
		CatalogPath: catalogPath,
		Tarballs:    tarballs,
	}, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printSummary(outputDir, artifacts)
}

func printSummary(outputDir string, artifacts []release.Artifact) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	bold.Println("\n✅ Release Assets Created Successfully!")
	bold.Println("======================================")

	if abs, err := filepath.Abs(outputDir); err == nil {
		outputDir = abs
	}
	fmt.Printf("\n📁 Output Directory: %s\n", outputDir)

	fmt.Println("\n📦 Created Packages:")
	for _, a := range artifacts {
		if a.Name == release.GuideName {
			continue
		}
		sizeMB := float64(a.Size) / (1024 * 1024)
		green.Printf("  - %s", a.Name)
		fmt.Printf(" (%.1f MB)\n", sizeMB)
	}

	cyan.Printf("\n📋 Installation Guide: %s\n", release.GuideName)
	bold.Println("\n🚀 Ready for GitHub Release!")
}
