// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/tracker-project/mp3extract/internal/albumart"
	"github.com/tracker-project/mp3extract/internal/config"
	"github.com/tracker-project/mp3extract/internal/mp3meta"
	"github.com/tracker-project/mp3extract/internal/observability"
	"github.com/tracker-project/mp3extract/internal/triples"
	"github.com/tracker-project/mp3extract/internal/version"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json (default from config, falls back to text)")
	verbose := flag.Bool("verbose", false, "Print every emitted triple, not just the summary fields")
	debug := flag.Bool("debug", false, "Enable debug logging of frame-skip, tag-stack, and scan-abort decisions")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	recursive := flag.Bool("recursive", false, "Recursively scan directories")
	albumArtDir := flag.String("album-art-dir", "", "Directory to write captured cover art into (disabled if empty)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mp3extract [flags] <file-or-directory> [...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	if *outputFormat != "" {
		cfg.Defaults.Format = *outputFormat
	}
	if *noColor {
		cfg.Defaults.NoColor = true
	}
	if *verbose {
		cfg.Defaults.Verbose = true
	}
	if *debug {
		cfg.Defaults.Debug = true
	}
	if *recursive {
		cfg.Defaults.Recursive = true
	}
	if cfg.Defaults.NoColor {
		color.NoColor = true
	}

	obs := buildObserver(cfg)
	collab := buildAlbumArtCollaborator(*albumArtDir, obs)

	files, err := collectFiles(args, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no files to process")
		os.Exit(2)
	}

	for _, path := range files {
		sink := triples.NewMapSink()
		if err := mp3meta.Extract(path, cfg, sink, collab, obs); err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", path, err)
			continue
		}
		printResult(path, sink, cfg)
	}
}

func buildObserver(cfg *config.Config) *observability.StandardObserver {
	if !cfg.Defaults.Debug {
		if cfg.Defaults.Verbose {
			return observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
		}
		return observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
	}
	obs := observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
	obs.DebugObserver = observability.NewDebugObserver(os.Stderr)
	return obs
}

func buildAlbumArtCollaborator(dir string, obs *observability.StandardObserver) albumart.Collaborator {
	if dir == "" {
		return albumart.NoopCollaborator{}
	}
	return albumart.NewDiskWriter(dir, obs)
}

// collectFiles expands args into a flat list of regular files,
// descending into directories (recursively when cfg.Defaults.Recursive
// is set) and applying cfg.Defaults.ExcludePatterns to each file's base
// name, in the teacher CLI's directory-walk style.
func collectFiles(args []string, cfg *config.Config) ([]string, error) {
	var files []string
	for _, arg := range args {
		cleanPath := filepath.Clean(arg)
		info, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("path does not exist or is not accessible: %w", err)
		}

		if info.Mode().IsRegular() {
			if !isExcluded(cleanPath, cfg.Defaults.ExcludePatterns) {
				files = append(files, cleanPath)
			}
			continue
		}

		if !info.IsDir() {
			continue
		}

		err = filepath.Walk(cleanPath, func(path string, walkInfo os.FileInfo, walkErr error) error {
			if walkErr != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, walkErr)
				return nil
			}
			if walkInfo.IsDir() {
				if !cfg.Defaults.Recursive && path != cleanPath {
					return filepath.SkipDir
				}
				return nil
			}
			if !walkInfo.Mode().IsRegular() {
				return nil
			}
			if isExcluded(path, cfg.Defaults.ExcludePatterns) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error accessing directory: %w", err)
		}
	}
	return files, nil
}

func isExcluded(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

func printResult(path string, sink *triples.MapSink, cfg *config.Config) {
	if cfg.Defaults.Format == "json" {
		printJSON(path, sink)
		return
	}
	printText(path, sink, cfg)
}

func printJSON(path string, sink *triples.MapSink) {
	type row struct {
		Subject   string      `json:"subject"`
		Predicate string      `json:"predicate"`
		Object    interface{} `json:"object"`
	}
	rows := make([]row, 0, len(sink.All()))
	for _, t := range sink.All() {
		rows = append(rows, row{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
	}
	out := struct {
		File    string `json:"file"`
		Triples []row  `json:"triples"`
	}{File: path, Triples: rows}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON for %s: %v\n", path, err)
	}
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgWhite, color.Bold)
	valueColor  = color.New(color.FgGreen)
	dimColor    = color.New(color.FgYellow)
)

func printText(path string, sink *triples.MapSink, cfg *config.Config) {
	subject := "file://" + path
	headerColor.Printf("=== %s ===\n", path)

	summaryField(subject, "nie:title", "Title", sink)
	artistName := mintedName(subject, "nmm:performer", "nmm:artistName", sink)
	if artistName != "" {
		labelColor.Print("Artist: ")
		valueColor.Println(artistName)
	}
	albumName := mintedName(subject, "nmm:musicAlbum", "nie:title", sink)
	if albumName != "" {
		labelColor.Print("Album: ")
		valueColor.Println(albumName)
	}
	summaryField(subject, "nie:contentCreated", "Year", sink)
	summaryField(subject, "nmm:trackNumber", "Track", sink)
	summaryField(subject, "nfo:genre", "Genre", sink)
	summaryField(subject, "nfo:codec", "Codec", sink)
	summaryField(subject, "nfo:channels", "Channels", sink)
	summaryField(subject, "nfo:sampleRate", "Sample rate (Hz)", sink)
	summaryField(subject, "nfo:averageBitrate", "Average bitrate (bps)", sink)
	summaryField(subject, "nmm:length", "Length (s)", sink)

	if cfg.Defaults.Verbose {
		dimColor.Println("--- all triples ---")
		for _, t := range sink.All() {
			fmt.Printf("  %s %s %v\n", t.Subject, t.Predicate, t.Object)
		}
	}
	fmt.Println()
}

func summaryField(subject, predicate, label string, sink *triples.MapSink) {
	if v, ok := sink.Find(subject, predicate); ok {
		labelColor.Printf("%s: ", label)
		valueColor.Println(v)
	}
}

func mintedName(subject, linkPredicate, namePredicate string, sink *triples.MapSink) string {
	urn, ok := sink.Find(subject, linkPredicate)
	if !ok {
		return ""
	}
	urnStr, ok := urn.(string)
	if !ok {
		return ""
	}
	name, ok := sink.Find(urnStr, namePredicate)
	if !ok {
		return ""
	}
	s, _ := name.(string)
	return s
}
