// Command fontindex lists and queries the fonts installed on this system.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/fontindex"
)

func main() {
	var (
		all       = flag.Bool("all", false, "include fonts without basic Latin coverage")
		families  = flag.Bool("families", false, "list unique family names instead of faces")
		find      = flag.String("find", "", "look up a single font by name and print its metadata")
		family    = flag.String("family", "", "filter: exact family name")
		contains  = flag.String("contains", "", "filter: family name substring")
		bold      = flag.Bool("bold", false, "filter: bold faces only")
		italic    = flag.Bool("italic", false, "filter: italic faces only")
		mono      = flag.Bool("mono", false, "filter: monospace faces only")
		format    = flag.String("format", "", "filter: file format, e.g. ttf or .otf")
		minWeight = flag.Int("min-weight", 0, "filter: minimum OS/2 weight class")
		maxWeight = flag.Int("max-weight", 0, "filter: maximum OS/2 weight class")
		asJSON    = flag.Bool("json", false, "print records as JSON")
		verbose   = flag.Bool("v", false, "log scan progress to stderr")
	)
	flag.Parse()

	if *verbose {
		fontindex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *find != "" {
		rec, err := fontindex.Find(*find)
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		printRecord(rec, *asJSON)
		return
	}

	if *families {
		names, err := fontindex.Families(!*all)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	records, err := fontindex.All(!*all)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	var match []fontindex.Criterion
	if *family != "" {
		match = append(match, fontindex.Family(*family))
	}
	if *contains != "" {
		match = append(match, fontindex.FamilyContains(*contains))
	}
	if *bold {
		match = append(match, fontindex.Bold(true))
	}
	if *italic {
		match = append(match, fontindex.Italic(true))
	}
	if *mono {
		match = append(match, fontindex.Monospace(true))
	}
	if *format != "" {
		match = append(match, fontindex.Format(*format))
	}
	if *minWeight > 0 {
		match = append(match, fontindex.MinWeight(*minWeight))
	}
	if *maxWeight > 0 {
		match = append(match, fontindex.MaxWeight(*maxWeight))
	}
	records = fontindex.Filter(records, match...)

	if *asJSON {
		printJSON(records)
		return
	}

	fmt.Printf("%-35s %-18s %-8s %s\n", "Family", "Subfamily", "Weight", "File")
	for _, r := range records {
		fmt.Printf("%-35s %-18s %-8d %s\n", r.Family, r.Subfamily, r.Weight, filepath.Base(r.Path))
	}
	fmt.Printf("\n%d fonts\n", len(records))
}

// printRecord dumps one record field by field, in the canonical order.
func printRecord(rec fontindex.Record, asJSON bool) {
	if asJSON {
		printJSON([]fontindex.Record{rec})
		return
	}
	m := rec.ToMap()
	for _, field := range fontindex.RecordFields() {
		fmt.Printf("%-16s %v\n", field, m[field])
	}
}

func printJSON(records []fontindex.Record) {
	maps := make([]map[string]any, len(records))
	for i, r := range records {
		maps[i] = r.ToMap()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(maps); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
}
