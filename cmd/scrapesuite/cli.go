package main

import (
	"context"
	"io"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"github.com/russellbomer/scrapesuite-sub001/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Jobs      scrapesuite.JobService
	Detector  scrapesuite.FrameworkDetector
	Analyzer  scrapesuite.PatternAnalyzer
	Fields    scrapesuite.FieldDetector
	Extractor scrapesuite.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log detection details to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Rank item-container selector candidates for HTML files"`
	Fields  FieldsCmd  `cmd:"" help:"Detect per-field selectors for an item container"`
	Preview PreviewCmd `cmd:"" help:"Extract a sample of records with a selector set"`
	Save    SaveCmd    `cmd:"" help:"Save a selector set as a named job"`
	Jobs    JobsCmd    `cmd:"" help:"List saved jobs"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved job"`
	Export  ExportCmd  `cmd:"" help:"Export a job as YAML"`
	Import  ImportCmd  `cmd:"" help:"Import a job from a YAML file"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"HTML files to analyze"`
	Top         int      `short:"t" default:"10" help:"Number of candidates to show per file"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent analysis limit"`
}

// FieldsCmd is the "fields" subcommand.
type FieldsCmd struct {
	File   string   `arg:"" type:"existingfile" help:"HTML file"`
	Item   string   `short:"i" required:"" help:"Item container selector"`
	Fields []string `short:"f" help:"Fields to detect (default: title,url,date,author)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	File  string            `arg:"" type:"existingfile" help:"HTML file"`
	Item  string            `short:"i" help:"Item container selector (required unless --job)"`
	Field map[string]string `short:"f" help:"Field selector pairs, e.g. title='.titleline a'"`
	Job   string            `short:"j" help:"Use the selectors of a saved job"`
	Limit int               `short:"n" default:"10" help:"Maximum records to show (0 = all)"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Name      string            `arg:"" help:"Job name"`
	Item      string            `short:"i" required:"" help:"Item container selector"`
	Field     map[string]string `short:"f" help:"Field selector pairs"`
	File      string            `type:"existingfile" help:"Sample HTML file to auto-detect field selectors from"`
	SourceURL string            `short:"u" name:"url" help:"Source page URL"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Job string `arg:"" help:"Job ID or name"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Job string `arg:"" help:"Job ID or name"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML job file"`
}
