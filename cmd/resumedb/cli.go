package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Resumes resumedb.ResumeService
	Scans   resumedb.ScanService
	Scanner *scan.Scanner
	Exports resumedb.ExportStore
	Asker   resumedb.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"RESUMEDB_DB" help:"Database file (default ~/.resumedb/master_resumes.db)"`
	Config  string `env:"RESUMEDB_CONFIG" type:"path" help:"YAML config file"`
	Verbose bool   `short:"v" help:"Log every operation to stderr"`

	Scan    ScanCmd    `cmd:"" default:"withargs" help:"Scan a directory and store resume text (default)"`
	List    ListCmd    `cmd:"" help:"List stored resumes"`
	Show    ShowCmd    `cmd:"" help:"Show one stored resume"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored resume"`
	History HistoryCmd `cmd:"" help:"List recent scans"`
	Merge   MergeCmd   `cmd:"" help:"Append one .docx resume to another"`
	Export  ExportCmd  `cmd:"" help:"Write stored resumes to text files"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about stored resumes"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Root           string        `arg:"" help:"Directory to scan"`
	Soffice        string        `env:"RESUMEDB_SOFFICE" help:"LibreOffice binary used for .doc files (default soffice)"`
	IgnoreName     []string      `name:"ignore-name" sep:"none" help:"Skip files whose name contains this text (repeatable)"`
	IgnorePath     []string      `name:"ignore-path" sep:"none" help:"Skip this file (repeatable)"`
	ConvertTimeout time.Duration `help:"Limit for each .doc conversion, e.g. 2m (default none)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter string `short:"f" help:"Only resumes whose filename contains this text"`
	Limit  int    `short:"n" help:"Maximum number of resumes to list"`
	Full   bool   `help:"Show full resume content"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Path string `arg:"" help:"Path of the resume file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Path  string `arg:"" help:"Path of the resume file"`
	Force bool   `help:"Confirm deletion"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of scans to show"`
}

// MergeCmd is the "merge" subcommand.
type MergeCmd struct {
	First  string `arg:"" help:"Resume placed first"`
	Second string `arg:"" help:"Resume appended to the first"`
	Out    string `arg:"" help:"Output .docx file"`
	Force  bool   `help:"Overwrite an existing output file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" type:"path" help:"Directory to export into"`
	Name   string `default:"resumes" help:"Name of the export directory inside Dir"`
	Filter string `short:"f" help:"Only resumes whose filename contains this text"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the resumes"`
	Filter   string `short:"f" help:"Only resumes whose filename contains this text"`
}

// filenameFilter returns a filter for resumes whose filename contains s.
func filenameFilter(s string) resumedb.ResumeFilter {
	if s == "" {
		return resumedb.ResumeFilter{}
	}
	return resumedb.ResumeFilter{Filename: &s}
}
