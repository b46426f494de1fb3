package main

import (
	"context"
	"io"

	"github.com/fwojciec/aocexample"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor aocexample.ExampleExtractor
	Pages     aocexample.PageSource
	Store     aocexample.ExampleStore
	Records   aocexample.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"AOCEXAMPLE_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Extract ExtractCmd `cmd:"" help:"Extract the example input from a single page"`
	Batch   BatchCmd   `cmd:"" help:"Extract example inputs from a directory of pages"`
	Show    ShowCmd    `cmd:"" help:"Print a saved example"`
	List    ListCmd    `cmd:"" help:"List saved examples"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" optional:"" help:"Page HTML file (YYYY-DD.html); stdin when omitted or -"`
	Year int    `short:"y" help:"Puzzle year (default: from file name)"`
	Day  int    `short:"d" help:"Puzzle day (default: from file name)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string `arg:"" help:"Directory of YYYY-DD.html pages"`
	Out         string `short:"o" default:"examples" help:"Output directory, replaced atomically"`
	Concurrency int    `short:"c" default:"4" env:"AOCEXAMPLE_CONCURRENCY" help:"Concurrent extraction limit"`
	DB          bool   `name:"db" help:"Save examples to the database instead of --out"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Year int `arg:"" help:"Puzzle year"`
	Day  int `arg:"" help:"Puzzle day"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Year int `short:"y" help:"Only list examples from this year"`
}
