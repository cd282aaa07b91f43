package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the optional HCL config file. Flags override any
// value it supplies.
//
//	workers = 4
//
//	filter {
//	  games       = ["holdem", "omaha"]
//	  min_players = 2
//	  max_players = 6
//	}
//
//	output {
//	  format  = "csv"
//	  hands   = "out/hands.csv"
//	  actions = "out/actions.csv"
//	  report  = "out/report.json"
//	  phh     = "out/session.phhs"
//	}
type FileConfig struct {
	Workers int           `hcl:"workers,optional"`
	Filter  *FilterConfig `hcl:"filter,block"`
	Output  *OutputConfig `hcl:"output,block"`
}

// FilterConfig mirrors the post-parse inclusion predicates.
type FilterConfig struct {
	Games      []string `hcl:"games,optional"`
	MinPlayers *int     `hcl:"min_players,optional"`
	MaxPlayers *int     `hcl:"max_players,optional"`
}

// OutputConfig supplies output path and format defaults.
type OutputConfig struct {
	Format  string `hcl:"format,optional"`
	Hands   string `hcl:"hands,optional"`
	Actions string `hcl:"actions,optional"`
	Report  string `hcl:"report,optional"`
	PHH     string `hcl:"phh,optional"`
}

// LoadFileConfig parses the HCL config file. A missing filename (no
// --config flag) yields an empty config; a named file that does not
// exist is an error.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if filename == "" {
		return &FileConfig{}, nil
	}
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &config, nil
}
