package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"cisniff/internal/diag"
	"cisniff/internal/source"
)

// SARIF 2.1.0 constants
const (
	SarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	SarifVersion   = "2.1.0"
)

// SarifLog is the top-level SARIF document.
type SarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Invocations []SarifInvocation `json:"invocations,omitempty"`
	Results     []SarifResult     `json:"results"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []SarifRule `json:"rules,omitempty"`
}

// SarifRule describes one rule of the run.
type SarifRule struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortDescription SarifText `json:"shortDescription"`
}

type SarifText struct {
	Text string `json:"text"`
}

type SarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

// SarifResult is a single diagnostic.
type SarifResult struct {
	RuleID           string            `json:"ruleId"`
	Level            string            `json:"level"`
	Message          SarifText         `json:"message"`
	Locations        []SarifLocation   `json:"locations"`
	RelatedLocations []SarifLocation   `json:"relatedLocations,omitempty"`
	Properties       map[string]string `json:"properties,omitempty"`
}

type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
	Message          *SarifText            `json:"message,omitempty"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           SarifRegion           `json:"region"`
}

type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifRegion specifies the line/column range; end column is exclusive.
type SarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

// BuildSarif converts the bag into a single-run SARIF log.
func BuildSarif(bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) *SarifLog {
	run := SarifRun{
		Tool: SarifTool{Driver: SarifDriver{
			Name:    meta.ToolName,
			Version: meta.ToolVersion,
			Rules:   make([]SarifRule, 0, len(meta.Rules)),
		}},
		Invocations: []SarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: true,
		}},
		Results: make([]SarifResult, 0, bag.Len()),
	}
	for _, r := range meta.Rules {
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SarifRule{
			ID:               r.Name,
			Name:             r.Name,
			ShortDescription: SarifText{Text: r.Description},
		})
	}

	for _, d := range bag.Items() {
		// диагностики без правила (лексер, IO) идентифицируются кодом
		ruleID := d.Rule
		if ruleID == "" {
			ruleID = d.Code.ID()
		}
		result := SarifResult{
			RuleID:     ruleID,
			Level:      d.Severity.Label(),
			Message:    SarifText{Text: d.Message},
			Locations:  []SarifLocation{sarifLocation(d.Primary, fs)},
			Properties: map[string]string{"code": d.Code.ID()},
		}
		for _, note := range d.Notes {
			loc := sarifLocation(note.Span, fs)
			loc.Message = &SarifText{Text: note.Msg}
			result.RelatedLocations = append(result.RelatedLocations, loc)
		}
		run.Results = append(run.Results, result)
	}

	return &SarifLog{
		Schema:  SarifSchemaURI,
		Version: SarifVersion,
		Runs:    []SarifRun{run},
	}
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0)
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSarif(bag, fs, meta))
}

func sarifLocation(span source.Span, fs *source.FileSet) SarifLocation {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	return SarifLocation{
		PhysicalLocation: SarifPhysicalLocation{
			ArtifactLocation: SarifArtifactLocation{URI: formatFileURI(f.FormatPath("relative", fs.BaseDir()))},
			Region: SarifRegion{
				StartLine:   start.Line,
				StartColumn: start.Col,
				EndLine:     end.Line,
				EndColumn:   end.Col,
			},
		},
	}
}

// formatFileURI converts a file path to SARIF URI format.
// Absolute paths get file:// prefix, relative paths stay as-is.
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
