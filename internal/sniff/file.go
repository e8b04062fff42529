package sniff

import (
	"cisniff/internal/diag"
	"cisniff/internal/source"
	"cisniff/internal/token"
	"cisniff/internal/view"
)

// File is what a rule sees of the file being checked: the token view, the
// source it came from, and an emitter bound to the running rule.
type File struct {
	View   *view.View
	Source *source.File

	rep  diag.Reporter
	rule string
}

// NewFile binds a token stream to its source. Diagnostics go to rep.
func NewFile(src *source.File, toks []token.Token, rep diag.Reporter) *File {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &File{View: view.New(toks), Source: src, rep: rep}
}

// Path is the normalised path the file was loaded from.
func (f *File) Path() string { return f.Source.Path }

// BaseName is the last element of Path.
func (f *File) BaseName() string { return f.Source.BaseName() }

// Rule returns the name of the rule currently being run.
func (f *File) Rule() string { return f.rule }

func (f *File) withRule(name string) *File {
	cp := *f
	cp.rule = name
	return &cp
}

// SpanOf returns the span of token idx. Indices outside the stream map to
// an empty span at the start of the file.
func (f *File) SpanOf(idx int) source.Span {
	if !f.View.Valid(idx) {
		return source.Span{File: f.Source.ID}
	}
	return f.View.At(idx).Span
}

// Error reports an error anchored at token idx.
func (f *File) Error(idx int, code diag.Code, msg string) {
	f.Report(diag.SevError, idx, code, msg).Emit()
}

// Warning reports a warning anchored at token idx.
func (f *File) Warning(idx int, code diag.Code, msg string) {
	f.Report(diag.SevWarning, idx, code, msg).Emit()
}

// Report starts a diagnostic that can be extended with notes before Emit.
func (f *File) Report(sev diag.Severity, idx int, code diag.Code, msg string) *diag.ReportBuilder {
	return diag.NewReportBuilder(f.rep, sev, code, f.SpanOf(idx), msg).
		WithRule(f.rule).
		AtToken(idx)
}
