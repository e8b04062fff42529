package files

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"cisniff/internal/comment"
	"cisniff/internal/diag"
	"cisniff/internal/sniff"
	"cisniff/internal/token"
)

// DefaultAppRoot is the application directory marker CodeIgniter projects use.
const DefaultAppRoot = "/application/"

const missingClosingMsg = `No comment block marks the end of file instead of the closing PHP tag. Please add a comment block containing only "%s".`

// ClosingFileComment requires files to end with "// End of file <name>".
type ClosingFileComment struct{}

func (ClosingFileComment) Name() string { return "Files.ClosingFileComment" }

func (ClosingFileComment) Description() string {
	return `file ends with a comment "End of file <basename>"`
}

func (ClosingFileComment) Register() token.Set { return token.Of(token.OpenTag) }

func (ClosingFileComment) Process(f *sniff.File, idx int) {
	if !IsFirstOpenTag(f.View, idx) {
		return
	}
	checkTrailing(f, diag.StyMissingClosingFile, "End of file "+f.BaseName(), "End of file")
}

// ClosingLocationComment requires files to end with
// "// Location: ./<path below app root>".
type ClosingLocationComment struct {
	AppRoot string
}

func NewClosingLocationComment() *ClosingLocationComment {
	return &ClosingLocationComment{AppRoot: DefaultAppRoot}
}

func (*ClosingLocationComment) Name() string { return "Files.ClosingLocationComment" }

func (*ClosingLocationComment) Description() string {
	return `file ends with a comment "Location: ./<path relative to app root>"`
}

func (*ClosingLocationComment) Register() token.Set { return token.Of(token.OpenTag) }

// Configure accepts the single option app_root.
func (r *ClosingLocationComment) Configure(opts map[string]string) error {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch k {
		case "app_root":
			if strings.TrimSpace(opts[k]) == "" {
				return errors.New("app_root must not be empty")
			}
			r.AppRoot = opts[k]
		default:
			return fmt.Errorf("unknown option %q", k)
		}
	}
	return nil
}

func (r *ClosingLocationComment) Process(f *sniff.File, idx int) {
	if !IsFirstOpenTag(f.View, idx) {
		return
	}
	appRoot := r.AppRoot
	if appRoot == "" {
		appRoot = DefaultAppRoot
	}
	path := norm.NFC.String(f.Path())
	local, ok := LocationPath(path, norm.NFC.String(appRoot))
	if !ok {
		f.Error(f.View.Last(), diag.CfgAppRootNotFound, fmt.Sprintf(
			`Unable to find "%s" in file path "%s". Please set the app_root option of Files.ClosingLocationComment.`,
			appRoot, path))
		return
	}
	checkTrailing(f, diag.StyMissingClosingLocation, "Location: "+local, "Location:")
}

// checkTrailing reports a missing trailing comment. When a comment with
// the same prefix is present a note points at it.
func checkTrailing(f *sniff.File, code diag.Code, expected, prefix string) {
	found, stop := TrailingComment(f.View, expected)
	if found {
		return
	}
	b := f.Report(diag.SevError, stop, code, fmt.Sprintf(missingClosingMsg, expected))
	if near, ok := trailingWithPrefix(f.View, prefix); ok {
		got := comment.Content(f.View.At(near).Text)
		b = b.WithNote(f.SpanOf(near), fmt.Sprintf("found %q", got))
	}
	b.Emit()
}
