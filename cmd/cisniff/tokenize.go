package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"cisniff/internal/diag"
	"cisniff/internal/diagfmt"
	"cisniff/internal/lexer"
	"cisniff/internal/source"
	"cisniff/internal/view"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.php",
	Short: "Tokenize a PHP source file",
	Long:  `Tokenize prints the token stream the rules see, with scope links of class and function tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", filePath, err)
	}
	fs := source.NewFileSetWithBase(filepath.Dir(abs))
	fileID, err := fs.Load(abs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	toks := lexer.Tokenize(fs.Get(fileID), lexer.Options{Reporter: adapter.Reporter()})
	if err := view.New(toks).Validate(); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if bag.Len() > 0 {
		color, err := useColor(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
			Color:    color,
			Context:  2,
			PathMode: diagfmt.PathModeRelative,
		})
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
