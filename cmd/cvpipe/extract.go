package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cvpipe/internal/config"
	"cvpipe/internal/csvexport"
	"cvpipe/internal/domain"
	"cvpipe/internal/export"
	"cvpipe/internal/extract"
	"cvpipe/internal/loader"
	"cvpipe/internal/logger"
	"cvpipe/internal/pipeline"
	"cvpipe/internal/provider"
	"cvpipe/internal/provider/huggingface"
	"cvpipe/internal/provider/local"
	"cvpipe/internal/provider/together"
	"cvpipe/internal/validate"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file-or-directory>",
	Short: "Extract structured records from résumé documents",
	Long: `Extract processes a single document or every supported document
in a directory (pdf, docx, doc, txt) and writes one <name>.json record
per input into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("out", "o", "output", "output directory for extracted records")
	extractCmd.Flags().Bool("heuristic-only", false, "skip the model backends and extract with rules alone")
	extractCmd.Flags().Bool("dump-text", false, "also write the normalized raw text next to each record")
	extractCmd.Flags().Bool("csv", false, "also write a batch summary CSV into the output directory")
	extractCmd.Flags().Bool("xlsx", false, "also write a batch summary XLSX workbook into the output directory")
}

func runExtract(cmd *cobra.Command, input string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	zl.Info("starting cvpipe", zap.String("version", version), zap.String("input", input))

	heuristicOnly, _ := cmd.Flags().GetBool("heuristic-only")
	docLoader := loader.New(&cfg.Loader, zl)
	extractor := extract.New(&cfg.Address, zl)
	processor := pipeline.New(
		docLoader,
		provider.NewSelector(zl, buildGenerators(cfg, extractor, heuristicOnly)...),
		extractor,
		validate.New(&cfg.Validation),
		zl,
	)

	outDir, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	inputs, batch, err := collectInputs(input)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		zl.Info("exiting", zap.String("reason", "no supported documents found"))
		return nil
	}

	dumpText, _ := cmd.Flags().GetBool("dump-text")

	results := make([]*domain.ProcessingResult, 0, len(inputs))
	for _, path := range inputs {
		result, err := processor.Process(ctx, path)
		if err != nil {
			if !batch {
				return err
			}
			// Batch mode skips unreadable documents instead of aborting.
			zl.Warn("skipping document", zap.String("source", path), zap.Error(err))
			continue
		}

		if err := writeResult(outDir, path, result, dumpText); err != nil {
			return err
		}
		zl.Info("document processed",
			zap.String("source", path),
			zap.String("provenance", string(result.Provenance)),
		)
		results = append(results, result)
	}

	if csvOut, _ := cmd.Flags().GetBool("csv"); csvOut {
		if err := writeCSV(outDir, input, results); err != nil {
			return err
		}
	}
	if xlsxOut, _ := cmd.Flags().GetBool("xlsx"); xlsxOut {
		if err := writeXLSX(outDir, input, results, zl); err != nil {
			return err
		}
	}

	zl.Info("done", zap.Int("processed", len(results)), zap.Int("inputs", len(inputs)))
	return nil
}

// buildGenerators assembles the backend chain in probe order. Backends
// without credentials are left out; the rule-based fallback always
// closes the chain.
func buildGenerators(cfg *config.Config, extractor *extract.Extractor, heuristicOnly bool) []provider.Generator {
	var generators []provider.Generator
	if !heuristicOnly {
		if cfg.Provider.Together.APIKey != "" {
			generators = append(generators, together.NewClient(&cfg.Provider.Together, cfg.Provider.ProbeTimeout, cfg.Provider.GenerateTimeout))
		}
		if cfg.Provider.HuggingFace.APIKey != "" {
			generators = append(generators, huggingface.NewClient(&cfg.Provider.HuggingFace, cfg.Provider.ProbeTimeout, cfg.Provider.GenerateTimeout))
		}
		if cfg.Provider.Local.Enabled() {
			generators = append(generators, local.NewClient(&cfg.Provider.Local, cfg.Provider.ProbeTimeout, cfg.Provider.GenerateTimeout))
		}
	}
	return append(generators, provider.NewHeuristicGenerator(extractor))
}

// collectInputs resolves the input path to the list of documents to
// process. The second return value reports directory (batch) mode.
func collectInputs(input string) ([]string, bool, error) {
	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, input)
		}
		return nil, false, err
	}
	if !info.IsDir() {
		return []string{input}, false, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, true, err
	}
	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		if _, ok := domain.AllowedExtensions[ext]; ok {
			inputs = append(inputs, filepath.Join(input, entry.Name()))
		}
	}
	sort.Strings(inputs)
	return inputs, true, nil
}

// writeResult writes <name>.json, and optionally <name>.txt with the
// normalized raw text, into the output directory.
func writeResult(outDir, source string, result *domain.ProcessingResult, dumpText bool) error {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	buf, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result for %s: %w", source, err)
	}
	if err := os.WriteFile(filepath.Join(outDir, base+".json"), buf, 0o644); err != nil {
		return fmt.Errorf("writing result for %s: %w", source, err)
	}

	if dumpText {
		if err := os.WriteFile(filepath.Join(outDir, base+".txt"), []byte(result.RawText), 0o644); err != nil {
			return fmt.Errorf("writing raw text for %s: %w", source, err)
		}
	}
	return nil
}

func writeCSV(outDir, input string, results []*domain.ProcessingResult) error {
	path := filepath.Join(outDir, csvexport.BuildFilename(filepath.Base(input)))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteResults(results); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(outDir, input string, results []*domain.ProcessingResult, zl *zap.Logger) error {
	data, err := export.New(zl).ResultsXLSX(results)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(csvexport.BuildFilename(filepath.Base(input)), ".csv") + ".xlsx"
	return os.WriteFile(filepath.Join(outDir, name), data, 0o644)
}
