// Command sectionctl analyzes a web page or an HTML file from the terminal
// and prints the detected sections, without requiring the API service or its
// backing stores.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/user/section-detector/internal/adapter/chromedplayout"
	"github.com/user/section-detector/internal/adapter/staticlayout"
	"github.com/user/section-detector/internal/delivery/http/response"
	"github.com/user/section-detector/internal/detector"
	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/internal/repository"
	"github.com/user/section-detector/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		pageURL      string
		filePath     string
		outputFormat string
		saveHTMLDir  string
		static       bool
		timeoutSecs  int
		gapThreshold float64
		minWidth     float64
		minHeight    float64
	)

	cmd := &cobra.Command{
		Use:   "sectionctl",
		Short: "Detect visual sections in web pages",
		Long: `sectionctl renders a web page (or reads an HTML file) and partitions it
into visually coherent sections: header, hero, content, sidebar, footer.

Examples:
  sectionctl --url https://example.com
  sectionctl --file example.html --output json
  sectionctl --file example.html --static --save-html ./sections`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (pageURL == "") == (filePath == "") {
				return fmt.Errorf("exactly one of --url or --file is required")
			}
			if static && pageURL != "" {
				return fmt.Errorf("--static requires --file: the static provider cannot render URLs")
			}

			logger.Init(os.Stderr, slog.LevelWarn)

			opts := detector.Options{
				GapThresholdPx: gapThreshold,
				MinWidthPx:     minWidth,
				MinHeightPx:    minHeight,
			}
			renderCfg := repository.RenderConfig{
				ViewportWidth:  1280,
				ViewportHeight: 800,
				Timeout:        time.Duration(timeoutSecs) * time.Second,
			}

			result, err := runAnalysis(cmd.Context(), pageURL, filePath, static, opts, renderCfg)
			if err != nil {
				return err
			}

			if outputFormat == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(response.FromResult(result)); err != nil {
					return err
				}
			} else {
				printSections(cmd, result)
			}

			if saveHTMLDir != "" {
				return saveSectionHTML(cmd, result.Sections, saveHTMLDir)
			}
			return nil
		},
	}

	defaults := detector.DefaultOptions()
	cmd.Flags().StringVar(&pageURL, "url", "", "URL to analyze")
	cmd.Flags().StringVar(&filePath, "file", "", "HTML file to analyze")
	cmd.Flags().StringVar(&outputFormat, "output", "text", "output format: text or json")
	cmd.Flags().StringVar(&saveHTMLDir, "save-html", "", "save each section's HTML to the given directory")
	cmd.Flags().BoolVar(&static, "static", false, "approximate layout without a browser (file input only)")
	cmd.Flags().IntVar(&timeoutSecs, "timeout", 60, "page load timeout in seconds")
	cmd.Flags().Float64Var(&gapThreshold, "gap-threshold", defaults.GapThresholdPx, "vertical gap in px treated as a section boundary")
	cmd.Flags().Float64Var(&minWidth, "min-width", defaults.MinWidthPx, "minimum element width in px")
	cmd.Flags().Float64Var(&minHeight, "min-height", defaults.MinHeightPx, "minimum element height in px")

	return cmd
}

func runAnalysis(
	ctx context.Context,
	pageURL, filePath string,
	static bool,
	opts detector.Options,
	renderCfg repository.RenderConfig,
) (*entity.DetectionResult, error) {
	var provider repository.LayoutProvider
	if static {
		provider = staticlayout.NewStaticProvider()
	} else {
		var err error
		provider, err = chromedplayout.NewChromedpProvider(1)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
	}

	var (
		elements []entity.LayoutElement
		source   string
		err      error
	)
	startTime := time.Now()

	if pageURL != "" {
		source = pageURL
		elements, err = provider.SnapshotURL(ctx, pageURL, renderCfg)
	} else {
		source = filePath
		var html []byte
		html, err = os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		elements, err = provider.SnapshotHTML(ctx, string(html), renderCfg)
	}
	if err != nil {
		return nil, err
	}

	sections, err := detector.DetectSections(elements, opts)
	if err != nil {
		return nil, err
	}

	return &entity.DetectionResult{
		ID:            uuid.NewString(),
		Source:        source,
		Sections:      sections,
		TotalSections: len(sections),
		AnalyzedAt:    time.Now().UTC(),
		DurationMS:    time.Since(startTime).Milliseconds(),
	}, nil
}

func printSections(cmd *cobra.Command, result *entity.DetectionResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d sections:\n\n", result.TotalSections)

	for _, s := range result.Sections {
		content := s.Content
		if len(content) > 100 {
			content = content[:100] + "..."
		}
		fmt.Fprintf(out, "  Section %d (%s):\n", s.ID, s.Type)
		fmt.Fprintf(out, "    Content:  %s\n", content)
		fmt.Fprintf(out, "    Layout:   %.0fx%.0f at (%.0f, %.0f)\n",
			s.Bounds.Width, s.Bounds.Height, s.Bounds.Left, s.Bounds.Top)
		fmt.Fprintf(out, "    Elements: %d\n", s.Metadata.ElementCount)
		fmt.Fprintf(out, "    Images:   %v\n", s.Metadata.HasImages)
		fmt.Fprintf(out, "    Videos:   %v\n\n", s.Metadata.HasVideos)
	}

	typeCounts := make(map[entity.SectionType]int)
	for _, s := range result.Sections {
		typeCounts[s.Type]++
	}
	fmt.Fprintln(out, "Summary:")
	for _, s := range result.Sections {
		if count, ok := typeCounts[s.Type]; ok {
			fmt.Fprintf(out, "  %s: %d\n", s.Type, count)
			delete(typeCounts, s.Type)
		}
	}
}

func saveSectionHTML(cmd *cobra.Command, sections []entity.Section, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nSaving section HTML to: %s\n", dir)
	for _, s := range sections {
		name := filepath.Join(dir, fmt.Sprintf("section_%d_%s.html", s.ID, s.Type))
		if err := os.WriteFile(name, []byte(s.WrappedHTML()), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Saved: %s\n", name)
	}
	return nil
}
