package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/raeve/gameboot/internal/loader"
	"github.com/raeve/gameboot/internal/output"
	"github.com/raeve/gameboot/internal/source"
	"github.com/raeve/gameboot/utils"
)

// fetch downloads the module payload without initializing it.
func newFetchCmd() *cobra.Command {
	var fetchOutput string

	cmd := &cobra.Command{
		Use:   "fetch [URL] [--output OUTPUT_PATH]",
		Short: "Download a module payload without initializing it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(debug)
			url := args[0]
			if fetchOutput == "" {
				fetchOutput = inferOutputPath(url)
			}
			cfg := utils.HTTPClientConfig{
				Timeout:       timeout,
				KATimeout:     kaTimeout,
				UserAgent:     userAgent,
				ProxyURL:      proxyURL,
				ProxyUsername: proxyUsername,
				ProxyPassword: proxyPassword,
				Headers:       utils.ParseHeaderArgs(headers),
			}
			if err := fetch(cmd.Context(), url, fetchOutput, cfg); err != nil {
				fmt.Println()
				output.PrintError(fmt.Sprintf("Fetch failed: %v", err))
				os.Exit(1)
			}
			fmt.Println()
			output.PrintSuccess(fmt.Sprintf("%s %s saved", output.StyleSymbols["pass"], fetchOutput))
		},
	}

	cmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Output file path")
	return cmd
}

func fetch(ctx context.Context, url, outputPath string, cfg utils.HTTPClientConfig) error {
	// S3 objects go straight to disk with ranged parallel reads, no
	// in-memory assembly needed.
	if strings.HasPrefix(url, "s3://") {
		src, err := source.NewS3Source(url)
		if err != nil {
			return err
		}
		var received atomic.Int64
		return src.DownloadToFile(ctx, outputPath, func(n int64) {
			total := received.Add(n)
			output.PrintLine(output.RenderProgress(total, -1, -1, "fetching"))
		})
	}

	src := source.NewHTTPSource(url, nil, cfg)
	l := &loader.Loader{
		Source: src,
		Init: func(module []byte) error {
			if err := os.WriteFile(outputPath, module, 0644); err != nil {
				return fmt.Errorf("error writing module: %v", err)
			}
			return nil
		},
		Progress: func(received, total int64, fraction float64) {
			output.PrintLine(output.RenderProgress(received, total, fraction, "fetching"))
		},
	}
	_, err := l.Run(ctx)
	return err
}
