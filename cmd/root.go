package cmd

import (
	"context"
	"fmt"
	u "net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raeve/gameboot/internal/audio"
	"github.com/raeve/gameboot/internal/boot"
	"github.com/raeve/gameboot/internal/input"
	"github.com/raeve/gameboot/internal/output"
	"github.com/raeve/gameboot/utils"
)

var (
	outputPath    string
	manifestFile  string
	timeout       time.Duration
	kaTimeout     time.Duration
	userAgent     string
	proxyURL      string
	proxyUsername string
	proxyPassword string
	headers       []string
	enableAudio   bool
	debug         bool
)

var GamebootVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "gameboot [URL]",
	Short:   "Gameboot streams a binary game module, shows boot progress, and initializes it",
	Version: GamebootVersion,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		if len(args) == 0 && manifestFile == "" {
			output.PrintError("No URL or manifest provided")
			os.Exit(1)
		}
		if manifestFile != "" && len(args) > 0 {
			output.PrintError("Cannot specify url argument and --manifest together, choose one")
			os.Exit(1)
		}
		var entries []utils.BootEntry
		if len(args) > 0 {
			if _, err := u.Parse(args[0]); err != nil {
				output.PrintError("Invalid URL format")
				os.Exit(1)
			}
			entries = []utils.BootEntry{{URL: args[0], OutputPath: outputPath}}
		} else {
			var err error
			entries, err = utils.ReadBootManifest(manifestFile)
			if err != nil {
				output.PrintError("Failed to read manifest file")
				os.Exit(1)
			}
		}

		registry := audio.NewRegistry()
		dispatcher := input.NewDispatcher()
		unlocker := audio.NewUnlocker(registry, dispatcher)
		unlocker.Attach()
		go input.ListenKeys(os.Stdin, dispatcher)
		if enableAudio {
			if _, err := registry.NewContext(audio.ContextOptions{}); err != nil {
				output.PrintWarning(fmt.Sprintf("Audio unavailable: %v", err))
			}
		}

		for _, entry := range entries {
			if entry.OutputPath == "" {
				entry.OutputPath = inferOutputPath(entry.URL)
			}
			opts := boot.Options{
				URL:        entry.URL,
				OutputPath: entry.OutputPath,
				HTTPClientConfig: utils.HTTPClientConfig{
					Timeout:       timeout,
					KATimeout:     kaTimeout,
					UserAgent:     userAgent,
					ProxyURL:      proxyURL,
					ProxyUsername: proxyUsername,
					ProxyPassword: proxyPassword,
					Headers:       utils.ParseHeaderArgs(headers),
				},
			}
			if err := boot.Run(context.Background(), opts); err != nil {
				fmt.Println()
				output.PrintError(fmt.Sprintf("Boot failed: %v", err))
				os.Exit(1)
			}
		}
	},
}

func inferOutputPath(rawURL string) string {
	parsed, err := u.Parse(rawURL)
	if err != nil || path.Base(parsed.Path) == "/" || path.Base(parsed.Path) == "." {
		return "module.bin"
	}
	name := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	if name == "" {
		return "module.bin"
	}
	return name
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (inferred from the URL if not provided)")
	rootCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "Path to YAML manifest listing module URLs and output paths")
	rootCmd.Flags().BoolVar(&enableAudio, "audio", false, "Create a hardware audio context, unlocked by the first key press")

	// shared with subcommands
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 3*time.Minute, "Connection timeout (eg. 5s, 10m)")
	rootCmd.PersistentFlags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.PersistentFlags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers; can be specified multiple times")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
