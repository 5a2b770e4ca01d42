package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var noHistoryFlag bool
	var jsonFlag bool
	flags := &extractFlags{}

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag, &noHistoryFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:   "audioextract --input FILE --output DIR [flags]",
		Short: "Extract the sole audio stream from a media file",
		Long: "audioextract probes a media file with ffprobe, checks that it carries exactly one\n" +
			"audio stream, and writes that stream with ffmpeg as WAV, MP3, or Opus at the\n" +
			"requested sample rate and channel count.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, ctx, flags)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	persistent.StringVar(&logLevelFlag, "log-level", "warn", "Log level: debug, info, warn, error")
	persistent.StringVar(&logFormatFlag, "log-format", "console", "Log format: console or json")
	persistent.BoolVar(&noHistoryFlag, "no-history", false, "Do not record this run in the history database")
	persistent.BoolVar(&jsonFlag, "json", false, "Print results as JSON")

	flags.bindPaths(rootCmd.Flags())
	flags.bindTools(rootCmd.Flags())
	flags.bindEncoding(rootCmd.Flags())

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
