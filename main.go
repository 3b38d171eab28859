// goWordFreq counts word frequencies in the yearly shift logs and writes
// related-word reports.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"goWordFreq/configlib"
	"goWordFreq/corpuslib"
	"goWordFreq/pipelinelib"
	"goWordFreq/reportlib"
)

/******************************************************************************/
/******************************************************************************/
/*********************** CONFIG ***********************************************/
/******************************************************************************/
/******************************************************************************/

type runOptions struct {
	configDir string
	dataDir   string
	output    string
	verbose   bool
	debug     bool
	wait      bool
}

var opts = runOptions{
	configDir: "_config",
	output:    "result.xlsx",
}

var logger *zap.Logger

var openReport = reportlib.Open

var rootCmd = &cobra.Command{
	Use:   "goWordFreq",
	Short: "Word frequency and related-word reports for shift-log workbooks",
	Long: `goWordFreq segments the free-text column of the yearly shift-log workbooks
(data/<year>年值班日志记录表.xlsx), counts every word and writes result.xlsx:

  ALL           every word, most frequent first
  top_<word>    words found in the entries that mention one of the top words
  select_<word> the same for each word listed in related_words

Settings are read from _config/setup.json, extra dictionary words from
_config/dict.txt and excluded words from _config/filt.txt.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if opts.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := run(opts, logger, cmd.OutOrStdout())
		if opts.wait {
			fmt.Fprintln(cmd.OutOrStdout(), "Press Enter to exit...")
			bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		}
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.configDir, "config-dir", opts.configDir, "directory holding setup.json, dict.txt and filt.txt")
	rootCmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the yearly workbooks (overrides data_dir)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "report workbook to write")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "dump the loaded settings")
	rootCmd.Flags().BoolVar(&opts.wait, "wait", false, "wait for Enter before exiting")
}

/***************************************************************************************************************
****************************************************************************************************************
* MAIN *********************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

func run(o runOptions, logger *zap.Logger, stdout io.Writer) error {
	logger.Info("loading configurations", zap.String("dir", o.configDir))
	settings, err := configlib.Load(o.configDir)
	if err != nil {
		return err
	}
	if o.dataDir != "" {
		settings.DataDir = o.dataDir
	}
	logger.Info("years", zap.Strings("years", settings.Years))
	logger.Info("related words of the top words", zap.Int("related_top", settings.RelatedTop))
	logger.Info("related words of", zap.Strings("related_words", settings.RelatedWords))
	if o.debug {
		goDebug.Print("settings", settings)
	}

	vocab, err := configlib.LoadVocabulary(filepath.Join(o.configDir, configlib.DictionaryFile), logger)
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded", zap.Int("words", len(vocab)))
	filter, err := configlib.LoadFilter(filepath.Join(o.configDir, configlib.FilterFile), logger)
	if err != nil {
		return err
	}
	logger.Info("filter loaded", zap.Int("words", len(filter)))

	logger.Info("creating report", zap.String("path", o.output))
	writer, err := openReport(o.output)
	if err != nil {
		return err
	}
	logger.Debug("report claimed", zap.String("path", writer.Path()))

	seg, err := pipelinelib.BuildSegmenter(settings, vocab)
	if err != nil {
		writer.Abort()
		return err
	}

	logger.Info("reading data", zap.String("dir", settings.DataDir))
	sentences, err := corpuslib.Load(settings.DataDir, settings.Years, corpuslib.Options{
		TextColumn: settings.TextColumn,
		HeaderRows: settings.HeaderRows,
		Logger:     logger,
	})
	if err != nil {
		writer.Abort()
		return err
	}

	p := pipelinelib.New(settings, seg, filter, logger, stdout)
	if _, err := p.Run(sentences, writer); err != nil {
		writer.Abort()
		return err
	}

	path, err := writer.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "All done! The results are available in: %s\n", path)
	return nil
}

// describe turns a run error into the one line shown to the operator
func describe(err error) string {
	switch {
	case errors.Is(err, reportlib.ErrOutputLocked):
		return err.Error()
	case errors.Is(err, configlib.ErrConfig):
		return fmt.Sprintf("Check the files in %s: %v", opts.configDir, err)
	case errors.Is(err, corpuslib.ErrDataAccess):
		return fmt.Sprintf("Check the workbooks: %v", err)
	default:
		return err.Error()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}
