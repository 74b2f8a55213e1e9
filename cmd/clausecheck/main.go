package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clausecheck/cli/config"
	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/documents"
	"github.com/clausecheck/cli/internal/pins"
	"github.com/clausecheck/cli/internal/tui"
	"github.com/clausecheck/cli/internal/view"
	"github.com/clausecheck/cli/internal/workflow"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "clausecheck",
		Short: "Contract risk analysis client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests")

	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(documentCmd())
	rootCmd.AddCommand(pinsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient(cfg *config.Config) *api.Client {
	client := api.NewClient(cfg.API.BaseURL, cfg.Timeout())
	if verbose {
		client.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return client
}

func openPins(cfg *config.Config) (*pins.Store, *pins.SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Paths.PinDB), 0755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	kv, err := pins.OpenSQLite(cfg.Paths.PinDB)
	if err != nil {
		return nil, nil, err
	}
	return pins.NewStore(kv), kv, nil
}

// cliError renders an error for terminal output: the user message for
// API failures, the raw error otherwise.
func cliError(err error) error {
	if apiErr, ok := err.(*api.APIError); ok {
		return fmt.Errorf("%s (%s)", api.UserError(apiErr), apiErr.Code)
	}
	return err
}

func runUI() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, kv, err := openPins(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	app := tui.NewApp(newClient(cfg), store, cfg.Analysis.Language)
	return app.Run()
}

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
	}
}

func analyzeCmd() *cobra.Command {
	var (
		contractType string
		userProfile  string
		language     string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file.pdf]",
		Short: "Upload a contract and print the risk analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if language == "" {
				language = cfg.Analysis.Language
			}

			info, err := documents.Preflight(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", documents.RejectionMessage(err), err)
			}

			runner := workflow.NewRunner(newClient(cfg))
			result, err := runner.AnalyzeFile(cmd.Context(), info.Path,
				api.ContractType(contractType), api.UserProfile(userProfile), language)
			if err != nil {
				return cliError(err)
			}

			fmt.Print(view.Render(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contractType, "type", "t", "", "contract type (FREELANCER, EMPLOYMENT, PART_TIME, LEASE, NDA, OTHER)")
	cmd.Flags().StringVarP(&userProfile, "profile", "p", "", "user profile (STUDENT, ENTRY_LEVEL, FREELANCER, INDIVIDUAL_BUSINESS, GENERAL_CONSUMER)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "analysis language (default from config)")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("profile")

	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [analysisId]",
		Short: "Fetch and print one analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			result, err := newClient(cfg).GetAnalysis(cmd.Context(), args[0])
			if err != nil {
				return cliError(err)
			}

			fmt.Print(view.Render(result))
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var (
		page int
		size int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			entries, err := newClient(cfg).GetAnalysisHistory(cmd.Context(), page, size)
			if err != nil {
				return cliError(err)
			}

			if len(entries) == 0 {
				fmt.Println("분석 히스토리가 없습니다.")
				return nil
			}
			for _, entry := range entries {
				fmt.Println(view.HistoryLine(entry))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-indexed page")
	cmd.Flags().IntVar(&size, "size", api.DefaultPageSize, "page size")

	return cmd
}

func documentCmd() *cobra.Command {
	var includeText bool

	cmd := &cobra.Command{
		Use:   "document [documentId]",
		Short: "Show an uploaded document and its analyses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := newClient(cfg)

			doc, err := client.GetDocument(cmd.Context(), args[0], includeText)
			if err != nil {
				return cliError(err)
			}

			fmt.Printf("%s  %s  %d bytes  %s\n", doc.DocumentID, doc.OriginalFileName, doc.SizeBytes, doc.Status)
			if includeText && doc.ExtractedText != "" {
				fmt.Println()
				fmt.Println(doc.ExtractedText)
			}

			analyses, err := client.GetDocumentAnalyses(cmd.Context(), doc.DocumentID)
			if err != nil {
				return cliError(err)
			}
			if len(analyses) > 0 {
				fmt.Println()
				for _, a := range analyses {
					fmt.Println(view.HistoryLine(a))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeText, "text", false, "include extracted text")

	return cmd
}

func pinsCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "pins",
		Short: "List or clear pinned clauses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, kv, err := openPins(cfg)
			if err != nil {
				return err
			}
			defer kv.Close()

			if clear {
				if err := store.Clear(); err != nil {
					return err
				}
				fmt.Println("핀이 모두 삭제되었습니다.")
				return nil
			}

			pinned := store.List()
			if len(pinned) == 0 {
				fmt.Println("핀된 조항이 없습니다.")
				return nil
			}
			for _, p := range pinned {
				fmt.Printf("%s %s\n", p.AnalysisID, p.ClauseID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove all pins")

	return cmd
}
