package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"recon/internal/config"
	"recon/internal/recon"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultParallel bounds the addresses analyzed at once with --stdin.
const defaultParallel = 4

// analyzeCommand constructs the 'analyze' subcommand that prints dossiers as JSON.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [email...]",
		Short: "Builds reconnaissance dossiers for email addresses",
		Long: "Builds a dossier for every email argument. With --stdin, addresses are read line by line " +
			"and each one supersedes the previous; only the dossier of the last address is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			stdin, _ := cmd.Flags().GetBool("stdin")
			parallel, _ := cmd.Flags().GetInt("parallel")
			if !stdin && len(args) == 0 {
				return errors.New("at least one email or --stdin is required")
			}

			analyzer := newAnalyzer(ctx, cfg, nil)
			out := cmd.OutOrStdout()

			if stdin {
				d, err := analyzeStream(ctx, recon.NewSession(analyzer), cmd.InOrStdin(), parallel)
				if err != nil {
					return err
				}
				if d == nil {
					return errors.New("no valid email address was read")
				}

				return printJSON(out, d)
			}

			var failed bool
			for _, email := range args {
				d, err := analyzer.Analyze(ctx, email)
				if err != nil {
					logger.Error(ctx, "could not analyze", zap.String("email", email), zap.Error(err))
					failed = true

					continue
				}
				if err := printJSON(out, d); err != nil {
					return err
				}
			}
			if failed {
				return errors.New("some addresses could not be analyzed")
			}

			return nil
		},
	}

	cmd.Flags().Bool("stdin", false, "Read email addresses from standard input, one per line")
	cmd.Flags().Int("parallel", defaultParallel, "Maximum number of addresses analyzed at once with --stdin")

	return cmd
}

// analyzeStream submits every non-empty line of r to session as it is read
// and returns the dossier of the newest submission once all lookups finish.
// At most parallel lookups run at once; reading waits for a free slot.
func analyzeStream(ctx context.Context,
	session *recon.Session,
	r io.Reader,
	parallel int) (*domain.Dossier, error) {
	g := new(errgroup.Group)
	g.SetLimit(max(1, parallel))

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		email := strings.TrimSpace(lines.Text())
		if email == "" {
			continue
		}

		run := session.Begin(email)
		g.Go(func() error {
			if _, err := run(ctx); err != nil {
				if errors.Is(err, recon.ErrStale) {
					logger.Debug(ctx, "dropped superseded dossier", zap.String("email", email))

					return nil
				}
				logger.Warn(ctx, "could not analyze", zap.String("email", email), zap.Error(err))
			}

			return nil
		})
	}
	_ = g.Wait()
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	return session.Current(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}
