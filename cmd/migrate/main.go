package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"embers/internal/db"
	"embers/internal/legacy"
	"embers/internal/migrate"
)

var (
	dsn     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "embers-migrate",
	Short: "One-shot migration of the legacy forum tables into the normalized schema",
	Long: `embers-migrate reads the legacy bad_posts and bad_comments tables and
rebuilds them as normalized users, topics, posts, comments and votes in the
same database. The run is a single transaction: it either migrates everything
or nothing. It refuses to run against a target that already holds data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		jww.SetStdoutThreshold(jww.LevelInfo)
		if verbose {
			jww.SetStdoutThreshold(jww.LevelDebug)
		}

		if err := godotenv.Load(); err != nil {
			jww.DEBUG.Println("no .env file found, using process environment")
		}
		if dsn == "" {
			dsn = os.Getenv("DATABASE_URL")
		}
		if dsn == "" {
			return errors.New("no database configured: pass --dsn or set DATABASE_URL")
		}

		g, err := db.Init(dsn)
		if err != nil {
			return errors.Wrap(err, "preparing database")
		}

		report, err := migrate.Run(g, legacy.NewDBSource(g))
		if err != nil {
			return err
		}

		fmt.Println(report.Summary())
		for _, rej := range report.Rejections {
			fmt.Printf("rejected %s\n", rej)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&dsn, "dsn", "", "postgres DSN (defaults to DATABASE_URL)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
