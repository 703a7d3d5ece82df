// galleryctl maintains the mbh.photos gallery manifest: it parses image
// filenames into manifest records and writes them as JSON for the gallery
// renderer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gallery "github.com/mbharanya/mbh.photos"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagConfig    string
	flagSource    string
	flagOut       string
	flagSiteURL   string
	flagSitemap   string
	flagHistoryDB string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "galleryctl",
	Short: "Build the mbh.photos gallery manifest from image filenames",
	Long: `galleryctl scans the source image directory, parses each filename of the
form <sort>_<Category>_<Title-Tokens>_<WxH>.<ext>, and writes the ordered
JSON manifest the gallery renderer consumes.

Files that do not follow the naming convention are skipped with a warning;
they never fail the build.`,
	SilenceUsage: true,
	RunE:         runBuild,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the galleryctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("galleryctl %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	pf.StringVar(&flagSource, "source", "", "source image directory (default \"images\")")
	pf.StringVarP(&flagOut, "out", "o", "", "manifest output path (default \"manifest.json\")")
	pf.StringVar(&flagSiteURL, "site-url", "", "canonical site URL for sitemap entries")
	pf.StringVar(&flagSitemap, "sitemap", "", "also write a sitemap.xml to this path")
	pf.StringVar(&flagHistoryDB, "history-db", "", "record build runs in this SQLite database")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(buildCmd, watchCmd, checkCmd, historyCmd, versionCmd)
}

// loadConfig merges CLI flags over the config file over built-in defaults.
func loadConfig() (gallery.Config, error) {
	cfg, err := gallery.LoadConfig(flagConfig)
	if err != nil {
		return gallery.Config{}, err
	}
	if flagSource != "" {
		cfg.SourceDir = flagSource
	}
	if flagOut != "" {
		cfg.OutputPath = flagOut
	}
	if flagSiteURL != "" {
		cfg.SiteURL = flagSiteURL
	}
	if flagSitemap != "" {
		cfg.SitemapPath = flagSitemap
	}
	if flagHistoryDB != "" {
		cfg.HistoryDB = flagHistoryDB
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
