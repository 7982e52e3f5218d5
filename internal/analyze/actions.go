// Package analyze implements the AI summary CLI verb.
package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/internal/common"
	"github.com/dtnitsch/romaneio/pkg/ai"
	"github.com/dtnitsch/romaneio/pkg/caching"
	"github.com/dtnitsch/romaneio/pkg/filter"
)

// cacheTTL keeps repeat analyses of an unchanged filtered set free.
const cacheTTL = 15 * time.Minute

func AnalyzeAction(c *cli.Context) error {
	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	start, end, err := common.ParseDateRange(c.String("start"), c.String("end"))
	if err != nil {
		return err
	}

	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	client := ai.NewClient(ai.Config{
		BaseURL: config.Gemini.BaseURL,
		Model:   config.Gemini.Model,
		Timeout: time.Duration(config.Gemini.TimeoutSeconds) * time.Second,
	}, logger)

	cache, err := caching.NewCache(filepath.Join(os.TempDir(), "romaneio-analysis"), cacheTTL)
	if err != nil {
		// Cache is an optimization; analysis still works without it.
		logger.Warn("analyze.cache_unavailable", "error", err)
	} else {
		client.SetCache(cache)
	}

	// The summarizer only reads this snapshot; it never blocks or mutates
	// the store.
	manifests := filter.ByDateRange(st.Snapshot(), start, end)

	if !c.Bool("quiet") {
		fmt.Fprintln(os.Stderr, "Analisando dados...")
	}

	fmt.Println(client.Analyze(c.Context, manifests))
	return nil
}
