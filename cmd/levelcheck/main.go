// Command levelcheck loads every TMX level in a directory, builds its
// collision index and reports geometry the index would not hold.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/punkpark/config"
	"github.com/automoto/punkpark/shared/leveldata"
	"github.com/automoto/punkpark/shared/quadtree"
	"go.uber.org/zap"
)

func main() {
	root := flag.String("assets", "assets", "directory containing the levels directory")
	dir := flag.String("dir", "levels", "levels directory inside -assets")
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	bad, err := check(logger, os.DirFS(*root), *dir)
	if err != nil {
		logger.Error("level check failed", zap.Error(err))
		os.Exit(1)
	}
	if bad > 0 {
		logger.Error("levels have unindexed geometry", zap.Int("levels", bad))
		os.Exit(1)
	}
}

// check returns the number of levels with rejected rects.
func check(logger *zap.Logger, fsys fs.FS, dir string) (int, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("load all levels: %w", err)
	}

	bad := 0
	for _, name := range names {
		data := levels[name]
		tree, rejected := leveldata.BuildIndex(data,
			quadtree.WithLimit(config.Index.Limit),
			quadtree.WithMaxDepth(config.Index.MaxDepth),
		)
		stats := tree.Stats()

		log := logger.With(zap.String("level", name))
		for _, r := range rejected {
			log.Warn("rect rejected", zap.Stringer("rect", r))
		}
		log.Info("level checked",
			zap.Int("width", data.MapWidth),
			zap.Int("height", data.MapHeight),
			zap.Int("rects", stats.Rects),
			zap.Int("rejected", len(rejected)),
			zap.Int("leaves", stats.Leaves),
			zap.Int("depth", stats.MaxDepth),
			zap.Int("spawns", len(data.SpawnPoints)),
			zap.Int("enemies", len(data.EnemySpawns)),
		)
		if len(rejected) > 0 {
			bad++
		}
	}
	return bad, nil
}
