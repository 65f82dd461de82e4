package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bandits/internal/combat"
	"bandits/internal/config"
	"bandits/internal/logging"
	"bandits/internal/util"
)

func main() {
	var cfgPath, out, mode, logLevel, schemaOut string
	var workers int
	var events bool
	var genSeed int64
	flag.StringVar(&cfgPath, "config", "", "config file (.yaml or .toml)")
	flag.StringVar(&out, "out", "out.json", "report file (single map) or report dir (batch)")
	flag.StringVar(&mode, "mode", "", "fight or power")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flag.IntVar(&workers, "workers", 0, "maps simulated in parallel")
	flag.BoolVar(&events, "events", false, "keep the full event log in reports")
	flag.StringVar(&schemaOut, "schema", "", "write the report JSON schema to this file and exit")
	flag.Int64Var(&genSeed, "gen", 0, "print a random map drawn with this seed and exit")
	flag.Parse()

	if genSeed != 0 {
		fmt.Print(util.RandomMap(util.New(genSeed), util.DefaultMapSpec()))
		return
	}

	if schemaOut != "" {
		if err := os.WriteFile(schemaOut, append(combat.MarshalPretty(combat.ReportSchema()), '\n'), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("Report schema -> %s\n", schemaOut)
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	if mode != "" {
		cfg.Run.Mode = mode
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if workers > 0 {
		cfg.Run.Workers = workers
	}
	if events {
		cfg.Run.RecordEvents = true
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	maps := flag.Args()
	if len(maps) == 0 {
		fmt.Fprintln(os.Stderr, "usage: combatsim [flags] map.txt [more maps...]")
		os.Exit(2)
	}

	if len(maps) == 1 {
		rep := runMap(maps[0], cfg, log)
		if err := os.WriteFile(out, combat.MarshalPretty(rep), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s after %d rounds, elf power %d, score %d -> %s\n",
			rep.Map, rep.Status, rep.Rounds, rep.ElfPower, rep.Score, out)
		if rep.Error != "" {
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		panic(err)
	}
	reports := make([]combat.Report, len(maps))
	wg := sync.WaitGroup{}
	jobs := make(chan int, len(maps))
	for w := 0; w < max(cfg.Run.Workers, 1); w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				reports[i] = runMap(maps[i], cfg, log.With(zap.Int("worker", workerID)))
			}
		}(w)
	}
	for i := range maps {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, rep := range reports {
		name := strings.TrimSuffix(filepath.Base(rep.Map), filepath.Ext(rep.Map)) + ".json"
		if err := os.WriteFile(filepath.Join(out, name), combat.MarshalPretty(rep), 0644); err != nil {
			panic(err)
		}
		if rep.Error != "" {
			failed++
			fmt.Printf("%-24s error: %s\n", rep.Map, rep.Error)
			continue
		}
		fmt.Printf("%-24s %-12s rounds=%-4d power=%-3d score=%d\n",
			rep.Map, rep.Status, rep.Rounds, rep.ElfPower, rep.Score)
	}
	fmt.Printf("Batch %d done, %d failed -> %s\n", len(maps), failed, out)
	if failed > 0 {
		os.Exit(1)
	}
}

// runMap parses and simulates one map file. Failures end up in the report.
func runMap(path string, cfg *config.SimConfig, log *zap.Logger) combat.Report {
	log = log.With(zap.String("map", path))
	fail := func(err error) combat.Report {
		log.Error("simulation failed", zap.Error(err))
		return combat.Report{Map: path, Mode: cfg.Run.Mode, Status: combat.Ongoing.String(), Winner: "none", Error: err.Error()}
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	b, err := combat.ParseMapWithRules(string(text), cfg.CombatRules())
	if err != nil {
		return fail(err)
	}
	b.SetLogger(log)
	rec := &combat.Recorder{}
	if cfg.Run.RecordEvents {
		b.SetEmitter(rec.Emit)
	}
	log.Info("simulation started",
		zap.String("mode", cfg.Run.Mode),
		zap.Int("elves", b.Count(combat.Elf)),
		zap.Int("goblins", b.Count(combat.Goblin)))

	start := time.Now()
	var rep combat.Report
	switch cfg.Run.Mode {
	case combat.ModePower:
		res, err := combat.MinimumElfPower(b)
		if err != nil {
			return fail(err)
		}
		rep = combat.NewReport(path, cfg.Run.Mode, res.Final, res.Outcome, time.Since(start))
		rep.Attempts = res.Attempts
		b = res.Final
	default:
		st, err := b.Fight()
		if err != nil {
			return fail(err)
		}
		rep = combat.NewReport(path, cfg.Run.Mode, b, st, time.Since(start))
	}
	if cfg.Run.RenderBoard {
		rep.Board = b.RenderWithHitPoints()
	}
	if cfg.Run.RecordEvents {
		rep.Events = rec.Events
	}
	log.Info("simulation finished",
		zap.String("status", rep.Status),
		zap.Int("rounds", rep.Rounds),
		zap.Int("score", rep.Score))
	return rep
}
