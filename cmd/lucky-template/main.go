package main

import (
	"encoding/json"
	"flag"
	"os"

	luckytemplate "github.com/mdwagner/lucky-template"
	"github.com/mdwagner/lucky-template/config"
	"github.com/mdwagner/lucky-template/internal/util"
	"github.com/mdwagner/lucky-template/manifest"
)

func main() {
	// Parse command line arguments
	var (
		manifestPath string
		configPath   string
		mode         string
		verbose      int
	)
	flag.StringVar(&manifestPath, "manifest", "", "Path to manifest file (YAML or JSON)")
	flag.StringVar(&manifestPath, "m", "", "--manifest (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&mode, "mode", "write",
		"One of write (materialize to the target), validate (fail on first mismatch), check (print true/false), snapshot (print structural fingerprint as JSON)")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	// Initialize logger from the flag so config-load failures are reported;
	// re-initialized below once the config file is merged
	util.InitializeLogger(config.VerboseToLogLvl(verbose))
	logger := util.GetLogger("main")

	target := flag.Arg(0)
	logger.Info().Int("verbose", verbose).Str("manifest", manifestPath).Str("mode", mode).Str("target", target).
		Msg("lucky-template initializing")

	if manifestPath == "" {
		logger.Fatal().Msg("Manifest not specified; pass it with -manifest")
	}
	if target == "" && mode != "snapshot" {
		logger.Fatal().Msg("Target directory not specified; it must be passed as the argument")
	}

	// Register all built-in content generators
	manifest.RegisterBuiltins()

	cfg := config.NewConfig(&config.ConfigOverride{LogLvl: &verbose})
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg.Merge(override)
		// A verbose setting in the config file wins over the flag
		util.InitializeLogger(cfg.LogLvl)
		logger = util.GetLogger("main")
	}

	defs, err := manifest.Load(manifestPath)
	if err != nil {
		logger.Fatal().Err(err).Str("manifest", manifestPath).Msg("Failed to load manifest")
	}
	folder, err := manifest.Build(defs)
	if err != nil {
		logger.Fatal().Err(err).Str("manifest", manifestPath).Msg("Failed to build folder from manifest")
	}

	switch mode {
	case "write":
		if err := luckytemplate.NewWriter(nil, cfg).Write(folder, target); err != nil {
			logger.Fatal().Err(err).Str("target", target).Msg("Write failed")
		}
		logger.Info().Str("target", target).Msg("Folder written")
	case "validate":
		if err := folder.Validate(target); err != nil {
			logger.Fatal().Err(err).Str("target", target).Msg("Validation failed")
		}
		logger.Info().Str("target", target).Msg("Folder valid")
	case "check":
		ok, err := folder.Valid(target)
		if err != nil {
			logger.Fatal().Err(err).Str("target", target).Msg("Check failed")
		}
		if ok {
			os.Stdout.WriteString("true\n")
		} else {
			os.Stdout.WriteString("false\n")
			os.Exit(1)
		}
	case "snapshot":
		snap, err := folder.Snapshot()
		if err != nil {
			logger.Fatal().Err(err).Msg("Snapshot failed")
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			logger.Fatal().Err(err).Msg("Failed to encode snapshot")
		}
	default:
		logger.Fatal().Str("mode", mode).Msg("Unknown mode")
	}
}
