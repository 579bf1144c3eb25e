// Package config loads solver, logging and metrics settings for paretopath
// programs.
//
// Load layers Default(), an optional YAML file and PARETO_* environment
// variables through koanf, then checks the result with validator struct tags:
//
//	cfg, err := config.Load("paretopath.yaml")
//	if err != nil { ... }
//	opts, _ := cfg.SolverOptions()
//	logger, closer, _ := config.NewLogger(cfg.Log)
//	defer closer.Close()
//	sink, _ := cfg.Metrics.Sink(nil, nil)
//	if sink != nil {
//		opts = append(opts, pareto.WithMetrics(sink))
//	}
//	res, err := pareto.SolveGraph(ctx, g, "S", "T", append(opts, pareto.WithLogger(logger))...)
package config
