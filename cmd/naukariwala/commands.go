package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/config"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/search"
	"naukariwala-site/internal/ui"
)

func jobsAction(ctx context.Context, cmd *cli.Command) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cat, err := catalog.LoadFile(env.Cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	st := search.State{Category: cmd.String("category"), Query: cmd.String("query")}.Normalize()
	jobs := search.Apply(cat.Jobs(), st)

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jobs)
	}
	return ui.PrintJobs(os.Stdout, jobs, cat.Len(), st.Category, st.Query)
}

func privacyAction(ctx context.Context, cmd *cli.Command) error {
	ui.PrintBlocks(os.Stdout, content.PrivacyBlocks())
	return nil
}

func configInitAction(ctx context.Context, cmd *cli.Command) error {
	_, cfgPath, err := resolvePaths(cmd)
	if err != nil {
		return err
	}
	fmt.Println(cfgPath)
	return nil
}

func configValidateAction(ctx context.Context, cmd *cli.Command) error {
	_, cfgPath, err := resolvePaths(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", cfgPath, err)
	}
	config.OverlayEnv(&cfg)

	_, vr := config.NormalizeAndValidate(cfg)
	ui.PrintValidation(os.Stdout, cfgPath, vr)
	if !vr.OK() {
		return cli.Exit("", 1)
	}
	return nil
}
