package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/litigation-cli/internal/config"
	"github.com/sells-group/litigation-cli/internal/loader"
	"github.com/sells-group/litigation-cli/internal/model"
)

func loaderOptions(c *config.Config) loader.Options {
	return loader.Options{
		Sheet:     c.Data.Sheet,
		Delimiter: c.Data.DelimiterRune(),
	}
}

// loadTable validates the CLI config and reads the case table.
func loadTable(ctx context.Context) (*model.Table, error) {
	if err := cfg.Validate("cli"); err != nil {
		return nil, err
	}
	t, err := loader.Load(ctx, cfg.Data.Path, loaderOptions(cfg))
	if err != nil {
		return nil, eris.Wrap(err, "load case table")
	}
	return t, nil
}
