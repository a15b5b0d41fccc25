// Package pg connects to PostgreSQL with pgx/v5 and exposes a usernames table
// as a directory source.
//
// Connect opens a *pgxpool.Pool with retries. Migrate applies the embedded
// goose migrations that create the usernames table, or a directory of
// migrations given by Config.MigrationsPath. Source reads Config.UsernamesColumn
// from Config.UsernamesTable once at startup.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//
//	src, err := pg.NewSource(pool, cfg.UsernamesTable, cfg.UsernamesColumn)
//
// IsUndefinedTableError classifies the error returned when the table is
// missing, which usually means migrations were not applied.
package pg
