// Package mongo connects to MongoDB and exposes a users collection as a
// directory source.
//
// New connects with retries according to Config. Source reads the distinct
// values of Config.Field from Config.Collection once at startup.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(ctx)
//
//	coll := db.Collection(cfg.Collection)
//	src, err := mongo.NewSource(mongo.FromCollection(coll), cfg.Collection, cfg.Field)
//
// Errors wrap the driver error with a package sentinel via errors.Join, so
// callers can check them with errors.Is.
package mongo
