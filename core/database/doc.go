// Package database opens the GORM connection backing the configuration store
// and inspects table columns for the integrity check.
//
// MySQL is the production driver. SQLite serves single-node setups and tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "connection_catalogs")
package database
