package database

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder receives database query and pool observations
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

const startTimeKey = "metrics:start_time"

// RegisterMetricsCallbacks hooks query timing into GORM's callback chain for
// all four statement kinds
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	type registerFunc func(name string, fn func(*gorm.DB)) error

	stages := []struct {
		operation      string
		registerBefore registerFunc
		registerAfter  registerFunc
	}{
		{"select", db.Callback().Query().Before("gorm:query").Register, db.Callback().Query().After("gorm:query").Register},
		{"insert", db.Callback().Create().Before("gorm:create").Register, db.Callback().Create().After("gorm:create").Register},
		{"update", db.Callback().Update().Before("gorm:update").Register, db.Callback().Update().After("gorm:update").Register},
		{"delete", db.Callback().Delete().Before("gorm:delete").Register, db.Callback().Delete().After("gorm:delete").Register},
	}

	for _, stage := range stages {
		op := stage.operation
		_ = stage.registerBefore("metrics:"+op+"_before", func(db *gorm.DB) {
			db.InstanceSet(startTimeKey, time.Now())
		})
		_ = stage.registerAfter("metrics:"+op+"_after", func(db *gorm.DB) {
			start, ok := db.InstanceGet(startTimeKey)
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(op, table, time.Since(start.(time.Time)), db.Error)
		})
	}
}

// StartDBStatsCollector copies connection pool stats into the recorder every
// 15 seconds until the returned channel is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
