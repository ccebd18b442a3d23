// Package job contains the cron jobs scheduled by the web server.
package job

import (
	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/util/common"
	"github.com/shivamstore/storefront/web/global"
)

// CheckpointJob flushes the sqlite WAL into the main database file so
// the log does not grow without bound.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")

	// Skip the checkpoint while the server is shutting down; CloseDB
	// runs its own final checkpoint.
	if server := global.GetWebServer(); server != nil {
		select {
		case <-server.GetCtx().Done():
			return
		default:
		}
	}

	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
