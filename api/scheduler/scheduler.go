package scheduler

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/storage"
)

// defaultSchedule backs up the store daily at 3 AM UTC.
const defaultSchedule = "0 3 * * *"

// Scheduler handles the periodic snapshot backups of the data store. The
// store itself persists on every mutation; the backups guard against a
// corrupted or fat-fingered data directory.
type Scheduler struct {
	cron     *cron.Cron
	store    *storage.Store
	schedule string
}

// New creates a new scheduler instance; an empty schedule falls back to the
// daily default.
func New(store *storage.Store, schedule string) *Scheduler {
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		store:    store,
		schedule: schedule,
	}
}

// Start begins the scheduler with the backup job registered
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(s.schedule, s.backupStore)
	if err != nil {
		zap.S().Errorw("failed to register backup job", "error", err)
		return
	}

	s.cron.Start()
	zap.S().Infow("Backup scheduler started", "schedule", s.schedule)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Backup scheduler stopped")
}

// backupStore copies every persisted key into a timestamped directory under
// the store's backups folder. Keys that have never been written are skipped.
func (s *Scheduler) backupStore() {
	stamp := time.Now().UTC().Format("20060102T150405")
	dir := filepath.Join(s.store.Dir(), "backups", stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.S().Errorw("failed to create backup directory", "error", err)
		return
	}

	for _, key := range []string{storage.OrdersKey, storage.ClientsKey, storage.UsernameKey} {
		if err := copyFile(s.store.Path(key), filepath.Join(dir, key+".json")); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			zap.S().Errorw("failed to back up key", "key", key, "error", err)
		}
	}
	zap.S().Infow("Store backup written", "dir", dir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
