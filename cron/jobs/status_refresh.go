package jobs

import (
	"log"
	"time"

	"warehouse.GO/config"
	"warehouse.GO/cron"
	receptionRepo "warehouse.GO/model/repository/reception"
	receptionService "warehouse.GO/service/reception"
)

func init() {
	cron.Register("statusrefresh", "0 * * * *", StatusRefreshJob)
}

// StatusRefreshJob is the explicit refresh path for status snapshots: the
// stored status is a snapshot taken at creation time and drifts as the clock
// advances; this job rewrites every snapshot that no longer matches the
// freshly computed status.
func StatusRefreshJob(args ...string) {
	st, err := config.NewStore()
	if err != nil {
		log.Printf("statusrefresh: store: %v", err)
		return
	}
	repo := receptionRepo.NewRepository(st)
	updated, err := RefreshStatuses(repo, time.Now())
	if err != nil {
		log.Printf("statusrefresh: %v", err)
		return
	}
	log.Printf("statusrefresh: %d snapshot(s) updated", updated)
}

// RefreshStatuses recomputes the status of every record at the given instant
// and persists the ones that changed. Returns the number of updated records.
func RefreshStatuses(repo *receptionRepo.Repository, now time.Time) (int, error) {
	updated := 0
	for _, rec := range repo.List() {
		current := receptionService.DisplayStatus(rec, now)
		if current == rec.Status {
			continue
		}
		status := current
		if _, err := repo.Update(rec.ID, receptionRepo.UpdateInput{Status: &status}); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
