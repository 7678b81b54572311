package config

// CronJob pairs a cron schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs is the static job table. Code-registered jobs (cron.Register from
// init() in job packages) are merged in by the scheduler.
var CronJobs = map[string]CronJob{
	// Add static jobs here
}
