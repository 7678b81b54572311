package cron

import (
	"testing"

	"warehouse.GO/core/registry"
)

func TestRegisterAndJobs(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	defer Unregister("testjob")

	ran := false
	Register("testjob", "@every 1m", func(args ...string) { ran = true })

	jobs := Jobs()
	job, ok := jobs["testjob"]
	if !ok {
		t.Fatal("registered job not returned by Jobs()")
	}
	if job.Schedule != "@every 1m" {
		t.Errorf("schedule = %q, want @every 1m", job.Schedule)
	}
	job.Run()
	if !ran {
		t.Error("job function did not run")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	defer Unregister("dupjob")

	Register("dupjob", "@hourly", func(args ...string) {})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dupjob", "@hourly", func(args ...string) {})
}

func TestRegisterAfterLockPanics(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	Jobs() // locks the registry
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)

	defer func() {
		if recover() == nil {
			t.Error("Register after lock did not panic")
		}
	}()
	Register("latejob", "@hourly", func(args ...string) {})
}
