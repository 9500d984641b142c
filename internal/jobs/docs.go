// Package jobs provides scheduled background tasks for the accounts service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RegisteredUsersGaugeJob - Runs every 30 seconds and publishes the number
// of registered users as the accounts_registered_users gauge
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, registry, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the gauge keeps its previous value.
package jobs
