package cmd

// JobRunner starts and stops the background jobs of the application.
type JobRunner interface {
	StartAll() error
	StopAll()
}

// RunWithJobs starts the jobs, blocks in serve and stops the jobs once serve
// returns, also when it fails.
func RunWithJobs(jobs JobRunner, serve func() error) error {
	if err := jobs.StartAll(); err != nil {
		return err
	}
	defer jobs.StopAll()

	return serve()
}
