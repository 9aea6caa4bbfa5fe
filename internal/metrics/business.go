package metrics

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementLaunchCompleted increments the launch completion counter
func (m *Metrics) IncrementLaunchCompleted() {
	m.safeExecute("IncrementLaunchCompleted", func() {
		m.LaunchCompletedTotal.Inc()
	})
}

// IncrementMediaUploaded increments the media upload counter
func (m *Metrics) IncrementMediaUploaded() {
	m.safeExecute("IncrementMediaUploaded", func() {
		m.MediaUploadedTotal.Inc()
	})
}

// IncrementProjectArchived increments the project archive counter
func (m *Metrics) IncrementProjectArchived() {
	m.safeExecute("IncrementProjectArchived", func() {
		m.ProjectArchivedTotal.Inc()
	})
}

// SetProjectsActive sets the active projects gauge
func (m *Metrics) SetProjectsActive(count int64) {
	m.safeExecute("SetProjectsActive", func() {
		m.ProjectsActive.Set(float64(count))
	})
}

// SetProjectsLaunched sets the launched projects gauge
func (m *Metrics) SetProjectsLaunched(count int64) {
	m.safeExecute("SetProjectsLaunched", func() {
		m.ProjectsLaunched.Set(float64(count))
	})
}

// SetTasksPending sets the pending tasks gauge
func (m *Metrics) SetTasksPending(count int64) {
	m.safeExecute("SetTasksPending", func() {
		m.TasksPending.Set(float64(count))
	})
}

// SetMediaTotal sets the stored media gauge
func (m *Metrics) SetMediaTotal(count int64) {
	m.safeExecute("SetMediaTotal", func() {
		m.MediaTotal.Set(float64(count))
	})
}
