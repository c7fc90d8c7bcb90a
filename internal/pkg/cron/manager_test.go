package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countJob struct{ n int }

func (j *countJob) Run() { j.n++ }

func TestManager_RegisterJobs(t *testing.T) {
	m := NewCronManager()
	m.Add("0 30 3 * * *", &countJob{})
	require.NoError(t, m.RegisterJobs())
	assert.Len(t, m.engine.Entries(), 1)
}

func TestManager_RejectsInvalidSpec(t *testing.T) {
	m := NewCronManager()
	m.Add("not a cron expression", &countJob{})
	assert.Error(t, m.RegisterJobs())
}
