package services

import (
	"context"
	"sync"
	"time"

	"careerguide/builders"
)

type fakeModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	panics  bool
	delay   time.Duration
	calls   int
	prompts []builders.Prompt
}

func (f *fakeModel) Name() string { return "fake-model" }

func (f *fakeModel) Configured() bool { return true }

func (f *fakeModel) Complete(ctx context.Context, prompt builders.Prompt) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.panics {
		panic("model exploded")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeModel) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const validCareerReply = `{
  "careers": [
    {
      "title": "Data Engineer",
      "matchPercentage": 90,
      "requiredSkills": ["Python", "SQL", "Spark", "Airflow"],
      "skillGaps": ["Kafka", "dbt"],
      "recommendedCourses": ["Data Engineering on GCP", "Streaming Systems"]
    },
    {
      "title": "Backend Developer",
      "matchPercentage": 82,
      "requiredSkills": ["Go", "PostgreSQL", "Docker", "REST", "gRPC"],
      "skillGaps": ["Kubernetes", "Observability", "Caching"],
      "recommendedCourses": ["Distributed Services with Go", "Kubernetes Fundamentals"]
    },
    {
      "title": "Analytics Engineer",
      "matchPercentage": 76,
      "requiredSkills": ["SQL", "dbt", "Looker", "Statistics", "Python", "Git"],
      "skillGaps": ["Data Modeling", "Experimentation"],
      "recommendedCourses": ["Analytics Engineering Bootcamp", "Applied Statistics"]
    }
  ]
}`
