package batch

import (
	"context"
	"testing"

	"github.com/df07/go-radiosity/pkg/geometry"
	"github.com/df07/go-radiosity/pkg/scene"
)

func solveJob(name string, patchSize float64) Job {
	return Job{
		Name: name,
		Solve: func() ([]*geometry.Patch, error) {
			s := scene.NewScene(scene.NewCornellBox(), patchSize, 1)
			result, err := s.Run()
			if err != nil {
				return nil, err
			}
			return result.Patches, nil
		},
	}
}

func TestRunSolvesAllJobs(t *testing.T) {
	jobs := []Job{
		solveJob("a", 200),
		solveJob("b", 200),
		solveJob("c", 200),
	}

	outcomes := Run(context.Background(), jobs, Config{Concurrency: 2})
	if len(outcomes) != 3 {
		t.Fatalf("len(outcomes) = %d, want 3", len(outcomes))
	}
	for i, o := range outcomes {
		if o.Name != jobs[i].Name {
			t.Errorf("outcomes[%d].Name = %q, want %q", i, o.Name, jobs[i].Name)
		}
		if o.Err != nil {
			t.Errorf("outcomes[%d].Err = %v, want nil", i, o.Err)
		}
		if len(o.Patches) == 0 {
			t.Errorf("outcomes[%d] has no patches", i)
		}
	}
}

func TestRunCollectsErrorsWithoutStopping(t *testing.T) {
	jobs := []Job{
		solveJob("bad", 0), // invalid patch size
		solveJob("good", 200),
	}

	outcomes := Run(context.Background(), jobs, DefaultConfig())
	if outcomes[0].Err == nil {
		t.Error("outcomes[0].Err = nil, want an error for a zero patch size")
	}
	if outcomes[1].Err != nil {
		t.Errorf("outcomes[1].Err = %v, want nil", outcomes[1].Err)
	}
}

func TestRunEmptyJobs(t *testing.T) {
	outcomes := Run(context.Background(), nil, DefaultConfig())
	if len(outcomes) != 0 {
		t.Errorf("len(outcomes) = %d, want 0", len(outcomes))
	}
}
