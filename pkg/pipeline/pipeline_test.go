package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/makedist/makedist/pkg/config"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/pipe"
	"github.com/sirupsen/logrus"
)

// fakePipe records whether it ran and returns a canned error.
type fakePipe struct {
	name string
	err  error
	ran  *[]string
}

func (p fakePipe) String() string { return p.name }

func (p fakePipe) Run(ctx *context.Context) error {
	*p.ran = append(*p.ran, p.name)
	return p.err
}

func newTestContext() *context.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return context.NewContext(nil, config.Default(), logger)
}

func TestRunPipesSequence(t *testing.T) {
	var ran []string
	pipes := []Piper{
		fakePipe{name: "first", ran: &ran},
		fakePipe{name: "second", ran: &ran},
		fakePipe{name: "third", ran: &ran},
	}

	if err := runPipes(newTestContext(), pipes); err != nil {
		t.Fatalf("runPipes() error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(ran) != len(want) {
		t.Fatalf("ran = %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("ran[%d] = %q, want %q", i, ran[i], want[i])
		}
	}
}

func TestRunPipesSkipContinues(t *testing.T) {
	var ran []string
	pipes := []Piper{
		fakePipe{name: "first", err: pipe.Skip("mode excludes this phase"), ran: &ran},
		fakePipe{name: "second", ran: &ran},
	}

	if err := runPipes(newTestContext(), pipes); err != nil {
		t.Fatalf("runPipes() error: %v", err)
	}
	if len(ran) != 2 {
		t.Errorf("skip should not stop the pipeline, ran = %v", ran)
	}
}

func TestRunPipesErrorStops(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	pipes := []Piper{
		fakePipe{name: "first", err: boom, ran: &ran},
		fakePipe{name: "second", ran: &ran},
	}

	err := runPipes(newTestContext(), pipes)
	if err == nil {
		t.Fatal("runPipes() expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error should wrap the pipe failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "first") {
		t.Errorf("error should name the failing pipe, got %v", err)
	}
	if len(ran) != 1 {
		t.Errorf("pipeline should stop on error, ran = %v", ran)
	}
}
