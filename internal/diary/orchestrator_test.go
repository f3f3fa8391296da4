package diary

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeOutput(req Request) *Output {
	return &Output{
		Title:         "Daily Internship Diary - " + req.Date,
		WorkSummary:   "Worked on " + req.Topic + ".",
		HoursWorked:   req.Hours,
		Learnings:     "Learned things.",
		Blockers:      req.Blocker.Value(),
		SkillsUsed:    []string{"Python", "SQL", "Pandas"},
		ReferenceLink: "Add your submission, badge, or profile link here",
	}
}

var echoGenerator = GeneratorFunc(func(_ context.Context, req Request) (*Output, error) {
	return fakeOutput(req), nil
})

func TestGenerateSkillAuthority(t *testing.T) {
	o := NewOrchestrator(echoGenerator)

	in := validInputs()
	in.SkillsUsed = ParseSkills("Python, SQL")

	out, err := o.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, out.SkillsUsed)

	cur, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "SQL"}, cur.SkillsUsed)

	hist := o.History()
	require.Len(t, hist, 1)
	assert.Equal(t, []string{"Python", "SQL"}, hist[0].SkillsUsed)
	assert.Equal(t, in.Date, hist[0].DateCreated)
	assert.NotEmpty(t, hist[0].ID)
}

func TestGenerateSkillsTrimmedInOrder(t *testing.T) {
	o := NewOrchestrator(echoGenerator)

	in := validInputs()
	in.SkillsUsed = []string{" SQL ", "", "Python", "SQL"}

	out, err := o.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "Python", "SQL"}, out.SkillsUsed)
}

func TestHistoryBound(t *testing.T) {
	var n int
	o := NewOrchestrator(echoGenerator, WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}))

	for i := 0; i < 12; i++ {
		_, err := o.Generate(context.Background(), validInputs())
		require.NoError(t, err)
	}

	hist := o.History()
	require.Len(t, hist, DefaultHistoryLimit)
	assert.Equal(t, "id-12", hist[0].ID)
	assert.Equal(t, "id-03", hist[9].ID)

	// evicted entries must not stay reachable through the backing array
	for _, e := range o.history[len(o.history):cap(o.history)] {
		assert.Zero(t, e)
	}
}

func TestWithHistoryLimit(t *testing.T) {
	o := NewOrchestrator(echoGenerator, WithHistoryLimit(2))
	for i := 0; i < 3; i++ {
		_, err := o.Generate(context.Background(), validInputs())
		require.NoError(t, err)
	}
	assert.Len(t, o.History(), 2)
}

func TestFailureIsolation(t *testing.T) {
	cause := errors.New("connection reset")
	fail := false
	o := NewOrchestrator(GeneratorFunc(func(ctx context.Context, req Request) (*Output, error) {
		if fail {
			return nil, cause
		}
		return fakeOutput(req), nil
	}))

	first, err := o.Generate(context.Background(), validInputs())
	require.NoError(t, err)

	fail = true
	out, err := o.Generate(context.Background(), validInputs())
	assert.Nil(t, out)

	var gerr *GenerationError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, GenerationFailedMessage, gerr.Message)
	assert.Equal(t, GenerationFailedMessage, err.Error())
	assert.ErrorIs(t, err, cause)

	cur, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, first, cur)
	assert.Len(t, o.History(), 1)
	assert.Equal(t, StateIdle, o.State())
}

func TestGenerateRejectsIncompleteOutput(t *testing.T) {
	o := NewOrchestrator(GeneratorFunc(func(ctx context.Context, req Request) (*Output, error) {
		out := fakeOutput(req)
		out.Learnings = " "
		return out, nil
	}))

	_, err := o.Generate(context.Background(), validInputs())
	var gerr *GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Err.Error(), "learnings")
	assert.Empty(t, o.History())

	o = NewOrchestrator(GeneratorFunc(func(context.Context, Request) (*Output, error) {
		return nil, nil
	}))
	_, err = o.Generate(context.Background(), validInputs())
	assert.ErrorAs(t, err, &gerr)
}

func TestGenerateValidationError(t *testing.T) {
	var calls atomic.Int32
	o := NewOrchestrator(GeneratorFunc(func(ctx context.Context, req Request) (*Output, error) {
		calls.Add(1)
		return fakeOutput(req), nil
	}))

	in := validInputs()
	in.Topic = "ab"

	_, err := o.Generate(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "topic", verr.Field)
	assert.Zero(t, calls.Load())
}

func TestGenerateBusy(t *testing.T) {
	release := make(chan struct{})
	o := NewOrchestrator(GeneratorFunc(func(ctx context.Context, req Request) (*Output, error) {
		<-release
		return fakeOutput(req), nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := o.Generate(context.Background(), validInputs())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return o.State() == StateGenerating
	}, time.Second, time.Millisecond)

	_, err := o.Generate(context.Background(), validInputs())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateIdle, o.State())
	assert.Len(t, o.History(), 1)
}

func TestLoadFromHistory(t *testing.T) {
	o := NewOrchestrator(echoGenerator)

	in := validInputs()
	_, err := o.Generate(context.Background(), in)
	require.NoError(t, err)
	in.Topic = "Second day of work"
	_, err = o.Generate(context.Background(), in)
	require.NoError(t, err)

	hist := o.History()
	older := hist[1]

	got := o.LoadFromHistory(older)
	assert.Equal(t, older.Output, got)
	assert.Equal(t, got, o.LoadFromHistory(older))
	assert.Len(t, o.History(), 2)

	cur, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, older.Output, *cur)
}

func TestHistoryIsACopy(t *testing.T) {
	o := NewOrchestrator(echoGenerator)
	_, err := o.Generate(context.Background(), validInputs())
	require.NoError(t, err)

	hist := o.History()
	hist[0].SkillsUsed[0] = "Changed"
	hist[0].Title = "Changed"

	again := o.History()
	assert.Equal(t, "MongoDB", again[0].SkillsUsed[0])
	assert.NotEqual(t, "Changed", again[0].Title)
}

func TestReset(t *testing.T) {
	o := NewOrchestrator(echoGenerator)
	_, ok := o.Current()
	assert.False(t, ok)

	_, err := o.Generate(context.Background(), validInputs())
	require.NoError(t, err)
	o.Reset()

	_, ok = o.Current()
	assert.False(t, ok)
	assert.Len(t, o.History(), 1)
}
