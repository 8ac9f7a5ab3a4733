package task

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/josephlewis42/dirscript/core/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, files map[string]string) (*Runner, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, contents := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(contents), 0644))
	}

	out := &bytes.Buffer{}
	return NewRunner(fs, out), out
}

type recordedEvent struct {
	task  string
	event logger.Event
}

type eventList []recordedEvent

func (e *eventList) Record(task string, event logger.Event) error {
	*e = append(*e, recordedEvent{task, event})
	return nil
}

func TestRunner_Transcript(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task1.txt": strings.Join([]string{
			"# Setup",
			"CREATE USER alice",
			"CREATE USER bob   # second user",
			"ADD USER alice TO GROUP admins",
			"ADD USER bob TO GROUP admins",
			`SEND MESSAGE alice "Hello Alice"`,
			"PING bob 2",
			"GET USERS",
			"GET GROUPS",
			"GET MESSAGE HISTORY alice",
			"DELETE USER bob",
			"GET GROUPS",
			"EXIT",
			"CREATE USER carol",
		}, "\n"),
		"task2.txt": "CREATE USER alice\nINVALID xyz\nCREATE USER bob\n",
		"task3.txt": "CREATE USER alice\nDELETE USER ghost\nGET USERS\n",
	})

	results := runner.RunAll([]string{"task1.txt", "task2.txt", "task3.txt"})

	require.Len(t, results, 3)
	assert.Equal(t, Completed, results[0].State)
	assert.Equal(t, Aborted, results[1].State)
	assert.Equal(t, Aborted, results[2].State)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "transcript", out.Bytes())
}

func TestRunner_FailFast(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task.txt": "CREATE USER a\nINVALID xyz\nCREATE USER b\n",
	})

	res := runner.Run("task.txt")

	assert.Equal(t, Aborted, res.State)
	assert.Equal(t, 1, res.Executed)
	assert.Contains(t, out.String(), "✅ CREATE USER a\n")
	assert.Contains(t, out.String(), "❌ Invalid command: INVALID xyz\n")
	assert.NotContains(t, out.String(), "CREATE USER b")
	assert.False(t, runner.Store.UserExists("b"))

	var syntaxErr *SyntaxError
	require.True(t, errors.As(res.Err, &syntaxErr))
	assert.Equal(t, 2, syntaxErr.Line)
	assert.Equal(t, "INVALID xyz", syntaxErr.Text)
	assert.NotEmpty(t, syntaxErr.Reason)
}

func TestRunner_TrailingInputIsInvalid(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task.txt": "GET USERS now\n",
	})

	res := runner.Run("task.txt")

	assert.Equal(t, Aborted, res.State)
	assert.Equal(t, 0, res.Executed)
	assert.Contains(t, out.String(), "❌ Invalid command: GET USERS now\n")

	var syntaxErr *SyntaxError
	require.True(t, errors.As(res.Err, &syntaxErr))
	assert.Equal(t, "Unexpected input after command", syntaxErr.Reason)
	assert.Equal(t, 9, syntaxErr.Offset)
}

func TestRunner_ExitShortCircuits(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task.txt": "CREATE USER a\nEXIT\nDELETE USER a\n",
	})

	res := runner.Run("task.txt")

	assert.Equal(t, Completed, res.State)
	assert.NoError(t, res.Err)
	assert.Equal(t, 2, res.Executed)
	assert.NotContains(t, out.String(), "DELETE USER")
	assert.True(t, strings.HasSuffix(out.String(), "✅ EXIT\n[Task task.txt completed successfully]\n\n"))
	assert.True(t, runner.Store.UserExists("a"))
}

func TestRunner_CommandFailureAborts(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task.txt": "DELETE USER ghost\nCREATE USER a\n",
	})

	res := runner.Run("task.txt")

	assert.Equal(t, Aborted, res.State)
	assert.Contains(t, out.String(), "❌ DELETE USER ghost (Failed: User does not exist)\n")
	assert.NotContains(t, out.String(), "CREATE USER a")

	var cmdErr *CommandError
	require.True(t, errors.As(res.Err, &cmdErr))
	assert.Equal(t, 1, cmdErr.Line)
	assert.False(t, cmdErr.Outcome.Succeeded)
}

func TestRunner_Isolation(t *testing.T) {
	runner, _ := newTestRunner(t, map[string]string{
		"a.txt": "CREATE USER alice\nADD USER alice TO GROUP g\n",
		"b.txt": "CREATE USER alice\nGET GROUPS\n",
	})

	results := runner.RunAll([]string{"a.txt", "b.txt"})

	for _, res := range results {
		assert.Equal(t, Completed, res.State, res.Task)
	}
	assert.Empty(t, runner.Store.ListGroups())
}

func TestRunner_Errored(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"good.txt": "CREATE USER alice\n",
	})

	results := runner.RunAll([]string{"missing.txt", "good.txt"})

	require.Len(t, results, 2)
	assert.Equal(t, Errored, results[0].State)
	var loadErr *LoadError
	assert.True(t, errors.As(results[0].Err, &loadErr))
	assert.Contains(t, out.String(), "[Processing task: missing.txt]\n❌ Error processing task missing.txt: cannot open file missing.txt")
	assert.Contains(t, out.String(), "[Task missing.txt stopped due to failure]\n\n")

	assert.Equal(t, Completed, results[1].State)
	assert.Equal(t, Completed, runner.State())
}

func TestRunner_CommentsAndBlankLines(t *testing.T) {
	runner, out := newTestRunner(t, map[string]string{
		"task.txt": "# only comments\n\n   \n# and blanks\n",
	})

	res := runner.Run("task.txt")

	assert.Equal(t, Completed, res.State)
	assert.Equal(t, 0, res.Executed)
	assert.Equal(t, "[Processing task: task.txt]\n[Task task.txt completed successfully]\n\n", out.String())
}

func TestRunner_Ping(t *testing.T) {
	cases := map[string]struct {
		script       string
		wantSent     int
		wantReceived int
	}{
		"zero":         {"CREATE USER x\nPING x 0\n", 0, 0},
		"missing user": {"PING x 3\n", 3, 0},
		"existing":     {"CREATE USER x\nPING x 2\n", 2, 2},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			runner, out := newTestRunner(t, map[string]string{"task.txt": tc.script})

			res := runner.Run("task.txt")

			assert.Equal(t, Completed, res.State)
			assert.Equal(t, tc.wantSent, strings.Count(out.String(), "Sent ping to x"))
			assert.Equal(t, tc.wantReceived, strings.Count(out.String(), "x received a ping"))
		})
	}
}

func TestRunner_Events(t *testing.T) {
	runner, _ := newTestRunner(t, map[string]string{
		"task.txt": "CREATE USER a\nNOPE\n",
	})
	events := &eventList{}
	runner.Events = events

	runner.RunAll([]string{"task.txt", "missing.txt"})

	require.Len(t, *events, 6)
	assert.Equal(t, recordedEvent{"task.txt", &logger.TaskStarted{}}, (*events)[0])
	assert.Equal(t, recordedEvent{"task.txt", &logger.CommandRun{
		Line:      1,
		Text:      "CREATE USER a",
		Kind:      "CREATE USER",
		Succeeded: true,
	}}, (*events)[1])
	invalid, ok := (*events)[2].event.(*logger.InvalidCommand)
	require.True(t, ok)
	assert.Equal(t, 2, invalid.Line)
	assert.Equal(t, "NOPE", invalid.Text)
	assert.Equal(t, recordedEvent{"task.txt", &logger.TaskFinished{State: "aborted", Executed: 1}}, (*events)[3])
	assert.Equal(t, recordedEvent{"missing.txt", &logger.TaskStarted{}}, (*events)[4])
	_, ok = (*events)[5].event.(*logger.TaskError)
	assert.True(t, ok)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "errored", Errored.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, Aborted.Failed())
	assert.False(t, Completed.Failed())
	assert.True(t, Completed.Terminal())
	assert.False(t, Running.Terminal())
}
