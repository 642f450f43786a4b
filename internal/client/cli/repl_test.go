package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) Home(_ context.Context, a []string) error   { return f.rec("home", a) }
func (f *fakeExec) Signup(_ context.Context, a []string) error { return f.rec("signup", a) }
func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.rec("login", a)
}
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.rec("logout", a)
}
func (f *fakeExec) Whoami(_ context.Context, a []string) error  { return f.rec("whoami", a) }
func (f *fakeExec) Feed(_ context.Context, a []string) error    { return f.rec("feed", a) }
func (f *fakeExec) MyFeed(_ context.Context, a []string) error  { return f.rec("myfeed", a) }
func (f *fakeExec) Post(_ context.Context, a []string) error    { return f.rec("post", a) }
func (f *fakeExec) Comment(_ context.Context, a []string) error { return f.rec("comment", a) }
func (f *fakeExec) Like(_ context.Context, a []string) error {
	_ = f.rec("like", a)
	return errors.New("like failed")
}
func (f *fakeExec) Profile(_ context.Context, a []string) error  { return f.rec("profile", a) }
func (f *fakeExec) Follow(_ context.Context, a []string) error   { return f.rec("follow", a) }
func (f *fakeExec) Unfollow(_ context.Context, a []string) error { return f.rec("unfollow", a) }
func (f *fakeExec) Users(_ context.Context, a []string) error    { return f.rec("users", a) }
func (f *fakeExec) Progress(_ context.Context, a []string) error { return f.rec("progress", a) }
func (f *fakeExec) Settings(_ context.Context, a []string) error { return f.rec("settings", a) }
func (f *fakeExec) Spots(_ context.Context, a []string) error    { return f.rec("spots", a) }
func (f *fakeExec) Clubs(_ context.Context, a []string) error    { return f.rec("clubs", a) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"",
		"help",
		"FEED",
		"like a1",
		"comment a1 nice work",
		"follow u2",
		"settings notifications",
		"spots 40.7 -74 500",
		"foobar",
		"logout",
		"exit",
		"feed",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(input))

	assert.Equal(t, []string{
		"login",
		"feed",
		"like a1",
		"comment a1 nice work",
		"follow u2",
		"settings notifications",
		"spots 40.7 -74 500",
		"logout",
	}, exec.calls)

	joined := strings.Join(*out, "")
	assert.Contains(t, joined, helpAnonymous)
	assert.Contains(t, joined, helpSignedIn)
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "menta (status)> ")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("whoami"))
	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_StopsOnCancel(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("whoami\n"))
	assert.Empty(t, exec.calls)
}

func TestCommands_CoverEveryRoute(t *testing.T) {
	h := commands(&fakeExec{})
	for _, name := range []string{"home", "signup", "login", "feed", "profile", "settings", "post", "spots", "clubs"} {
		assert.Contains(t, h, name)
	}
}
