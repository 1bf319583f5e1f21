package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) WhoAmI(context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func (f *fakeExec) Profile(context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}

func (f *fakeExec) Dashboard(context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}

func (f *fakeExec) Properties(context.Context) error {
	f.calls = append(f.calls, "properties")
	return nil
}

func (f *fakeExec) Property(_ context.Context, args []string) error {
	f.calls = append(f.calls, "property")
	f.args = args
	return nil
}

func (f *fakeExec) AddProperty(context.Context) error {
	f.calls = append(f.calls, "addproperty")
	return nil
}

func (f *fakeExec) Listings(context.Context) error {
	f.calls = append(f.calls, "listings")
	return nil
}

func (f *fakeExec) Payments(context.Context) error {
	f.calls = append(f.calls, "payments")
	return nil
}

func (f *fakeExec) AddPayment(context.Context) error {
	f.calls = append(f.calls, "addpayment")
	return nil
}

func (f *fakeExec) Users(context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}

func (f *fakeExec) DeleteUser(_ context.Context, args []string) error {
	f.calls = append(f.calls, "deluser")
	f.args = args
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig, origPrint := printlnFn, printFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() {
		printlnFn = orig
		printFn = origPrint
	})
	return &lines
}

func runScript(t *testing.T, exec *fakeExec, commands ...string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(commands, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	silencePrintln(t)
	exec := &fakeExec{}

	runScript(t, exec,
		"help",
		"login",
		"whoami",
		"profile",
		"dashboard",
		"properties",
		"property 7",
		"addproperty",
		"payments",
		"addpayment",
		"nonsense",
		"logout",
		"exit",
	)

	assert.Equal(t,
		[]string{"login", "whoami", "profile", "dashboard", "properties", "property",
			"addproperty", "payments", "addpayment", "logout"},
		exec.calls)
	assert.Equal(t, []string{"7"}, exec.args)
}

func TestRunREPL_PromptStaysOnInputLine(t *testing.T) {
	silencePrintln(t)
	var prompts []string
	printFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				prompts = append(prompts, s)
			}
		}
		return 0, nil
	}

	runScript(t, &fakeExec{}, "exit")

	require.NotEmpty(t, prompts)
	assert.Equal(t, "proaim status > ", prompts[0])
}

func TestRunREPL_ExitsOnQuit(t *testing.T) {
	silencePrintln(t)
	exec := &fakeExec{}

	runScript(t, exec, "quit", "login")

	assert.Empty(t, exec.calls, "commands after quit must not run")
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	silencePrintln(t)
	exec := &fakeExec{}

	runScript(t, exec, "", "   ", "users", "exit")

	assert.Equal(t, []string{"users"}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	lines := silencePrintln(t)
	exec := &fakeExec{}

	runScript(t, exec, "frobnicate", "exit")

	assert.Contains(t, *lines, "Unknown command:")
}

func TestRunREPL_HelpVariesWithLoginState(t *testing.T) {
	lines := silencePrintln(t)
	exec := &fakeExec{}

	runScript(t, exec, "help", "login", "help", "exit")

	var sawSignedOut, sawSignedIn bool
	for _, l := range *lines {
		if strings.Contains(l, "register, login") {
			sawSignedOut = true
		}
		if strings.Contains(l, "deluser") {
			sawSignedIn = true
		}
	}
	assert.True(t, sawSignedOut)
	assert.True(t, sawSignedIn)
}
