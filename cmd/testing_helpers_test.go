package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudposse/apkwrap/pkg/apktool"
	"github.com/cloudposse/apkwrap/pkg/schema"
)

// flagSnapshot stores the state of a flag for restoration.
type flagSnapshot struct {
	value   string
	changed bool
}

// cmdStateSnapshot stores the flag state of every command in the tree, keyed by command path.
type cmdStateSnapshot struct {
	flags map[string]map[string]flagSnapshot
}

// walkCommands calls fn for RootCmd and all of its descendants.
func walkCommands(fn func(*cobra.Command)) {
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		fn(c)
		for _, child := range c.Commands() {
			walk(child)
		}
	}
	walk(RootCmd)
}

// snapshotRootCmdState captures every flag value in the command tree so tests
// can restore it without maintaining a hardcoded list of flags.
func snapshotRootCmdState() *cmdStateSnapshot {
	snapshot := &cmdStateSnapshot{flags: make(map[string]map[string]flagSnapshot)}

	walkCommands(func(c *cobra.Command) {
		flags := make(map[string]flagSnapshot)
		visit := func(f *pflag.Flag) {
			flags[f.Name] = flagSnapshot{value: f.Value.String(), changed: f.Changed}
		}
		c.Flags().VisitAll(visit)
		c.PersistentFlags().VisitAll(visit)
		snapshot.flags[c.CommandPath()] = flags
	})

	return snapshot
}

// restoreRootCmdState restores the command tree to a previously captured state.
func restoreRootCmdState(snapshot *cmdStateSnapshot) {
	RootCmd.SetArgs([]string{})
	RootCmd.SetOut(nil)
	RootCmd.SetErr(nil)

	walkCommands(func(c *cobra.Command) {
		flags, ok := snapshot.flags[c.CommandPath()]
		if !ok {
			return
		}
		restore := func(f *pflag.Flag) {
			if snap, ok := flags[f.Name]; ok {
				_ = f.Value.Set(snap.value)
				f.Changed = snap.changed
			}
		}
		c.Flags().VisitAll(restore)
		c.PersistentFlags().VisitAll(restore)
	})
}

// isolateConfig points every config search location at empty temp dirs.
func isolateConfig(t testing.TB) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	for _, key := range []string{
		"APKWRAP_CLI_CONFIG_PATH", "APKWRAP_TOOL_PATH", "APKWRAP_JAVA", "APKWRAP_FRAMEWORK_PATH",
		"APKWRAP_TIMEOUT", "APKWRAP_LOGS_LEVEL", "APKWRAP_LOGS_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

// cliHarness runs RootCmd against a mocked runner and a temporary apktool.jar.
type cliHarness struct {
	t      testing.TB
	runner *apktool.MockRunner
	jar    string
	stdout bytes.Buffer
	stderr bytes.Buffer
	config schema.Configuration
}

func newCLIHarness(t testing.TB) *cliHarness {
	t.Helper()
	_ = NewTestKit(t)
	isolateConfig(t)

	jarDir := t.TempDir()
	jar := filepath.Join(jarDir, apktool.ToolFilename)
	require.NoError(t, os.WriteFile(jar, []byte("jar"), 0o644))

	h := &cliHarness{
		t:      t,
		runner: apktool.NewMockRunner(gomock.NewController(t)),
		jar:    jar,
	}

	original := newClient
	newClient = func(c schema.Configuration, opts ...apktool.Option) *apktool.Client {
		h.config = c
		base := []apktool.Option{apktool.WithLocator(apktool.NewLocator(c.ToolPath, jarDir))}
		opts = append(base, opts...)
		opts = append(opts, apktool.WithRunner(h.runner))
		return apktool.NewFromConfig(c, opts...)
	}
	t.Cleanup(func() {
		newClient = original
		Cleanup()
	})

	return h
}

// run executes apkwrap with args and returns the error from the command.
func (h *cliHarness) run(args ...string) error {
	h.t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()
	RootCmd.SetOut(&h.stdout)
	RootCmd.SetErr(&h.stderr)
	if !lo.Contains(args, "--logs-file") {
		args = append(args, "--logs-file", "/dev/null")
	}
	RootCmd.SetArgs(args)
	return Execute(context.Background())
}

// expect registers a runner call for the given apktool tokens.
func (h *cliHarness) expect(tokens []string, opts apktool.RunOptions, res *apktool.Result, err error) *gomock.Call {
	args := append([]string{"-jar", h.jar}, tokens...)
	return h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), args, opts).Return(res, err)
}

// streamed is the RunOptions a streaming command passes to the runner.
func (h *cliHarness) streamed() apktool.RunOptions {
	return apktool.RunOptions{Stdout: &h.stdout, Stderr: &h.stderr}
}

func (h *cliHarness) captured() apktool.RunOptions {
	return apktool.RunOptions{Capture: true, Stdout: &h.stdout, Stderr: &h.stderr}
}
