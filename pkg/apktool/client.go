package apktool

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/cockroachdb/errors"

	log "github.com/cloudposse/apkwrap/pkg/logger"
	"github.com/cloudposse/apkwrap/pkg/schema"
)

// DefaultJava is the runtime used when none is configured.
const DefaultJava = "java"

// Client invokes apktool. Its configuration is fixed at construction, so a
// Client is safe for concurrent use.
type Client struct {
	java          string
	locator       *Locator
	runner        Runner
	timeout       time.Duration
	dryRun        bool
	frameworkPath string
	stdout        io.Writer
	stderr        io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithJava sets the java runtime binary.
func WithJava(java string) Option {
	return func(c *Client) {
		if java != "" {
			c.java = java
		}
	}
}

// WithLocator sets how apktool.jar is found.
func WithLocator(l *Locator) Option {
	return func(c *Client) {
		if l != nil {
			c.locator = l
		}
	}
}

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithTimeout bounds every invocation. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithDryRun prints commands to stdout instead of running them.
func WithDryRun(dryRun bool) Option {
	return func(c *Client) {
		c.dryRun = dryRun
	}
}

// WithFrameworkPath sets the framework directory used when an operation does not set one.
func WithFrameworkPath(dir string) Option {
	return func(c *Client) {
		c.frameworkPath = dir
	}
}

// WithStdout sets where streamed stdout goes. Nil means os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *Client) {
		c.stdout = w
	}
}

// WithStderr sets where streamed stderr goes. Nil means os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(c *Client) {
		c.stderr = w
	}
}

// New creates a Client. Without options it runs `java` and looks for
// apktool.jar next to the running executable.
func New(opts ...Option) *Client {
	c := &Client{
		java:   DefaultJava,
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.locator == nil {
		c.locator = NewLocator("", "")
	}
	return c
}

// NewFromConfig creates a Client from the loaded configuration. Later options win.
func NewFromConfig(cfg schema.Configuration, opts ...Option) *Client {
	base := []Option{
		WithJava(cfg.Java),
		WithLocator(NewLocator(cfg.ToolPath, "")),
		WithTimeout(cfg.Timeout),
		WithFrameworkPath(cfg.FrameworkPath),
	}
	return New(append(base, opts...)...)
}

// ToolPath resolves apktool.jar.
func (c *Client) ToolPath() (string, error) {
	return c.locator.ToolPath()
}

// Run executes `<java> -jar <apktool.jar> tokens...`.
func (c *Client) Run(ctx context.Context, tokens []string, opts RunOptions) (*Result, error) {
	jar, err := c.locator.ToolPath()
	if err != nil {
		return nil, err
	}

	args := append([]string{"-jar", jar}, tokens...)
	command := shellescape.QuoteCommand(append([]string{c.java}, args...))

	if c.dryRun {
		log.Debug("Dry run, not executing apktool", "command", command)
		if _, err := fmt.Fprintln(writerOr(c.stdout, os.Stdout), command); err != nil {
			return nil, errors.Wrap(err, "print dry-run command")
		}
		return &Result{Args: args}, nil
	}
	log.Debug("Executing apktool", "command", command)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if opts.Stdout == nil {
		opts.Stdout = c.stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = c.stderr
	}

	start := time.Now()
	res, err := c.runner.Run(ctx, c.java, args, opts)
	if err != nil {
		log.Debug("apktool failed", "command", command, "duration", time.Since(start), "err", err)
		return res, err
	}
	log.Debug("apktool finished", "exit_code", res.ExitCode, "duration", time.Since(start))

	return res, nil
}

// Decode runs `apktool decode` on the apk at path.
func (c *Client) Decode(ctx context.Context, path string, opts DecodeOptions) (*Result, error) {
	if opts.FrameworkPath == "" {
		opts.FrameworkPath = c.frameworkPath
	}
	args, err := DecodeArgs(path, opts)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, args, RunOptions{})
}

// Build runs `apktool build` on the decoded directory at path.
func (c *Client) Build(ctx context.Context, path string, opts BuildOptions) (*Result, error) {
	if opts.FrameworkPath == "" {
		opts.FrameworkPath = c.frameworkPath
	}
	args, err := BuildArgs(path, opts)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, args, RunOptions{})
}

// InstallFramework runs `apktool install-framework` on the framework apk at path.
func (c *Client) InstallFramework(ctx context.Context, path string, opts InstallFrameworkOptions) (*Result, error) {
	if opts.FrameworkPath == "" {
		opts.FrameworkPath = c.frameworkPath
	}
	args, err := InstallFrameworkArgs(path, opts)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, args, RunOptions{})
}

// ListFrameworks runs `apktool list-frameworks` and returns the framework file
// names in the order apktool printed them.
func (c *Client) ListFrameworks(ctx context.Context, opts ListFrameworksOptions) ([]string, error) {
	if opts.FrameworkPath == "" {
		opts.FrameworkPath = c.frameworkPath
	}
	args, err := ListFrameworksArgs(opts)
	if err != nil {
		return nil, err
	}
	res, err := c.Run(ctx, args, RunOptions{Capture: true})
	if err != nil {
		return nil, err
	}
	return ParseFrameworkList(res.Stdout), nil
}

// EmptyFrameworkDir runs `apktool empty-framework-dir`.
func (c *Client) EmptyFrameworkDir(ctx context.Context, opts EmptyFrameworkDirOptions) (*Result, error) {
	if opts.FrameworkPath == "" {
		opts.FrameworkPath = c.frameworkPath
	}
	args, err := EmptyFrameworkDirArgs(opts)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, args, RunOptions{})
}

// PublicizeResources runs `apktool publicize-resources` on the file at path.
func (c *Client) PublicizeResources(ctx context.Context, path string, opts PublicizeResourcesOptions) (*Result, error) {
	args, err := PublicizeResourcesArgs(path, opts)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, args, RunOptions{})
}

// Version returns the apktool version string, e.g. "2.9.3".
func (c *Client) Version(ctx context.Context) (string, error) {
	res, err := c.Run(ctx, VersionArgs(), RunOptions{Capture: true})
	if err != nil {
		return "", err
	}
	return ParseVersionOutput(res.Stdout), nil
}
