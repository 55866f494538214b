package apktool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// Subcommands and flags understood by apktool.
const (
	CommandDecode             = "decode"
	CommandBuild              = "build"
	CommandInstallFramework   = "install-framework"
	CommandListFrameworks     = "list-frameworks"
	CommandEmptyFrameworkDir  = "empty-framework-dir"
	CommandPublicizeResources = "publicize-resources"

	FlagVersion = "--version"
	FlagQuiet   = "--quiet"
	FlagVerbose = "--verbose"
)

// argList accumulates tokens. Builders call it in a fixed order, so the
// same options always yield the same slice.
type argList struct {
	args []string
}

// flag appends name when on is true.
func (a *argList) flag(name string, on bool) {
	if on {
		a.args = append(a.args, name)
	}
}

// value appends name and v when v is set.
func (a *argList) value(name, v string) {
	if v != "" {
		a.args = append(a.args, name, v)
	}
}

// intValue appends name and the decimal form of *v when v is set.
func (a *argList) intValue(name string, v *int) {
	if v != nil {
		a.args = append(a.args, name, strconv.Itoa(*v))
	}
}

// command appends the universal flags, the subcommand and its positional arguments.
func (a *argList) command(g GlobalOptions, name string, positional ...string) {
	a.flag(FlagQuiet, g.Quiet)
	a.flag(FlagVerbose, g.Verbose)
	a.args = append(a.args, name)
	a.args = append(a.args, positional...)
}

// DecodeArgs returns the apktool arguments that decode the apk at path.
func DecodeArgs(path string, opts DecodeOptions) ([]string, error) {
	if err := requirePath("path", path); err != nil {
		return nil, err
	}
	if err := validateValues(map[string]string{
		"output":     opts.Output,
		"frame-path": opts.FrameworkPath,
		"frame-tag":  opts.FrameworkTag,
	}); err != nil {
		return nil, err
	}
	if err := validateAPILevel(opts.APILevel); err != nil {
		return nil, err
	}
	if !opts.ResourceMode.Valid() {
		return nil, invalidOption("resource-mode",
			"must be one of remove, dummy, keep, got %q", string(opts.ResourceMode))
	}

	var a argList
	a.command(opts.GlobalOptions, CommandDecode, path)
	a.value("--output", opts.Output)
	a.flag("--force", opts.Force)
	a.flag("--no-debug-info", opts.NoDebugInfo)
	a.flag("--no-res", opts.NoResources)
	a.flag("--no-src", opts.NoSources)
	a.flag("--keep-broken-res", opts.KeepBrokenResources)
	a.flag("--no-assets", opts.NoAssets)
	a.flag("--only-main-classes", opts.OnlyMainClasses)
	a.value("--frame-path", opts.FrameworkPath)
	a.value("--frame-tag", opts.FrameworkTag)
	a.intValue("--api-level", opts.APILevel)
	a.flag("--force-manifest", opts.ForceManifest)
	a.flag("--match-original", opts.MatchOriginal)
	// TODO: append the selected mode once the --resource-mode value syntax is
	// confirmed against apktool; only the flag name is forwarded today.
	a.flag("--resource-mode", opts.ResourceMode != "")

	return a.args, nil
}

// BuildArgs returns the apktool arguments that rebuild the decoded directory at path.
func BuildArgs(path string, opts BuildOptions) ([]string, error) {
	if err := requirePath("path", path); err != nil {
		return nil, err
	}
	if err := validateValues(map[string]string{
		"output":     opts.Output,
		"frame-path": opts.FrameworkPath,
		"aapt":       opts.AAPTPath,
	}); err != nil {
		return nil, err
	}
	if err := validateAPILevel(opts.APILevel); err != nil {
		return nil, err
	}

	var a argList
	a.command(opts.GlobalOptions, CommandBuild, path)
	a.value("--output", opts.Output)
	a.intValue("--api-level", opts.APILevel)
	a.flag("--debug", opts.Debug)
	a.flag("--copy-original", opts.CopyOriginal)
	a.flag("--force-all", opts.ForceAll)
	a.flag("--no-crunch", opts.NoCrunch)
	a.value("--frame-path", opts.FrameworkPath)
	a.flag("--net-sec-conf", opts.NetworkSecurityConfig)
	a.value("--aapt", opts.AAPTPath)
	a.flag("--use-aapt1", opts.UseAAPT1)

	return a.args, nil
}

// InstallFrameworkArgs returns the apktool arguments that install the framework apk at path.
func InstallFrameworkArgs(path string, opts InstallFrameworkOptions) ([]string, error) {
	if err := requirePath("path", path); err != nil {
		return nil, err
	}
	if err := validateValues(map[string]string{
		"frame-path": opts.FrameworkPath,
		"tag":        opts.Tag,
	}); err != nil {
		return nil, err
	}

	var a argList
	a.command(opts.GlobalOptions, CommandInstallFramework, path)
	a.value("--frame-path", opts.FrameworkPath)
	a.value("--tag", opts.Tag)

	return a.args, nil
}

// ListFrameworksArgs returns the apktool arguments that list installed frameworks.
func ListFrameworksArgs(opts ListFrameworksOptions) ([]string, error) {
	if err := validateValues(map[string]string{"frame-path": opts.FrameworkPath}); err != nil {
		return nil, err
	}

	var a argList
	a.command(GlobalOptions{}, CommandListFrameworks)
	a.value("--frame-path", opts.FrameworkPath)

	return a.args, nil
}

// EmptyFrameworkDirArgs returns the apktool arguments that empty the framework directory.
func EmptyFrameworkDirArgs(opts EmptyFrameworkDirOptions) ([]string, error) {
	if err := validateValues(map[string]string{"frame-path": opts.FrameworkPath}); err != nil {
		return nil, err
	}

	var a argList
	a.command(opts.GlobalOptions, CommandEmptyFrameworkDir)
	a.flag("--force", opts.Force)
	a.value("--frame-path", opts.FrameworkPath)

	return a.args, nil
}

// PublicizeResourcesArgs returns the apktool arguments that publicize the resources file at path.
func PublicizeResourcesArgs(path string, opts PublicizeResourcesOptions) ([]string, error) {
	if err := requirePath("path", path); err != nil {
		return nil, err
	}

	var a argList
	a.command(opts.GlobalOptions, CommandPublicizeResources, path)

	return a.args, nil
}

// VersionArgs returns the apktool arguments that print its version.
func VersionArgs() []string {
	return []string{FlagVersion}
}

func invalidOption(option, format string, args ...interface{}) error {
	reason := fmt.Sprintf(format, args...)
	return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidOption, "--%s %s", option, reason)).
		WithContext("option", option).
		Err()
}

func requirePath(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidOption, "%s is required", name)).
			WithContext("option", name).
			Err()
	}
	return nil
}

// validateValues rejects whitespace-only values. Empty values mean unset and pass.
func validateValues(values map[string]string) error {
	for _, name := range []string{"output", "frame-path", "frame-tag", "tag", "aapt"} {
		v, ok := values[name]
		if !ok || v == "" {
			continue
		}
		if strings.TrimSpace(v) == "" {
			return invalidOption(name, "must not be blank")
		}
	}
	return nil
}

func validateAPILevel(level *int) error {
	if level != nil && *level < 0 {
		return invalidOption("api-level", "must not be negative, got %d", *level)
	}
	return nil
}
