package apktool

import (
	"github.com/samber/lo"
)

// GlobalOptions are the universal flags accepted before any apktool subcommand.
type GlobalOptions struct {
	// Quiet emits --quiet.
	Quiet bool
	// Verbose emits --verbose.
	Verbose bool
}

// ResourceMode is the closed set of values for decode --resource-mode.
type ResourceMode string

const (
	ResourceModeRemove ResourceMode = "remove"
	ResourceModeDummy  ResourceMode = "dummy"
	ResourceModeKeep   ResourceMode = "keep"
)

// ResourceModes lists every valid ResourceMode.
var ResourceModes = []ResourceMode{ResourceModeRemove, ResourceModeDummy, ResourceModeKeep}

// Valid reports whether m is one of ResourceModes. The empty mode is valid and means unset.
func (m ResourceMode) Valid() bool {
	return m == "" || lo.Contains(ResourceModes, m)
}

// DecodeOptions configures `apktool decode`.
//
// Zero values leave apktool's own defaults in place. Options apktool turns on by
// default (resources, sources, assets) are expressed as No* switches.
type DecodeOptions struct {
	GlobalOptions

	// Output is the directory apktool writes (apktool default: <apk>.out).
	Output string
	// Force deletes the destination directory first.
	Force bool
	// NoDebugInfo stops baksmali from writing .local, .param and .line directives.
	NoDebugInfo bool
	// NoResources skips resource decoding (--no-res).
	NoResources bool
	// NoSources skips dex disassembly (--no-src).
	NoSources bool
	// KeepBrokenResources keeps resources apktool would otherwise drop as invalid.
	KeepBrokenResources bool
	// NoAssets skips copying assets (--no-assets).
	NoAssets bool
	// OnlyMainClasses disassembles only classes[0-9]*.dex in the root.
	OnlyMainClasses bool
	// FrameworkPath uses framework files located in this directory.
	FrameworkPath string
	// FrameworkTag uses framework files tagged with this tag.
	FrameworkTag string
	// APILevel is the numeric API level of the smali files to generate. Nil means unset.
	APILevel *int
	// ForceManifest decodes the manifest even when NoResources is set.
	ForceManifest bool
	// MatchOriginal keeps files as close to the original as possible (prevents rebuild).
	MatchOriginal bool
	// ResourceMode selects how unresolved resources are handled.
	ResourceMode ResourceMode
}

// BuildOptions configures `apktool build`.
type BuildOptions struct {
	GlobalOptions

	// Output is the apk apktool writes (apktool default: dist/<name>.apk).
	Output string
	// APILevel is the numeric API level of the file to generate. Nil means unset.
	APILevel *int
	// Debug sets android:debuggable to true in the manifest.
	Debug bool
	// CopyOriginal copies the original AndroidManifest.xml and META-INF.
	CopyOriginal bool
	// ForceAll skips change detection and builds all files.
	ForceAll bool
	// NoCrunch disables crunching of resource files (--no-crunch).
	NoCrunch bool
	// FrameworkPath uses framework files located in this directory.
	FrameworkPath string
	// NetworkSecurityConfig adds a generic network security configuration file.
	NetworkSecurityConfig bool
	// AAPTPath loads aapt from this location.
	AAPTPath string
	// UseAAPT1 uses aapt instead of aapt2.
	UseAAPT1 bool
}

// InstallFrameworkOptions configures `apktool install-framework`.
type InstallFrameworkOptions struct {
	GlobalOptions

	// FrameworkPath stores the framework files in this directory.
	FrameworkPath string
	// Tag tags the installed framework.
	Tag string
}

// ListFrameworksOptions configures `apktool list-frameworks`.
// The listing is parsed from stdout, so quiet/verbose are not offered.
type ListFrameworksOptions struct {
	FrameworkPath string
}

// EmptyFrameworkDirOptions configures `apktool empty-framework-dir`.
type EmptyFrameworkDirOptions struct {
	GlobalOptions

	// Force empties the directory even if it holds files apktool did not install.
	Force         bool
	FrameworkPath string
}

// PublicizeResourcesOptions configures `apktool publicize-resources`.
type PublicizeResourcesOptions struct {
	GlobalOptions
}

// Int returns a pointer to n, for optional integer options such as APILevel.
func Int(n int) *int {
	return &n
}
