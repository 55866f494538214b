package apktool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

func TestDecodeArgs(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		opts     DecodeOptions
		expected []string
	}{
		{
			name:     "defaults emit only the command and path",
			path:     "app.apk",
			expected: []string{"decode", "app.apk"},
		},
		{
			name: "output force and no-res keep declared order",
			path: "app.apk",
			opts: DecodeOptions{Output: "out", Force: true, NoResources: true},
			expected: []string{
				"decode", "app.apk", "--output", "out", "--force", "--no-res",
			},
		},
		{
			name:     "global flags precede the command",
			path:     "app.apk",
			opts:     DecodeOptions{GlobalOptions: GlobalOptions{Quiet: true, Verbose: true}},
			expected: []string{"--quiet", "--verbose", "decode", "app.apk"},
		},
		{
			name: "every option",
			path: "in.apk",
			opts: DecodeOptions{
				Output:              "o",
				Force:               true,
				NoDebugInfo:         true,
				NoResources:         true,
				NoSources:           true,
				KeepBrokenResources: true,
				NoAssets:            true,
				OnlyMainClasses:     true,
				FrameworkPath:       "fw",
				FrameworkTag:        "tag",
				APILevel:            Int(28),
				ForceManifest:       true,
				MatchOriginal:       true,
			},
			expected: []string{
				"decode", "in.apk",
				"--output", "o",
				"--force",
				"--no-debug-info",
				"--no-res",
				"--no-src",
				"--keep-broken-res",
				"--no-assets",
				"--only-main-classes",
				"--frame-path", "fw",
				"--frame-tag", "tag",
				"--api-level", "28",
				"--force-manifest",
				"--match-original",
			},
		},
		{
			name:     "api level zero is still set",
			path:     "app.apk",
			opts:     DecodeOptions{APILevel: Int(0)},
			expected: []string{"decode", "app.apk", "--api-level", "0"},
		},
		{
			name:     "path with shell metacharacters stays one token",
			path:     "my app; rm -rf $HOME.apk",
			expected: []string{"decode", "my app; rm -rf $HOME.apk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArgs(tt.path, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeArgs_ResourceModeDropsValue(t *testing.T) {
	for _, mode := range ResourceModes {
		t.Run(string(mode), func(t *testing.T) {
			got, err := DecodeArgs("app.apk", DecodeOptions{ResourceMode: mode})
			require.NoError(t, err)
			assert.Equal(t, []string{"decode", "app.apk", "--resource-mode"}, got)
		})
	}
}

func TestDecodeArgs_Deterministic(t *testing.T) {
	opts := DecodeOptions{Output: "out", NoSources: true, APILevel: Int(30), FrameworkTag: "t"}

	first, err := DecodeArgs("a.apk", opts)
	require.NoError(t, err)
	for range 10 {
		again, err := DecodeArgs("a.apk", opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		opts     BuildOptions
		expected []string
	}{
		{
			name:     "defaults",
			expected: []string{"build", "app"},
		},
		{
			name:     "api level is rendered as decimal text",
			opts:     BuildOptions{APILevel: Int(29)},
			expected: []string{"build", "app", "--api-level", "29"},
		},
		{
			name: "every option",
			opts: BuildOptions{
				GlobalOptions:         GlobalOptions{Verbose: true},
				Output:                "dist/app.apk",
				APILevel:              Int(33),
				Debug:                 true,
				CopyOriginal:          true,
				ForceAll:              true,
				NoCrunch:              true,
				FrameworkPath:         "fw",
				NetworkSecurityConfig: true,
				AAPTPath:              "/opt/aapt2",
				UseAAPT1:              true,
			},
			expected: []string{
				"--verbose", "build", "app",
				"--output", "dist/app.apk",
				"--api-level", "33",
				"--debug",
				"--copy-original",
				"--force-all",
				"--no-crunch",
				"--frame-path", "fw",
				"--net-sec-conf",
				"--aapt", "/opt/aapt2",
				"--use-aapt1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildArgs("app", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFrameworkArgs(t *testing.T) {
	got, err := InstallFrameworkArgs("framework-res.apk", InstallFrameworkOptions{
		GlobalOptions: GlobalOptions{Quiet: true},
		FrameworkPath: "fw",
		Tag:           "htc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"--quiet", "install-framework", "framework-res.apk", "--frame-path", "fw", "--tag", "htc"}, got)

	got, err = ListFrameworksArgs(ListFrameworksOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"list-frameworks"}, got)

	got, err = ListFrameworksArgs(ListFrameworksOptions{FrameworkPath: "fw"})
	require.NoError(t, err)
	assert.Equal(t, []string{"list-frameworks", "--frame-path", "fw"}, got)

	got, err = EmptyFrameworkDirArgs(EmptyFrameworkDirOptions{Force: true, FrameworkPath: "fw"})
	require.NoError(t, err)
	assert.Equal(t, []string{"empty-framework-dir", "--force", "--frame-path", "fw"}, got)

	got, err = EmptyFrameworkDirArgs(EmptyFrameworkDirOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"empty-framework-dir"}, got)
}

func TestPublicizeResourcesAndVersionArgs(t *testing.T) {
	got, err := PublicizeResourcesArgs("resources.arsc", PublicizeResourcesOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"publicize-resources", "resources.arsc"}, got)

	assert.Equal(t, []string{"--version"}, VersionArgs())
}

func TestArgs_InvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		build func() ([]string, error)
	}{
		{"decode without path", func() ([]string, error) { return DecodeArgs("", DecodeOptions{}) }},
		{"decode blank path", func() ([]string, error) { return DecodeArgs("  ", DecodeOptions{}) }},
		{"decode blank output", func() ([]string, error) { return DecodeArgs("a.apk", DecodeOptions{Output: " "}) }},
		{"decode negative api level", func() ([]string, error) { return DecodeArgs("a.apk", DecodeOptions{APILevel: Int(-1)}) }},
		{"decode unknown resource mode", func() ([]string, error) {
			return DecodeArgs("a.apk", DecodeOptions{ResourceMode: "purge"})
		}},
		{"build without path", func() ([]string, error) { return BuildArgs("", BuildOptions{}) }},
		{"build blank aapt", func() ([]string, error) { return BuildArgs("dir", BuildOptions{AAPTPath: "\t"}) }},
		{"build negative api level", func() ([]string, error) { return BuildArgs("dir", BuildOptions{APILevel: Int(-29)}) }},
		{"install without path", func() ([]string, error) { return InstallFrameworkArgs("", InstallFrameworkOptions{}) }},
		{"install blank tag", func() ([]string, error) {
			return InstallFrameworkArgs("f.apk", InstallFrameworkOptions{Tag: " "})
		}},
		{"list blank frame path", func() ([]string, error) {
			return ListFrameworksArgs(ListFrameworksOptions{FrameworkPath: " "})
		}},
		{"empty blank frame path", func() ([]string, error) {
			return EmptyFrameworkDirArgs(EmptyFrameworkDirOptions{FrameworkPath: " "})
		}},
		{"publicize without path", func() ([]string, error) { return PublicizeResourcesArgs("", PublicizeResourcesOptions{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, errUtils.ErrInvalidOption)
		})
	}
}

func TestInvalidOption_Message(t *testing.T) {
	_, err := DecodeArgs("a.apk", DecodeOptions{APILevel: Int(-3)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--api-level must not be negative, got -3")
}
