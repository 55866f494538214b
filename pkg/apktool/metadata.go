package apktool

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// MetadataFilename is the file apktool writes at the root of a decoded directory.
const MetadataFilename = "apktool.yml"

// UsesFramework lists the framework package ids the apk was decoded against.
type UsesFramework struct {
	IDs []int  `yaml:"ids" json:"ids"`
	Tag string `yaml:"tag,omitempty" json:"tag,omitempty"`
}

// SDKInfo values are quoted strings in apktool.yml and may be codenames.
type SDKInfo struct {
	MinSDKVersion    string `yaml:"minSdkVersion,omitempty" json:"minSdkVersion,omitempty"`
	TargetSDKVersion string `yaml:"targetSdkVersion,omitempty" json:"targetSdkVersion,omitempty"`
	MaxSDKVersion    string `yaml:"maxSdkVersion,omitempty" json:"maxSdkVersion,omitempty"`
}

// PackageInfo holds package id and manifest rename overrides.
type PackageInfo struct {
	ForcedPackageID       string `yaml:"forcedPackageId,omitempty" json:"forcedPackageId,omitempty"`
	RenameManifestPackage string `yaml:"renameManifestPackage,omitempty" json:"renameManifestPackage,omitempty"`
}

// VersionInfo is the apk's versionCode and versionName.
type VersionInfo struct {
	VersionCode string `yaml:"versionCode,omitempty" json:"versionCode,omitempty"`
	VersionName string `yaml:"versionName,omitempty" json:"versionName,omitempty"`
}

// Metadata is the content of apktool.yml.
type Metadata struct {
	Version                string            `yaml:"version,omitempty" json:"version,omitempty"`
	APKFileName            string            `yaml:"apkFileName,omitempty" json:"apkFileName,omitempty"`
	IsFrameworkAPK         bool              `yaml:"isFrameworkApk,omitempty" json:"isFrameworkApk,omitempty"`
	UsesFramework          *UsesFramework    `yaml:"usesFramework,omitempty" json:"usesFramework,omitempty"`
	SDKInfo                *SDKInfo          `yaml:"sdkInfo,omitempty" json:"sdkInfo,omitempty"`
	PackageInfo            *PackageInfo      `yaml:"packageInfo,omitempty" json:"packageInfo,omitempty"`
	VersionInfo            *VersionInfo      `yaml:"versionInfo,omitempty" json:"versionInfo,omitempty"`
	ResourcesAreCompressed bool              `yaml:"resourcesAreCompressed,omitempty" json:"resourcesAreCompressed,omitempty"`
	SharedLibrary          bool              `yaml:"sharedLibrary,omitempty" json:"sharedLibrary,omitempty"`
	SparseResources        bool              `yaml:"sparseResources,omitempty" json:"sparseResources,omitempty"`
	UnknownFiles           map[string]string `yaml:"unknownFiles,omitempty" json:"unknownFiles,omitempty"`
	DoNotCompress          []string          `yaml:"doNotCompress,omitempty" json:"doNotCompress,omitempty"`
}

// ReadMetadata loads apktool.yml from a directory produced by Decode.
func ReadMetadata(dir string) (*Metadata, error) {
	path := filepath.Join(dir, MetadataFilename)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errUtils.Build(errUtils.ErrMetadataNotFound).
			WithContext("path", path).
			WithHint("Run `apkwrap decode` first, or point at the decoded output directory").
			Err()
	}
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidMetadata).WithCause(err).WithContext("path", path).Err()
	}
	return ParseMetadata(data)
}

// ParseMetadata decodes apktool.yml content. Older apktool releases start the
// file with a Java class tag line, which is ignored.
func ParseMetadata(data []byte) (*Metadata, error) {
	if bytes.HasPrefix(data, []byte("!!")) {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			data = data[i+1:]
		} else {
			data = nil
		}
	}

	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidMetadata).WithCause(err).Err()
	}
	return &m, nil
}
