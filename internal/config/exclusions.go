// Package config loads the exclusion configuration consumed by the tree builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// DefaultExclusionsFileName is the configuration file expected next to the program binary.
	DefaultExclusionsFileName = "exclusions.json"
	// exclusionsFileType pins the parser regardless of the file extension.
	exclusionsFileType = "json"
	// exclusionsWarningFormat announces a missing or unparseable configuration resource.
	exclusionsWarningFormat = "⚠️ Warning: '%s' not found or has an invalid format."
)

// exclusionsDocument mirrors the JSON structure of the exclusions resource.
type exclusionsDocument struct {
	ExcludeDirs  []string `mapstructure:"exclude_dirs"`
	ExcludeFiles []string `mapstructure:"exclude_files"`
}

// ExclusionConfig holds the directory and file names omitted from a scan.
// Names are matched case-sensitively by exact equality against bare entry
// names, never against paths or patterns. The value is immutable once
// constructed.
type ExclusionConfig struct {
	excludedDirectoryNames map[string]struct{}
	excludedFileNames      map[string]struct{}
}

// NewExclusionConfig builds an ExclusionConfig from raw name lists, collapsing duplicates.
func NewExclusionConfig(directoryNames []string, fileNames []string) ExclusionConfig {
	return ExclusionConfig{
		excludedDirectoryNames: toNameSet(directoryNames),
		excludedFileNames:      toNameSet(fileNames),
	}
}

// ExcludesDirectory reports whether a directory with the given bare name is excluded.
func (exclusionConfig ExclusionConfig) ExcludesDirectory(directoryName string) bool {
	_, excluded := exclusionConfig.excludedDirectoryNames[directoryName]
	return excluded
}

// ExcludesFile reports whether a file with the given bare name is excluded.
func (exclusionConfig ExclusionConfig) ExcludesFile(fileName string) bool {
	_, excluded := exclusionConfig.excludedFileNames[fileName]
	return excluded
}

// LoadExclusions reads the exclusions resource at exclusionsFilePath.
// A missing, unreadable, or malformed resource never fails the process: the
// loader emits a single warning through warningLogger and returns a
// configuration with both sets empty. Keys absent from an otherwise valid
// document default to empty sets.
func LoadExclusions(exclusionsFilePath string, warningLogger *zap.Logger) ExclusionConfig {
	if warningLogger == nil {
		warningLogger = zap.NewNop()
	}
	viperInstance := viper.New()
	viperInstance.SetConfigFile(exclusionsFilePath)
	viperInstance.SetConfigType(exclusionsFileType)
	if readError := viperInstance.ReadInConfig(); readError != nil {
		warningLogger.Warn(fmt.Sprintf(exclusionsWarningFormat, exclusionsFilePath))
		return NewExclusionConfig(nil, nil)
	}
	var document exclusionsDocument
	if unmarshalError := viperInstance.Unmarshal(&document); unmarshalError != nil {
		warningLogger.Warn(fmt.Sprintf(exclusionsWarningFormat, exclusionsFilePath))
		return NewExclusionConfig(nil, nil)
	}
	return NewExclusionConfig(document.ExcludeDirs, document.ExcludeFiles)
}

// DefaultExclusionsPath resolves the expected exclusions resource location:
// DefaultExclusionsFileName in the directory holding the program binary, or
// relative to the working directory when the binary path cannot be resolved.
func DefaultExclusionsPath() string {
	executablePath, executablePathError := os.Executable()
	if executablePathError != nil {
		return DefaultExclusionsFileName
	}
	return filepath.Join(filepath.Dir(executablePath), DefaultExclusionsFileName)
}

func toNameSet(names []string) map[string]struct{} {
	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}
	return nameSet
}
