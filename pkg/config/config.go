package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"ocrdir/pkg/constants"
	"ocrdir/pkg/types"
	"ocrdir/pkg/utils"
)

// LoggingConfig controls the two log sinks: the append-mode log file and
// the console, each with its own level
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	PrintLevel string `mapstructure:"print_level" yaml:"print_level"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
}

// DockerConfig controls how the ocrmypdf container is invoked
type DockerConfig struct {
	Binary string `mapstructure:"binary" yaml:"binary"`
	Image  string `mapstructure:"image" yaml:"image"`
	UID    int    `mapstructure:"uid" yaml:"uid"`
	GID    int    `mapstructure:"gid" yaml:"gid"`
}

// Config holds application configuration loaded from the YAML file.
// Profile existence is not validated at load time; a profile is looked up
// only when a run references it.
type Config struct {
	InputDir string                    `mapstructure:"input_dir" yaml:"input_dir"`
	Logging  LoggingConfig             `mapstructure:"logging" yaml:"logging"`
	Docker   DockerConfig              `mapstructure:"docker" yaml:"docker"`
	Profiles map[string]*types.Profile `mapstructure:"profiles" yaml:"profiles"`
}

// Load reads the configuration file at path. A path that does not exist
// as given is retried relative to the directory of the running executable
// before failing. Environment variables prefixed OCR_DIR_ override file
// values (e.g. OCR_DIR_LOGGING_LEVEL).
func Load(path string) (*Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(resolved)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("OCR_DIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeConfig,
			fmt.Sprintf("failed to parse configuration file %s", resolved))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeConfig,
			fmt.Sprintf("failed to decode configuration file %s", resolved))
	}

	return &cfg, nil
}

// Profile resolves a named profile, erring if the name is absent from the
// profiles section
func (c *Config) Profile(name string) (*types.Profile, error) {
	profile, ok := c.Profiles[name]
	if !ok || profile == nil {
		return nil, utils.NewNotFoundError(
			fmt.Sprintf("configuration profile '%s' not found", name), nil)
	}
	return profile, nil
}

// ScanRoot returns the directory to scan: input_dir joined to baseDir
// (the program's own directory), unless input_dir is already absolute
func (c *Config) ScanRoot(baseDir string) string {
	if filepath.IsAbs(c.InputDir) {
		return c.InputDir
	}
	return filepath.Join(baseDir, c.InputDir)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.print_level", constants.DefaultPrintLevel)
	v.SetDefault("logging.log_file", constants.DefaultLogFile)
	v.SetDefault("docker.binary", constants.DefaultDockerBinary)
	v.SetDefault("docker.image", constants.DefaultDockerImage)
	v.SetDefault("docker.uid", constants.DefaultContainerUID)
	v.SetDefault("docker.gid", constants.DefaultContainerGID)
}

// resolvePath locates the config file, falling back to the executable's
// directory when the given path does not exist
func resolvePath(path string) (string, error) {
	if fileExists(path) {
		return path, nil
	}

	exe, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(exe), path)
		if fileExists(candidate) {
			return candidate, nil
		}
		path = candidate
	}

	return "", utils.NewConfigError(
		fmt.Sprintf("configuration file '%s' not found", path), os.ErrNotExist)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
