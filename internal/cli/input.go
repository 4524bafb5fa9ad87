package cli

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Input contains the input for the solve and gen commands.
type Input struct {
	configFile      string
	policy          string
	workers         int
	root            int
	hasRoot         bool
	dropDeficient   bool
	strictQuiesce   bool
	shutdownTimeout time.Duration
	verbose         bool
	logFormat       string
	random          int
	seed            int64
	tourOut         string
	crossCheck      bool

	genNodes int
	genName  string
	genOut   string
	genMax   float64
}

// fileConfig is the YAML shape accepted by --config. Pointer fields tell an
// absent key from a zero value.
type fileConfig struct {
	Policy           string `yaml:"policy"`
	Workers          int    `yaml:"workers"`
	Root             *int   `yaml:"root"`
	DropDeficient    *bool  `yaml:"drop_deficient"`
	StrictQuiescence *bool  `yaml:"strict_quiescence"`
	ShutdownTimeout  string `yaml:"shutdown_timeout"`
	Verbose          *bool  `yaml:"verbose"`
	LogFormat        string `yaml:"log_format"`
	Seed             *int64 `yaml:"seed"`
}

func readConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := new(fileConfig)
	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// applyConfig loads i.configFile, if any, and copies every key whose flag
// was not given on the command line.
func (i *Input) applyConfig(flags *pflag.FlagSet) error {
	if flags.Changed("root") {
		i.hasRoot = true
	}
	if i.configFile == "" {
		return nil
	}
	cfg, err := readConfig(i.configFile)
	if err != nil {
		return err
	}
	unset := func(name string) bool {
		f := flags.Lookup(name)
		return f == nil || !f.Changed
	}

	if cfg.Policy != "" && unset("policy") {
		i.policy = cfg.Policy
	}
	if cfg.Workers != 0 && unset("workers") {
		i.workers = cfg.Workers
	}
	if cfg.Root != nil && unset("root") {
		i.root, i.hasRoot = *cfg.Root, true
	}
	if cfg.DropDeficient != nil && unset("drop-deficient") {
		i.dropDeficient = *cfg.DropDeficient
	}
	if cfg.StrictQuiescence != nil && unset("strict-quiescence") {
		i.strictQuiesce = *cfg.StrictQuiescence
	}
	if cfg.ShutdownTimeout != "" && unset("shutdown-timeout") {
		d, err := time.ParseDuration(cfg.ShutdownTimeout)
		if err != nil {
			return errors.Wrap(err, "config: shutdown_timeout")
		}
		i.shutdownTimeout = d
	}
	if cfg.Verbose != nil && unset("verbose") {
		i.verbose = *cfg.Verbose
	}
	if cfg.LogFormat != "" && unset("log-format") {
		i.logFormat = cfg.LogFormat
	}
	if cfg.Seed != nil && unset("seed") {
		i.seed = *cfg.Seed
	}

	return nil
}
