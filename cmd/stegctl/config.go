package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// profile is the --config file. Every field is a default for the flag of the
// same name; flags given on the command line win.
//
//	mode: hamming
//	key: correct horse
//	permute_key: battery staple
//	seed: 42
//	log:
//	  dir: /var/log/stegctl
//	  level: debug
type profile struct {
	Mode       string `yaml:"mode"`
	Key        string `yaml:"key"`
	PermuteKey string `yaml:"permute_key"`
	Seed       uint64 `yaml:"seed"`
	Log        struct {
		Dir   string `yaml:"dir"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &p, nil
}

// apply sets every flag in fs that the profile names, exists on the running
// command and was not given explicitly.
func (p *profile) apply(fs *pflag.FlagSet) error {
	values := map[string]string{
		"mode":        p.Mode,
		"key":         p.Key,
		"permute-key": p.PermuteKey,
		"log-dir":     p.Log.Dir,
		"log-level":   p.Log.Level,
	}
	if p.Seed != 0 {
		values["seed"] = strconv.FormatUint(p.Seed, 10)
	}
	for name, v := range values {
		f := fs.Lookup(name)
		if v == "" || f == nil || f.Changed {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}
