package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// settableKeys maps config keys to functions that apply a raw string value.
// last_update is deliberately absent: it is maintained by the tool itself.
var settableKeys = map[string]func(*Configuration, string) error{
	"target_directory": func(c *Configuration, v string) error {
		c.TargetDirectory = expandHomePath(v)
		return nil
	},
	"driver_path": func(c *Configuration, v string) error {
		c.DriverPath = v
		return nil
	},
	"platform": func(c *Configuration, v string) error {
		c.Platform = v
		return nil
	},
	"download_dir": func(c *Configuration, v string) error {
		c.DownloadDir = expandHomePath(v)
		return nil
	},
	"http_timeout_seconds": func(c *Configuration, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%q is not an integer", v)
		}
		c.HTTPTimeoutSeconds = n
		return nil
	},
	"auto_update": setBool(func(c *Configuration, b bool) { c.AutoUpdate = b }),
	"show_progress": setBool(func(c *Configuration, b bool) {
		c.ShowProgress = b
	}),
	"skip_confirmations": setBool(func(c *Configuration, b bool) {
		c.SkipConfirmations = b
	}),
}

func setBool(apply func(*Configuration, bool)) func(*Configuration, string) error {
	return func(c *Configuration, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%q is not a boolean (use true or false)", v)
		}
		apply(c, b)
		return nil
	}
}

// SettableKeys returns the keys accepted by Set, sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for key := range settableKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set applies a raw string value to the named key and re-validates the
// configuration. The change is not persisted; call Save for that.
func Set(cfg *Configuration, key, value string) error {
	apply, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, SettableKeys())
	}
	if err := apply(cfg, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
