package config

import (
	"os"
	"sort"
)

// SettingInfo describes one effective setting.
type SettingInfo struct {
	Key        string      `json:"key"`
	Value      interface{} `json:"value"`
	Source     Source      `json:"source"`
	SourcePath string      `json:"source_path,omitempty"`
}

// Settings returns every effective setting sorted by key, with the source
// that supplied it.
func (l *Loaded) Settings() []SettingInfo {
	keys := l.Viper.AllKeys()
	sort.Strings(keys)

	settings := make([]SettingInfo, 0, len(keys))
	for _, key := range keys {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := l.Sources[key]; ok {
			info = si
		}

		envKey := EnvKey(key)
		if _, ok := os.LookupEnv(envKey); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		settings = append(settings, SettingInfo{
			Key:        key,
			Value:      l.Viper.Get(key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
	return settings
}
