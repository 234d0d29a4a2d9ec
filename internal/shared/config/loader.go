package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

func load[T any](configPath string, onChange func(T)) (T, error) {
	var out T

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return out, fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := v.Unmarshal(&out, decodeHook()); err != nil {
		return out, fmt.Errorf("viper unmarshal config data: %w", err)
	}

	if onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			var next T
			if err := v.Unmarshal(&next, decodeHook()); err != nil {
				// 变更后的文件解析失败时保留旧配置
				log.Printf("配置文件变更但解析失败, file=%s err=%v", e.Name, err)
				return
			}
			onChange(next)
		})
		v.WatchConfig()
	}
	return out, nil
}

// decodeHook 让配置里可以直接写 "200ms"、"a,b" 这样的值。
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
