package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigRelPath = "configs/conf.yml"

// Load 读取配置并解码为 T。
//
// 约定：
//  1. 传入 cfgName（相对/绝对路径）则优先使用；
//  2. 否则从当前目录开始向上查找 `configs/conf.yml`。
//
// onChange 不为 nil 时监听文件变更，每次变更都解码出一份新的 T 交给回调，
// 已经返回给调用方的值不会被修改。
func Load[T any](cfgName string, onChange func(T)) (T, error) {
	var zero T
	path, err := Resolve(cfgName)
	if err != nil {
		return zero, err
	}
	return load(path, onChange)
}

// Resolve 返回 Load 实际会读取的配置文件路径。
func Resolve(cfgName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cfgName != "" {
		path := cfgName
		if !filepath.IsAbs(path) {
			path = filepath.Join(curDir, cfgName)
		}
		if !fileExist(path) {
			return "", fmt.Errorf("config file not exist, configPath=%v", path)
		}
		return path, nil
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from: %s", defaultConfigRelPath, startDir)
		}
		dir = parent
	}
}
