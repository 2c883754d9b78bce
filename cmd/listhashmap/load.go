package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gostonefire/listhashmap"
	"github.com/gostonefire/listhashmap/hashfunc"
	"github.com/gostonefire/listhashmap/internal/config"
	"go.uber.org/zap"
)

// hashAlgorithm - Returns the string hash algorithm configured by name, nil (the map default) for maphash
func hashAlgorithm(name string) hashfunc.HashAlgorithm[string] {
	switch name {
	case config.HashCRC32:
		return hashfunc.CRC32[string]{}
	case config.HashXXHash:
		return hashfunc.XXHash[string]{}
	default:
		return nil
	}
}

// loadFile - Reads key=value lines from fileName into a new hash map. Blank lines and lines starting
// with # are skipped, the first value of a duplicated key is kept.
func loadFile(fileName string, hashAlgorithm hashfunc.HashAlgorithm[string], logger *zap.Logger) (h *listhashmap.HashMap[string, string], err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	h = listhashmap.NewWithHashAlgorithm[string, string](hashAlgorithm, listhashmap.WithLogger(logger))

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			err = fmt.Errorf("%s:%d: expected key=value", fileName, lineNo)
			return nil, err
		}
		key = strings.TrimSpace(key)
		if !h.Insert(key, strings.TrimSpace(value)) {
			logger.Debug("ignored duplicate key", zap.String("key", key), zap.Int("line", lineNo))
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}

	return
}
