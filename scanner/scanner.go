package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
)

// skipDirs are directory names that never contain first-party sources
// worth rewriting.
var skipDirs = map[string]bool{
	".git":         true,
	".build":       true,
	"Pods":         true,
	"Carthage":     true,
	"DerivedData":  true,
	"node_modules": true,
}

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the root directory and returns every file with a target
// extension.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var (
		files []FileInfo
		mutex sync.Mutex
		wg    sync.WaitGroup
	)

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isTargetFile(path) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fileInfo := FileInfo{
					Path: path,
					Size: info.Size(),
				}
				mutex.Lock()
				files = append(files, fileInfo)
				mutex.Unlock()
			}()
		}
		return nil
	})

	wg.Wait()
	return files, err
}

// ScanContaining narrows Scan to files whose content mentions needle at
// all. A cheap byte search keeps files that cannot possibly reference the
// flag out of the parse pipeline; unreadable files are skipped.
func (s *Scanner) ScanContaining(needle string) ([]FileInfo, error) {
	all, err := s.Scan()
	if err != nil {
		return nil, err
	}

	var (
		files []FileInfo
		mutex sync.Mutex
		wg    sync.WaitGroup
	)
	want := []byte(needle)

	for _, fi := range all {
		wg.Add(1)
		go func(fi FileInfo) {
			defer wg.Done()
			content, err := os.ReadFile(fi.Path)
			if err != nil || !bytes.Contains(content, want) {
				return
			}
			mutex.Lock()
			files = append(files, fi)
			mutex.Unlock()
		}(fi)
	}

	wg.Wait()
	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
