package main

import (
	"os"
	"time"

	"github.com/marisvali/tetris1/world"
)

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	world.Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err != nil {
		return false
	}
	world.Check(file.Close())
	return true
}

// FolderWatcher tells when the files in a folder were modified, so that data
// can be reloaded while the game runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	world.Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		world.Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
