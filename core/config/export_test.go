package config

import "sync"

// Reset clears the type cache and the dotenv state between tests.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
	dotenvOnce = sync.Once{}
	dotenvErr = nil
}

// SetDotenvFiles replaces the dotenv file list until the test ends.
func SetDotenvFiles(t interface{ Cleanup(func()) }, files ...string) {
	prev := dotenvFiles
	dotenvFiles = files
	t.Cleanup(func() { dotenvFiles = prev })
}
