package coefficients

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed data
var embedded embed.FS

type registryEntry struct {
	once     sync.Once
	provider *Provider
	err      error
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*registryEntry)
)

// Load returns the provider for an embedded country, parsing its tables on
// first use. Subsequent calls for the same country return the same Provider.
func Load(country string) (*Provider, error) {
	key := strings.ToLower(strings.TrimSpace(country))

	registryMu.Lock()
	entry, ok := registry[key]
	if !ok {
		entry = &registryEntry{}
		registry[key] = entry
	}
	registryMu.Unlock()

	entry.once.Do(func() {
		dir := path.Join("data", key)
		if key == "" || strings.Contains(key, "/") {
			entry.err = &LookupError{Country: country, Table: "country", Key: country}
			return
		}
		if info, err := fs.Stat(embedded, dir); err != nil || !info.IsDir() {
			entry.err = &LookupError{Country: country, Table: "country", Key: country}
			return
		}
		sub, err := fs.Sub(embedded, dir)
		if err != nil {
			entry.err = err
			return
		}
		entry.provider, entry.err = LoadFS(sub, key)
	})
	return entry.provider, entry.err
}

// Countries lists the embedded countries in sorted order.
func Countries() []string {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil
	}
	return sortedCountries(entries)
}
