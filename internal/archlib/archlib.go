// Package archlib bundles the reference architecture descriptions as
// embedded `.lime` source, so callers can synthesize against Ambit,
// IMPLY, PLiM, or FELIX without shipping a separate source file
// alongside the binary.
package archlib

import (
	"embed"
	"fmt"
	"sort"

	"lime/internal/arch"
	"lime/internal/archdsl"
)

//go:embed sources/*.lime
var sources embed.FS

// cache holds every bundled architecture, built once at package init
// time — the bundled sources are fixed at compile time and trusted,
// so a load failure here is a packaging bug, not a runtime condition
// callers need to handle.
var cache = map[string]*arch.Architecture{}

func init() {
	entries, err := sources.ReadDir("sources")
	if err != nil {
		panic(fmt.Sprintf("archlib: reading embedded sources: %v", err))
	}
	for _, entry := range entries {
		name := entry.Name()
		key := name[:len(name)-len(".lime")]
		content, err := sources.ReadFile("sources/" + name)
		if err != nil {
			panic(fmt.Sprintf("archlib: reading %s: %v", name, err))
		}
		result, err := archdsl.LoadString(name, string(content))
		if err != nil {
			panic(fmt.Sprintf("archlib: bundled source %s failed validation: %v\n%v", name, err, result.Diagnostics))
		}
		a := result.Architecture
		a.Name = key
		cache[key] = a
	}
}

// Names lists every bundled architecture name, sorted.
func Names() []string {
	names := make([]string, 0, len(cache))
	for name := range cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the bundled architecture registered under name
// ("ambit", "imply", "plim", "felix"), or an error if no such
// architecture is bundled.
func Load(name string) (*arch.Architecture, error) {
	a, ok := cache[name]
	if !ok {
		return nil, fmt.Errorf("archlib: no bundled architecture named %q (have: %v)", name, Names())
	}
	return a, nil
}
