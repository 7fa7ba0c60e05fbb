// Package cities holds the static per-city configuration: macro-zone token
// mappings, feed URL discovery and the file paths each city's pipeline uses.
package cities

import (
	"fmt"
	"os"
	"strings"

	"github.com/Abla25/roomradar/internal/zone"
)

// City is one supported metropolitan area.
type City struct {
	Name        string         `yaml:"name"`
	DisplayName string         `yaml:"displayName"`
	MacroZones  []zone.Mapping `yaml:"macroZones"`
}

// FeedURLs discovers the city's RSS feeds from numbered environment
// variables (RSS_URL_BARCELONA_1, RSS_URL_BARCELONA_2, ...).
func (c *City) FeedURLs() []string {
	var urls []string
	for i := 1; ; i++ {
		url := os.Getenv(fmt.Sprintf("RSS_URL_%s_%d", strings.ToUpper(c.Name), i))
		if url == "" {
			break
		}
		urls = append(urls, url)
	}
	return urls
}

// RejectCachePath is the per-city rejected-URL cache file.
func (c *City) RejectCachePath() string {
	return fmt.Sprintf("rejected_urls_cache_%s.json", c.Name)
}

// ExportPath is the per-city public snapshot file.
func (c *City) ExportPath() string {
	return fmt.Sprintf("public/data_%s.json", c.Name)
}

func (c *City) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("city name is required")
	}
	if len(c.MacroZones) == 0 {
		return fmt.Errorf("city %q has no macro-zones", c.Name)
	}
	for _, m := range c.MacroZones {
		if m.Zone == "" || len(m.Tokens) == 0 {
			return fmt.Errorf("city %q has an incomplete macro-zone mapping", c.Name)
		}
	}
	return nil
}

const defaultCity = "barcelona"

// Get returns the configuration for a city by name.
func Get(name string) (*City, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// Available returns the registered city names in registration order.
func Available() []string {
	return order
}

// Current resolves the city to process from the CITY environment variable,
// falling back to the default when unset or unknown.
func Current() *City {
	if c, ok := Get(os.Getenv("CITY")); ok {
		return c
	}
	c, _ := Get(defaultCity)
	return c
}

var (
	registry = map[string]*City{}
	order    []string
)

func register(c *City) {
	registry[c.Name] = c
	order = append(order, c.Name)
}

func init() {
	register(barcelona)
	register(rome)
}
