package fontindex

// Option configures font scanning and extraction.
// Use functional options to customize Catalog and Extract behavior.
//
// Example:
//
//	// Default system discovery and parser
//	cat := fontindex.NewCatalog()
//
//	// Custom discovery source (dependency injection)
//	cat := fontindex.NewCatalog(fontindex.WithLister(myLister))
type Option func(*config)

// config holds optional configuration shared by Catalog and Extract.
type config struct {
	parserName string
	lister     Lister
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		parserName: defaultParserName, // Default parser (sfnt)
		lister:     nil,               // Will be set to SystemLister if nil
	}
}

// WithParser specifies the font parser backend.
// The default is "sfnt" which uses seehuhn.de/go/sfnt.
//
// Custom parsers can be registered with RegisterParser.
// This allows using alternative font parsing libraries.
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// WithLister sets a custom font path discovery source for a Catalog.
// Use this for dependency injection of a non-system font source,
// e.g. a fixed directory tree in tests.
func WithLister(l Lister) Option {
	return func(c *config) {
		c.lister = l
	}
}
