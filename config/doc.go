// Package config loads raw configuration into a setting.Lookup.
//
// The package uses an interface-based design with three extension points:
//   - Parser: decodes raw data into a tree of maps, lists and scalars, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: a declared setting or group validated eagerly once the lookup is built
//
// The decoded tree is flattened into dotted keys, so the YAML document
//
//	dbms:
//	  pagecache:
//	    memory: 2g
//	  mygroup:
//	    - name: Bob Dylan
//
// becomes the entries dbms.pagecache.memory=2g and dbms.mygroup.0.name=Bob Dylan.
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a specific
// section within configuration files. Paths use colon (:) as the separator:
//
//	"services:graph"            -> config["services"]["graph"]
//	""                          -> entire document
//
// # Example
//
//	pageCache := setting.New("dbms.pagecache.memory", setting.ByteSize, setting.Literal("512m"))
//
//	provider := config.Provider("", pageCache)
//	lookup, err := provider(yamlparser.NewParser(), fetcher)
//	memory, err := pageCache.Apply(lookup)
package config
