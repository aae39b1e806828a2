// Package env snapshots prefixed environment variables into a setting.MapLookup.
//
// Variables starting with a prefix are read once at construction time. The
// prefix always ends with "_", which is added when missing. Names are mapped to
// setting keys by dropping the prefix, lower-casing, and reading a single
// underscore as a key separator and a double underscore as a literal one.
// Values are never rewritten, so "0042" stays "0042":
//
//	GRAPH_DBMS_PAGECACHE_MEMORY=2g        -> dbms.pagecache.memory=2g
//	GRAPH_DBMS_MYGROUP_1_NAME=Bob Dylan   -> dbms.mygroup.1.name=Bob Dylan
//	GRAPH_DBMS_READ__ONLY=true            -> dbms.read_only=true
//
// Usage:
//
//	fromEnv, err := env.NewLookup("GRAPH")()
//	lookup := setting.Layered(fromEnv, fromFile)
package env
