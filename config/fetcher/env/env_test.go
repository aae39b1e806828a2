package env

import (
	"testing"

	"github.com/0xalexb/hjarta-settings/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{name: "DBMS_PAGECACHE_MEMORY", expected: "dbms.pagecache.memory"},
		{name: "DBMS_MYGROUP_1000_NAME", expected: "dbms.mygroup.1000.name"},
		{name: "DBMS_READ__ONLY", expected: "dbms.read_only"},
		{name: "LOG", expected: "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Key(tt.name))
		})
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	lookup, err := snapshot("GRAPH_", []string{
		"GRAPH_DBMS_MYGROUP_1000_NAME=Bob Dylan",
		"GRAPH_DBMS_MYGROUP_1000_INSTRUMENT=Harmonica",
		`GRAPH_DBMS_SECURITY_PASSWORD=se"cret $pass`,
		"GRAPH_DBMS_PORT=7474",
		"GRAPH_DBMS_SECURITY_PIN=0042",
		"GRAPH_DBMS_OFFSET=+5",
		"GRAPH_DBMS_TX-LOG_ROTATION=10M",
		"GRAPH_=ignored",
		"OTHER_DBMS_PORT=1",
		"malformed",
	})
	require.NoError(t, err)

	assert.Equal(t, setting.MapLookup{
		"dbms.mygroup.1000.name":       "Bob Dylan",
		"dbms.mygroup.1000.instrument": "Harmonica",
		"dbms.security.password":       `se"cret $pass`,
		"dbms.port":                    "7474",
		"dbms.security.pin":            "0042",
		"dbms.offset":                  "+5",
		"dbms.tx-log.rotation":         "10M",
	}, lookup)

	pin, err := setting.New("dbms.security.pin", setting.String, setting.NoDefault()).Apply(lookup)
	require.NoError(t, err)
	assert.Equal(t, "0042", pin)
}

func TestSnapshot_PrefixWithoutSeparator(t *testing.T) {
	t.Parallel()

	lookup, err := snapshot("GRAPH", []string{
		"GRAPH_DBMS_PORT=7474",
		"GRAPHITE_PORT=2003",
	})
	require.NoError(t, err)

	assert.Equal(t, setting.MapLookup{"dbms.port": "7474"}, lookup)
}

func TestSnapshot_EmptyPrefix(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"", "_"} {
		_, err := snapshot(prefix, nil)

		require.ErrorIs(t, err, ErrEmptyPrefix)
	}
}

func TestNewLookup_ReadsEnvironment(t *testing.T) {
	t.Setenv("HJARTA_TEST_DBMS_PAGECACHE_MEMORY", "2g")

	lookup, err := NewLookup("HJARTA_TEST")()
	require.NoError(t, err)

	value, ok := lookup.Get("dbms.pagecache.memory")
	assert.True(t, ok)
	assert.Equal(t, "2g", value)
}
