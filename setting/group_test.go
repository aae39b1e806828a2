package setting_test

import (
	"regexp"
	"testing"

	"github.com/0xalexb/hjarta-settings/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_SettingGroups(t *testing.T) {
	t.Parallel()

	theGroup := setting.NewGroup("dbms.mygroup")
	name := setting.New("name", setting.String, setting.Mandatory())
	instrument := setting.New("instrument", setting.String, setting.Mandatory())

	lookup := setting.MapLookup{
		"dbms.mygroup.1000.name":       "Bob Dylan",
		"dbms.mygroup.1000.instrument": "Harmonica",
	}

	groups, err := theGroup.Apply(lookup)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "1000", group.Index())

	value, err := name.Apply(group)
	require.NoError(t, err)
	assert.Equal(t, "Bob Dylan", value)

	value, err = instrument.Apply(group)
	require.NoError(t, err)
	assert.Equal(t, "Harmonica", value)
}

func TestGroup_OrderedByNumericIndex(t *testing.T) {
	t.Parallel()

	lookup := setting.MapLookup{
		"ha.server.10.host": "c",
		"ha.server.9.host":  "b",
		"ha.server.1.host":  "a",
		"ha.server.100.id":  "d",
		"ha.server.x.host":  "ignored",
		"ha.server.2":       "ignored",
		"ha.serverx.3.host": "ignored",
		"other.5.host":      "ignored",
	}

	groups, err := setting.NewGroup("ha.server").Apply(lookup)
	require.NoError(t, err)

	indices := make([]string, 0, len(groups))
	for _, group := range groups {
		indices = append(indices, group.Index())
	}

	assert.Equal(t, []string{"1", "9", "10", "100"}, indices)
}

func TestGroup_NoMatches(t *testing.T) {
	t.Parallel()

	group := setting.NewGroup("dbms.mygroup")

	groups, err := group.Apply(setting.MapLookup{"dbms.other.1.name": "x"})
	require.NoError(t, err)
	assert.Empty(t, groups)

	groups, err = group.Apply(nil)
	require.NoError(t, err)
	assert.Empty(t, groups)

	require.NoError(t, group.Validate(setting.MapLookup{}))
	assert.Equal(t, "dbms.mygroup", group.Name())
}

func TestGroup_MandatoryFailsOnGet(t *testing.T) {
	t.Parallel()

	lookup := setting.MapLookup{"dbms.mygroup.1.name": "Joan Baez"}
	instrument := setting.New("instrument", setting.String, setting.Mandatory())

	groups, err := setting.NewGroup("dbms.mygroup").Apply(lookup)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	_, err = instrument.Apply(groups[0])
	require.ErrorIs(t, err, setting.ErrMandatory)
}

func TestGroup_DefaultsAndInheritanceInsideGroup(t *testing.T) {
	t.Parallel()

	port := setting.New("port", setting.Int, setting.Literal("5001"), setting.Range(1, 65535))
	adminPort := setting.New("admin_port", setting.Int, setting.Inherit(port))

	lookup := setting.MapLookup{
		"cluster.0.port": "6000",
		"cluster.1.name": "second",
		"port":           "1",
	}

	groups, err := setting.NewGroup("cluster").Apply(lookup)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	value, err := adminPort.Apply(groups[0])
	require.NoError(t, err)
	assert.Equal(t, 6000, value)

	value, err = adminPort.Apply(groups[1])
	require.NoError(t, err)
	assert.Equal(t, 5001, value)
}

func TestGroup_Nested(t *testing.T) {
	t.Parallel()

	lookup := setting.MapLookup{
		"dbms.band.1.name":          "The Band",
		"dbms.band.1.member.2.name": "Levon Helm",
		"dbms.band.1.member.1.name": "Robbie Robertson",
		"dbms.band.2.member.1.name": "Someone Else",
	}

	bands, err := setting.NewGroup("dbms.band").Apply(lookup)
	require.NoError(t, err)
	require.Len(t, bands, 2)

	members, err := setting.NewGroup("member").Apply(bands[0])
	require.NoError(t, err)
	require.Len(t, members, 2)

	name := setting.New("name", setting.String, setting.Mandatory())

	first, err := name.Apply(members[0])
	require.NoError(t, err)
	assert.Equal(t, "Robbie Robertson", first)

	second, err := name.Apply(members[1])
	require.NoError(t, err)
	assert.Equal(t, "Levon Helm", second)
}

func TestConfigGroup_Find(t *testing.T) {
	t.Parallel()

	lookup := setting.MapLookup{
		"g.1.a": "1",
		"g.1.b": "2",
		"g.2.a": "3",
	}

	groups, err := setting.NewGroup("g").Apply(lookup)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	found := groups[0].Find(regexp.MustCompile(`.*`))
	assert.Equal(t, []setting.KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, found)

	assert.Empty(t, groups[1].Find(regexp.MustCompile(`^b$`)))
}
