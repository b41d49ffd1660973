package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/keydoor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const worldTwoTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="20" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Level">
  <object id="1" x="0" y="0" width="1" height="1">
   <properties>
    <property name="name" value="Custom Two"/>
    <property name="world" type="int" value="2"/>
    <property name="groundY" type="float" value="600"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="2" x="0" y="600" width="600" height="20"/>
 </objectgroup>
 <objectgroup id="3" name="Key">
  <object id="3" x="200" y="500" width="40" height="40"/>
 </objectgroup>
 <objectgroup id="4" name="Door">
  <object id="4" x="500" y="525" width="55" height="75"/>
 </objectgroup>
</map>
`

func TestEmbeddedYardLoads(t *testing.T) {
	l := NewLevelLoader(config.C.GroundY())

	extras := l.Extras()
	require.Len(t, extras, 1)
	yard := extras[0]
	assert.Equal(t, "Practice Yard", yard.Name)
	assert.Equal(t, config.C.GroundY(), yard.Platforms[0].Y)
	assert.True(t, yard.Caps.MovingPlatforms)
	assert.True(t, yard.Caps.FallingPlatforms)
	assert.Len(t, yard.SpawnPoints, 2)
}

func TestWorldPrefersNumberedTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/two.tmx": &fstest.MapFile{Data: []byte(worldTwoTMX)}}
	l := newLevelLoader(fsys, 620)

	def, err := l.World(2)
	require.NoError(t, err)
	assert.Equal(t, "Custom Two", def.Name)

	def, err = l.World(1)
	require.NoError(t, err)
	assert.Equal(t, 1, def.World, "unauthored worlds fall back to built-ins")
	assert.Empty(t, l.Extras())
}

func TestMissingLevelsFallBack(t *testing.T) {
	l := newLevelLoader(fstest.MapFS{}, 620)

	def, err := l.World(3)
	require.NoError(t, err)
	assert.Equal(t, 3, def.World)

	_, err = l.World(9)
	assert.Error(t, err)
}
