package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/viewport/internal/geo"
)

func TestInfo_HasVideo(t *testing.T) {
	assert.False(t, Info{}.HasVideo())
	assert.False(t, Info{Aspect: 16.0 / 9}.HasVideo())
	assert.False(t, Info{DisplaySize: geo.Size{W: 1280, H: 720}}.HasVideo())
	assert.True(t, Info{Aspect: 16.0 / 9, DisplaySize: geo.Size{W: 1280, H: 720}}.HasVideo())
}

func TestMock_Reconfig(t *testing.T) {
	m := NewMock(16.0/9, geo.Size{W: 1280, H: 720}, "50%")

	info, err := m.Info()
	assert.NoError(t, err)
	assert.Equal(t, "50%", info.GeometryDirective)
	assert.True(t, info.HasVideo())

	var got Info
	m.OnReconfig(func(i Info) { got = i })

	next := Info{Aspect: 4.0 / 3, DisplaySize: geo.Size{W: 1440, H: 1080}}
	m.Reconfig(next)
	assert.Equal(t, next, got)

	info, err = m.Info()
	assert.NoError(t, err)
	assert.Equal(t, next, info)
}
