package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.False(t, o.Precise)
	assert.Equal(t, DefaultResolution, o.Resolution)
	assert.NotNil(t, o.Source)
	assert.NotNil(t, o.Logger)
}

func TestOptionsFromEnv_Empty(t *testing.T) {
	o := OptionsFromEnv()
	assert.False(t, o.Precise)
	assert.Zero(t, o.Resolution)
	assert.Nil(t, o.Source)
}

func TestOptionsFromEnv_Overrides(t *testing.T) {
	t.Setenv(envPrecise, "true")
	t.Setenv(envResolution, "25")

	o := OptionsFromEnv()
	assert.True(t, o.Precise)
	assert.Equal(t, 25*time.Millisecond, o.Resolution)
}

func TestOptionsFromEnv_NTPSource(t *testing.T) {
	t.Setenv(envNTPServer, "ntp.test")
	t.Setenv(envNTPInterval, "60000")

	o := OptionsFromEnv()
	src, ok := o.Source.(*NTPSource)
	require.True(t, ok, "Source = %T, want *NTPSource", o.Source)
	assert.Equal(t, "ntp.test", src.server)
	assert.Equal(t, time.Minute, src.syncInterval)
}

func TestOptionsFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv(envPrecise, "definitely")
	t.Setenv(envResolution, "-5")

	o := OptionsFromEnv()
	assert.False(t, o.Precise)
	assert.Zero(t, o.Resolution)
}
