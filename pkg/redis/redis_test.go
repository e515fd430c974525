package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{Addr: "localhost:6379"}.withDefaults()
	assert.Equal(t, 10, o.PoolSize)
	assert.Equal(t, 10*time.Second, o.ReadTimeout)

	custom := Options{PoolSize: 3, ReadTimeout: time.Second}.withDefaults()
	assert.Equal(t, 3, custom.PoolSize)
	assert.Equal(t, time.Second, custom.ReadTimeout)
}
