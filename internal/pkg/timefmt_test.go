package pkg_test

import (
	"testing"
	"time"

	"Simple_Twitter/internal/pkg"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "3 hours ago", pkg.RelativeTime(time.Now().Add(-3*time.Hour)))
	assert.Equal(t, "2 days ago", pkg.RelativeTime(time.Now().Add(-48*time.Hour)))
}

func TestExactTime(t *testing.T) {
	ts := time.Date(2022, 11, 9, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "PM 03:04 2022年 Nov 09日", pkg.ExactTime(ts))
}
