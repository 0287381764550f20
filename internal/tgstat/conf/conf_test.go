package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5030", conf.HTTPAddr)
	assert.Equal(t, DefaultKeywords, conf.Analysis.Keywords)
	assert.Equal(t, "", conf.Analysis.Timezone)

	loc, err := conf.Analysis.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestNormalize_CommaSeparatedKeywords(t *testing.T) {
	conf := &Config{}
	conf.Analysis.Keywords = []string{"кохаю, добраніч", " сумую "}
	conf.Normalize()

	assert.Equal(t, []string{"кохаю", "добраніч", "сумую"}, conf.Analysis.Keywords)
}

func TestNormalize_EmptyKeywordsFallBack(t *testing.T) {
	conf := &Config{}
	conf.Normalize()
	assert.Equal(t, DefaultKeywords, conf.Analysis.Keywords)
}

func TestLocation_Explicit(t *testing.T) {
	c := AnalysisConfig{Timezone: "Europe/Kyiv"}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", loc.String())

	c.Timezone = "Not/AZone"
	_, err = c.Location()
	require.Error(t, err)
}
