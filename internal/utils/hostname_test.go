package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carvoy/carvoy_backend/internal/utils"
)

func TestNormalizeDomainKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare hostname", "a.example.com", "a.example.com"},
		{"uppercase", "A.Example.COM", "a.example.com"},
		{"with scheme", "https://a.example.com", "a.example.com"},
		{"with scheme and path", "https://a.example.com/booking?step=2", "a.example.com"},
		{"with port", "a.example.com:8443", "a.example.com"},
		{"with path no scheme", "a.example.com/booking", "a.example.com"},
		{"surrounding whitespace", "  a.example.com \n", "a.example.com"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.NormalizeDomainKey(tc.in))
		})
	}
}

func TestHostFromReferrer(t *testing.T) {
	host, err := utils.HostFromReferrer("https://parent.example.com/embed/widget")
	assert.NoError(t, err)
	assert.Equal(t, "parent.example.com", host)

	host, err = utils.HostFromReferrer("https://Parent.Example.com:8080/")
	assert.NoError(t, err)
	assert.Equal(t, "parent.example.com", host)

	_, err = utils.HostFromReferrer("")
	assert.Error(t, err)

	_, err = utils.HostFromReferrer("not a url at all ::")
	assert.Error(t, err)

	_, err = utils.HostFromReferrer("/relative/path/only")
	assert.Error(t, err)
}
