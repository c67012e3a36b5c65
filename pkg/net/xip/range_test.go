package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		from, to string
	}{
		{"192.168.1.1", "192.168.1.1", "192.168.1.1"},
		{"192.168.1.0/24", "192.168.1.0", "192.168.1.255"},
		{"192.168.1.77/24", "192.168.1.0", "192.168.1.255"},
		{"0.0.0.0/0", "0.0.0.0", "255.255.255.255"},
		{"10.0.0.1-10.0.0.100", "10.0.0.1", "10.0.0.100"},
		{"2001:db8::/32", "2001:db8::", "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff"},
		{"::1-::ff", "::1", "::ff"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.from), r.From())
			assert.Equal(t, netip.MustParseAddr(tt.to), r.To())
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"192.168.1.0/33",
		"192.168.1.0/024",
		"192.168.1.0/",
		"::/129",
		"10.0.0.100-10.0.0.1",
		"10.0.0.1-::1",
		"10.0.0.1-",
		"10.0.0.01",
		" 10.0.0.1",
		"fe80::1%eth0",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseRange(s)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}

	_, err := ParseRange("10.0.0.01")
	assert.ErrorIs(t, err, ErrAddrParse, "地址部分的解析错误保留在链上")
}

func TestRangeSet(t *testing.T) {
	set, err := ParseRangeSet([]string{
		"10.0.0.50-10.0.0.150",
		"10.0.0.1-10.0.0.100",
		"192.168.1.0/24",
		"2001:db8::/64",
	})
	require.NoError(t, err)
	assert.Len(t, set.Ranges(), 3)

	assert.True(t, SetContains(set, MustParseIP("10.0.0.120")))
	assert.True(t, SetContains(set, MustParseIP("2001:db8::abcd")))
	assert.False(t, SetContains(set, MustParseIP("10.0.0.151")))
	assert.False(t, SetContains(set, MustParseIP("::ffff:10.0.0.120")), "mapped 地址不属于 IPv4 范围")
	assert.False(t, SetContains(nil, MustParseIP("10.0.0.1")))

	_, err = ParseRangeSet([]string{"10.0.0.1", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	empty, err := ParseRangeSet(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Ranges())
}

func TestRangeContains(t *testing.T) {
	r, err := ParseRange("172.16.0.0/12")
	require.NoError(t, err)
	assert.True(t, RangeContains(r, MustParseIP("172.20.1.1")))
	assert.False(t, RangeContains(r, MustParseIP("172.32.0.1")))
	assert.False(t, RangeContains(r, MustParseIP("::ffff:172.20.1.1")))
}
