package addrparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  [4]byte
		ok    bool
	}{
		{"0.0.0.0", [4]byte{0, 0, 0, 0}, true},
		{"127.0.0.1", [4]byte{127, 0, 0, 1}, true},
		{"255.255.255.255", [4]byte{255, 255, 255, 255}, true},
		{"10.0.0.10", [4]byte{10, 0, 0, 10}, true},
		{"1.2.3.04", [4]byte{}, false},
		{"01.2.3.4", [4]byte{}, false},
		{"1.2.3.00", [4]byte{}, false},
		{"1.2.3.4.5", [4]byte{}, false},
		{"1.2.3", [4]byte{}, false},
		{"256.0.0.1", [4]byte{}, false},
		{"1.2.3.1000", [4]byte{}, false},
		{"1..2.3", [4]byte{}, false},
		{".1.2.3", [4]byte{}, false},
		{"1.2.3.", [4]byte{}, false},
		{" 1.2.3.4", [4]byte{}, false},
		{"1.2.3.4 ", [4]byte{}, false},
		{"1.2.3.+4", [4]byte{}, false},
		{"1.2.3.a", [4]byte{}, false},
		{"", [4]byte{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := IPv4(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIPv6(t *testing.T) {
	tests := []struct {
		input string
		want  [8]uint16
		ok    bool
	}{
		{"::", [8]uint16{}, true},
		{"::1", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, true},
		{"1::", [8]uint16{1}, true},
		{"2001:db8::1", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, true},
		{"2001:DB8::A", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 0xa}, true},
		{"1:2:3:4:5:6:7:8", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, true},
		{"1:2:3:4:5:6:7::", [8]uint16{1, 2, 3, 4, 5, 6, 7, 0}, true},
		{"::2:3:4:5:6:7:8", [8]uint16{0, 2, 3, 4, 5, 6, 7, 8}, true},
		{"0000:0000::0001", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, true},
		{"::ffff:192.0.2.1", [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc000, 0x0201}, true},
		{"::192.0.2.1", [8]uint16{0, 0, 0, 0, 0, 0, 0xc000, 0x0201}, true},
		{"1:2:3:4:5:6:1.2.3.4", [8]uint16{1, 2, 3, 4, 5, 6, 0x0102, 0x0304}, true},

		{"::1::2", [8]uint16{}, false},
		{"1:2:3:4:5:6:7:8:9", [8]uint16{}, false},
		{"1:2:3:4:5:6:7", [8]uint16{}, false},
		{"1:2:3:4:5:6:7:8::", [8]uint16{}, false},
		{"1:2:3:4:5:6:7::8", [8]uint16{}, false},
		{"12345::", [8]uint16{}, false},
		{"g::1", [8]uint16{}, false},
		{":1::", [8]uint16{}, false},
		{"1:", [8]uint16{}, false},
		{":::", [8]uint16{}, false},
		{"1.2.3.4", [8]uint16{}, false},
		{"::1.2.3.4:1", [8]uint16{}, false},
		{"::1.2.3.04", [8]uint16{}, false},
		{"1:2:3:4:5:6:7:1.2.3.4", [8]uint16{}, false},
		{"1:2:3:4:5:6::1.2.3.4", [8]uint16{}, false},
		{"fe80::1%1", [8]uint16{}, false},
		{"", [8]uint16{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := IPv6(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, segmentsToBytes(tt.want), got)
			}
		})
	}
}

func TestSocketV4(t *testing.T) {
	ip, port, ok := SocketV4("127.0.0.1:8080")
	require.True(t, ok)
	assert.Equal(t, [4]byte{127, 0, 0, 1}, ip)
	assert.Equal(t, uint16(8080), port)

	ip, port, ok = SocketV4("0.0.0.0:0")
	require.True(t, ok)
	assert.Equal(t, [4]byte{}, ip)
	assert.Zero(t, port)

	for _, bad := range []string{
		"127.0.0.1",
		"127.0.0.1:",
		"127.0.0.1:65536",
		"127.0.0.1:123456",
		"127.0.0.1:-1",
		"127.0.0.1:80x",
		"[127.0.0.1]:80",
		"localhost:80",
		"01.0.0.1:80",
	} {
		_, _, ok := SocketV4(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseSocketV6(t *testing.T) {
	v, ok := ParseSocketV6("[2001:db8::1]:8080")
	require.True(t, ok)
	assert.Equal(t, segmentsToBytes([8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}), v.IP)
	assert.Equal(t, uint16(8080), v.Port)
	assert.Zero(t, v.ScopeID)

	v, ok = ParseSocketV6("[fe80::1%4294967295]:53")
	require.True(t, ok)
	assert.Equal(t, uint32(4294967295), v.ScopeID)
	assert.Equal(t, uint16(53), v.Port)

	for _, bad := range []string{
		"2001:db8::1:8080",
		"[2001:db8::1]",
		"[2001:db8::1]:",
		"[2001:db8::1]8080",
		"[2001:db8::1:8080",
		"[fe80::1%]:53",
		"[fe80::1%eth0]:53",
		"[fe80::1%4294967296]:53",
		"[127.0.0.1]:80",
		"[::1]:65536",
	} {
		_, ok := ParseSocketV6(bad)
		assert.False(t, ok, bad)
	}
}

func TestPort(t *testing.T) {
	for in, want := range map[string]uint16{"0": 0, "80": 80, "65535": 65535, "00080": 80} {
		got, ok := Port(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "65536", "000080", "+80", "8o", " 80"} {
		_, ok := Port(bad)
		assert.False(t, ok, bad)
	}
}

func TestDecimal(t *testing.T) {
	v, ok := Decimal("24", 3, 128)
	assert.True(t, ok)
	assert.Equal(t, uint64(24), v)

	_, ok = Decimal("024", 3, 128)
	assert.False(t, ok)
	_, ok = Decimal("129", 3, 128)
	assert.False(t, ok)
}

func FuzzIPv6NoPanic(f *testing.F) {
	f.Add("::")
	f.Add("2001:db8::1")
	f.Add("::ffff:1.2.3.4")
	f.Add("1:2:3:4:5:6:7::")
	f.Fuzz(func(t *testing.T, s string) {
		_, _ = IPv6(s)
		_, _ = IPv4(s)
		_, _ = ParseSocketV6(s)
		_, _, _ = SocketV4(s)
	})
}
