package xsock

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xaddr/pkg/net/xip"
)

func TestAddrPort(t *testing.T) {
	tests := []struct {
		text string
		ap   netip.AddrPort
	}{
		{"10.0.0.1:53", netip.MustParseAddrPort("10.0.0.1:53")},
		{"[2001:db8::1]:8080", netip.MustParseAddrPort("[2001:db8::1]:8080")},
		{"[fe80::1%3]:5353", netip.MustParseAddrPort("[fe80::1%3]:5353")},
		{"[::ffff:1.2.3.4]:80", netip.MustParseAddrPort("[::ffff:1.2.3.4]:80")},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := MustParse(tt.text)
			assert.Equal(t, tt.ap, s.AddrPort())

			back, err := FromAddrPort(tt.ap)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}

	_, err := FromAddrPort(netip.MustParseAddrPort("[fe80::1%eth0]:53"))
	assert.ErrorIs(t, err, xip.ErrZone)

	_, err = FromAddrPort(netip.AddrPort{})
	assert.ErrorIs(t, err, xip.ErrAddrParse)
}

func TestStdAddrs(t *testing.T) {
	s, err := FromUDPAddr(&net.UDPAddr{IP: net.ParseIP("10.0.0.1"), Port: 53})
	require.NoError(t, err)
	assert.Equal(t, MustParse("10.0.0.1:53"), s, "16 字节的 IPv4 得到 IPv4 变体")

	s, err = FromTCPAddr(&net.TCPAddr{IP: net.ParseIP("fe80::1"), Port: 22, Zone: "4"})
	require.NoError(t, err)
	assert.Equal(t, MustParse("[fe80::1%4]:22"), s)

	udp := s.UDPAddr()
	assert.Equal(t, "4", udp.Zone)
	assert.Equal(t, 22, udp.Port)
	assert.Equal(t, "[fe80::1%4]:22", udp.String())

	tcp := MustParse("127.0.0.1:8080").TCPAddr()
	assert.Equal(t, "127.0.0.1:8080", tcp.String())
	assert.Empty(t, tcp.Zone)

	_, err = FromUDPAddr(&net.UDPAddr{IP: net.ParseIP("fe80::1"), Port: 1, Zone: "eth0"})
	assert.ErrorIs(t, err, xip.ErrZone)
	_, err = FromUDPAddr(&net.UDPAddr{IP: net.IP{1, 2}, Port: 1})
	assert.ErrorIs(t, err, xip.ErrAddrParse)
	_, err = FromTCPAddr(&net.TCPAddr{IP: net.ParseIP("::1"), Port: 70000})
	assert.ErrorIs(t, err, xip.ErrAddrParse)
	_, err = FromUDPAddr(nil)
	assert.ErrorIs(t, err, xip.ErrAddrParse)
	_, err = FromTCPAddr(nil)
	assert.ErrorIs(t, err, xip.ErrAddrParse)
}
