package xip

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析/格式化往返模糊测试
// =============================================================================

func FuzzParseIPRoundTrip(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("0.0.0.0")
	f.Add("::")
	f.Add("::1")
	f.Add("2001:db8::1")
	f.Add("::ffff:192.168.1.1")
	f.Add("1:0:0:2::4")
	f.Add("1.2.3.04")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseIP(s)
		if err != nil {
			return
		}
		for _, style := range []Style{DefaultStyle, HexStyle} {
			text := string(style.AppendIP(nil, a))
			back, err := ParseIP(text)
			if err != nil {
				t.Fatalf("ParseIP(%q) failed on canonical output of %q: %v", text, s, err)
			}
			if back != a {
				t.Fatalf("round-trip mismatch: %q → %q → %v", s, text, back)
			}
			if again := string(style.AppendIP(nil, back)); again != text {
				t.Fatalf("canonical form not idempotent: %q → %q", text, again)
			}
		}
	})
}

// 与标准库交叉验证：凡是本包接受的输入，net/netip 也接受且值相同；
// 规范输出与 netip 的输出一致。
func FuzzParseAgainstNetip(f *testing.F) {
	f.Add("10.0.0.1")
	f.Add("fe80::1:2")
	f.Add("::ffff:1.2.3.4")
	f.Add("1::2:0:0:3:4")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseIP(s)
		if err != nil {
			return
		}
		want, err := netip.ParseAddr(s)
		if err != nil {
			t.Fatalf("netip rejected %q which xip accepted", s)
		}
		if a.Netip() != want {
			t.Fatalf("value mismatch for %q: xip=%v netip=%v", s, a.Netip(), want)
		}
		if a.String() != want.String() {
			t.Fatalf("format mismatch for %q: xip=%q netip=%q", s, a.String(), want.String())
		}
	})
}

func FuzzIPv6BytesFormat(f *testing.F) {
	f.Add([]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	f.Add(make([]byte, 16))

	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) != 16 {
			return
		}
		ip := IPv6Addr(b)
		text := ip.String()
		if len(text) > MaxIPv6Len {
			t.Fatalf("text %q exceeds MaxIPv6Len", text)
		}
		back, err := ParseIPv6(text)
		if err != nil || back != ip {
			t.Fatalf("round-trip failed for %x: %q (%v)", b, text, err)
		}
	})
}
