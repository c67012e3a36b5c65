package xresolve_test

import (
	"context"
	"fmt"

	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xresolve"
)

func ExampleToSocketAddrs() {
	ctx := context.Background()
	r := xresolve.NewStatic(map[string][]xip.IPAddr{
		"db.internal": {xip.MustParseIP("10.0.0.5"), xip.MustParseIP("fd00::5")},
	})

	for _, in := range []string{"127.0.0.1:80", "db.internal:5432"} {
		addrs, err := xresolve.ToSocketAddrs(ctx, r, in)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		for a := range addrs.All() {
			fmt.Println(in, "->", a, addrs.IsLiteral())
		}
	}
	// Output:
	// 127.0.0.1:80 -> 127.0.0.1:80 true
	// db.internal:5432 -> 10.0.0.5:5432 false
	// db.internal:5432 -> [fd00::5]:5432 false
}

func ExampleFromHostPort() {
	addrs, err := xresolve.FromHostPort("2001:db8::1", 443).SocketAddrs(context.Background(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a, _ := addrs.Next()
	fmt.Println(a)
	// Output:
	// [2001:db8::1]:443
}

func ExampleLoadConfig() {
	cfg, err := xresolve.LoadConfig([]byte(`
hosts:
  - name: cache
    addrs: ["192.168.1.9"]
cache:
  size: 64
  ttl: 1m
`), xresolve.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, err := xresolve.BuildResolver(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	addrs, err := xresolve.ToSocketAddrs(context.Background(), r, "cache:6379")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(xresolve.Collect(&addrs))
	// Output:
	// [192.168.1.9:6379]
}
