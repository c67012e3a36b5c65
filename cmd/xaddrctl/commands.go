package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xresolve"
	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// defaultTimeout resolve 命令的默认超时时间。
const defaultTimeout = 5 * time.Second

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createFormatCommand(),
		createClassifyCommand(),
		createResolveCommand(),
		createVersionCommand(),
	}
}

func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:         "parse",
		Aliases:      []string{"p"},
		Usage:        "解析地址或套接字地址，输出规范形式",
		ArgsUsage:    "<text>...",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}
			return cmdParse(cmd.Root().Writer, cmd.Root().ErrWriter, cmd.Args().Slice())
		},
	}
}

func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:         "format",
		Aliases:      []string{"f"},
		Usage:        "输出规范形式",
		ArgsUsage:    "<ip|socket>",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "IPv4 映射地址以纯十六进制输出（::ffff:102:304）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}
			style := xip.DefaultStyle
			if cmd.Bool("hex") {
				style = xip.HexStyle
			}
			return cmdFormat(cmd.Root().Writer, cmd.Args().First(), style)
		},
	}
}

func createClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:         "classify",
		Aliases:      []string{"c"},
		Usage:        "输出地址分类",
		ArgsUsage:    "<ip>",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "in",
				Usage: "检查地址是否落在范围内（a.b.c.d/n、a-b 或单个地址，可重复）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}
			return cmdClassify(cmd.Root().Writer, cmd.Args().First(), cmd.StringSlice("in"))
		},
	}
}

func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:         "resolve",
		Aliases:      []string{"r"},
		Usage:        "解析目标为套接字地址（host:port 或字面量）",
		ArgsUsage:    "<target>...",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "解析器配置文件（.yaml/.yml/.json），缺省使用平台解析器",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "整体超时时间",
				Value:   defaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "向 stderr 输出解析日志",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}
			cfg := xresolve.Config{System: true}
			if path := cmd.String("config"); path != "" {
				var err error
				if cfg, err = xresolve.LoadConfigFile(path); err != nil {
					return err
				}
			}
			var opts []xresolve.Option
			if cmd.Bool("verbose") {
				logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
				opts = append(opts, xresolve.WithLogger(logger))
			}
			r, err := xresolve.BuildResolver(cfg, opts...)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()
			return cmdResolve(ctx, cmd.Root().Writer, cmd.Root().ErrWriter, r, cmd.Args().Slice())
		},
	}
}

func createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "显示版本信息",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "xaddrctl %s (commit: %s)\n", Version, GitCommit)
			return err
		},
	}
}

func requireArgs(cmd *cli.Command, n int) error {
	if cmd.Args().Len() < n {
		return &usageError{msg: fmt.Sprintf("%s 需要参数 %s", cmd.Name, cmd.ArgsUsage)}
	}
	return nil
}

// =============================================================================
// 命令实现
// =============================================================================

// describe 返回文本的规范形式与种类描述。
func describe(text string) (string, error) {
	if ip, err := xip.ParseIP(text); err == nil {
		return fmt.Sprintf("%s\t%s", ip, ip.Version()), nil
	}
	s, err := xsock.Parse(text)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\tsocket %s", s, s.IP().Version()), nil
}

// cmdParse 逐个解析参数。任一参数无效时在输出全部结果后返回退出码 1。
func cmdParse(stdout, stderr io.Writer, args []string) error {
	failed := false
	for _, text := range args {
		line, err := describe(text)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed = true
			continue
		}
		fmt.Fprintln(stdout, line)
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

func cmdFormat(stdout io.Writer, text string, style xip.Style) error {
	var buf []byte
	if ip, err := xip.ParseIP(text); err == nil {
		buf = style.AppendIP(buf, ip)
	} else {
		s, err := xsock.Parse(text)
		if err != nil {
			return err
		}
		if v6, ok := s.As6(); ok {
			buf = v6.AppendStyle(buf, style)
		} else {
			buf = s.AppendTo(buf)
		}
	}
	buf = append(buf, '\n')
	_, err := stdout.Write(buf)
	return err
}

func cmdClassify(stdout io.Writer, text string, ranges []string) error {
	ip, err := xip.ParseIP(text)
	if err != nil {
		return err
	}
	c := xip.Classify(ip)

	var b strings.Builder
	fmt.Fprintf(&b, "address: %s\n", ip)
	fmt.Fprintf(&b, "version: %s\n", c.Version)
	fmt.Fprintf(&b, "class:   %s\n", c)
	fmt.Fprintf(&b, "labels:  %s\n", strings.Join(c.Labels(), ","))
	if c.HasMulticastScope {
		fmt.Fprintf(&b, "scope:   %s\n", c.MulticastScope)
	}

	if len(ranges) > 0 {
		set, err := xip.ParseRangeSet(ranges)
		if err != nil {
			return err
		}
		for _, s := range ranges {
			r, err := xip.ParseRange(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "in %s: %t\n", s, xip.RangeContains(r, ip))
		}
		fmt.Fprintf(&b, "in any: %t\n", xip.SetContains(set, ip))
	}

	_, err = io.WriteString(stdout, b.String())
	return err
}

// cmdResolve 逐个解析目标，每行输出 "目标<TAB>地址"。
// 任一目标失败时在输出全部结果后返回退出码 1。
func cmdResolve(ctx context.Context, stdout, stderr io.Writer, r xresolve.Resolver, targets []string) error {
	failed := false
	for _, target := range targets {
		addrs, err := xresolve.ToSocketAddrs(ctx, r, target)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", target, err)
			failed = true
			continue
		}
		for a := range addrs.All() {
			fmt.Fprintf(stdout, "%s\t%s\n", target, a)
		}
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}
