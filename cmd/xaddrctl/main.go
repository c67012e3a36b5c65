// xaddrctl 是 xaddr 地址库的命令行工具。
//
// 用法:
//
//	xaddrctl <命令> [命令参数]
//
// 命令:
//
//	parse <text>...        解析地址或套接字地址，输出规范形式
//	format [--hex] <ip>    输出规范形式，--hex 以纯十六进制输出 IPv4 映射地址
//	classify [--in r] <ip> 输出地址分类，--in 检查是否落在给定范围内
//	resolve <target>...    按分派规则解析目标（--config 指定解析器配置）
//	version                显示版本信息
//
// 退出码:
//
//	0: 成功
//	1: 解析失败或运行错误
//	2: 参数错误（缺少参数、未知 flag 等）
//
// 示例:
//
//	xaddrctl parse "[2001:DB8:0::1]:8080"    # [2001:db8::1]:8080
//	xaddrctl format --hex ::ffff:1.2.3.4       # ::ffff:102:304
//	xaddrctl classify --in 10.0.0.0/8 10.1.2.3
//	xaddrctl resolve -c resolver.yaml db.internal:5432
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xaddrctl",
		Usage:     "IP 地址与套接字地址工具",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    stdout,
		ErrWriter: stderr,
		Commands:  createCommands(),
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
		OnUsageError: onUsageError,
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, args); err != nil {
		return exitCode(err, stderr)
	}
	return 0
}

// exitCode 将命令错误映射为退出码并输出错误信息。
func exitCode(err error, stderr io.Writer) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
