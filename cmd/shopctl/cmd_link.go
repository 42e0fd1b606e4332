package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/senghong-shop/internal/checkout"

	"github.com/spf13/cobra"
)

var linkHandle string

// linkCmd 为任意消息生成聊天深链，消息取自参数或标准输入
var linkCmd = &cobra.Command{
	Use:   "link [message]",
	Short: "Build a Telegram checkout link for a message",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLink,
}

func init() {
	linkCmd.Flags().StringVar(&linkHandle, "handle", "", "chat handle (defaults to checkout.chat_handle)")
}

func runLink(cmd *cobra.Command, args []string) error {
	message := ""
	if len(args) == 1 {
		message = args[0]
	} else {
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		message = strings.TrimRight(string(body), "\n")
	}
	handle := linkHandle
	if strings.TrimSpace(handle) == "" {
		handle = cfg.Checkout.ChatHandle
	}
	fmt.Fprintln(cmd.OutOrStdout(), checkout.BuildURL(cfg.Checkout.ChatBaseURL, handle, message))
	return nil
}
