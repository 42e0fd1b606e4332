// Command shopctl 运维命令行：检查表格目录、生成聊天链接、查看结账交接记录。
package main

import (
	"os"

	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "SengHong store operator tool",
	Long: `Operator commands for the SengHong storefront.

Available subcommands:
  catalog  - Fetch the product sheet and print the normalized catalog
  link     - Build a Telegram checkout link for a message
  handoffs - List recorded checkout handoffs`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg != nil {
			return
		}
		cfg = config.Load()
		logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd, linkCmd, handoffsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
