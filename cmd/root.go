package cmd

import (
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"fmt"
	"os"

	"github.com/json-iterator/go/extra"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hkcamera",
	Short: "海康摄像头车牌报警接入及抓图服务",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := context.InitConfig(cfgFile); err != nil {
			return err
		}
		logger.Init()
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	extra.RegisterFuzzyDecoders()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件，默认为程序目录下的 config.yml")
}
