package cmd

import (
	stdctx "context"
	"dyzs/hkcamera/context"
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "对配置的全彩摄像头抓图一次，输出图片路径",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		writer, err := newWriter()
		if err != nil {
			return err
		}
		client := newCaptureClient(m, writer)
		cameras, err := context.GetCameras()
		if err != nil {
			return err
		}
		paths := client.TakePhotos(stdctx.Background(), cameras)
		for _, p := range paths {
			fmt.Println(p)
		}
		if len(paths) < len(cameras) {
			return fmt.Errorf("抓图成功 %d/%d", len(paths), len(cameras))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
