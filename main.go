package main

import (
	"dyzs/hkcamera/cmd"

	_ "dyzs/hkcamera/operator/plugin-imagesave"
	_ "dyzs/hkcamera/operator/plugin-kafkaproducer"
	_ "dyzs/hkcamera/operator/plugin-mqttpublish"
	_ "dyzs/hkcamera/operator/plugin-platecache"
	_ "dyzs/hkcamera/operator/plugin-platepush"
	_ "dyzs/hkcamera/operator/plugin-platestore"
)

func main() {
	cmd.Execute()
}
