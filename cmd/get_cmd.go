package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzjyyds666/tq/internal/ui"
	"github.com/dzjyyds666/tq/parse"
	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/dzjyyds666/tq/pkg"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Find  string `json:"find"`  // 查找的key
	Input string `json:"input"` // 输入文件路径
}

var getParams *GetParams

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "print the value at a dotted key path",
	Run:   getRun,
}

func init() {
	getParams = &GetParams{}
	getCmd.Flags().StringVarP(&getParams.Find, "find", "f", "", "dotted key path")
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path")
}

func getRun(cmd *cobra.Command, args []string) {
	doc, ok := loadDocument(getParams.Input)
	if !ok {
		return
	}
	if len(getParams.Find) == 0 {
		fmt.Println("no key path")
		return
	}
	path := strings.Split(getParams.Find, ".")
	v, ok := parse.GetUntyped(doc, path...)
	if !ok {
		ui.ErrorLine(os.Stderr, fmt.Errorf("key %s not found", getParams.Find))
		return
	}
	fmt.Println(v)
}

// loadDocument 读取并解析输入文件
func loadDocument(input string) (*toml.Document, bool) {
	if len(input) == 0 {
		fmt.Println("no input file path")
		return nil, false
	}
	exist, err := pkg.CheckFileExist(input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return nil, false
	}
	if !exist {
		fmt.Println("input file not exist")
		return nil, false
	}
	f, err := os.Open(input)
	if err != nil {
		fmt.Println("open file error:", err)
		return nil, false
	}
	defer f.Close()
	doc, err := parse.ParseToml(f)
	if err != nil {
		ui.ErrorLine(os.Stderr, err)
		return nil, false
	}
	return doc, true
}
