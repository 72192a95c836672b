package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzjyyds666/tq/internal/ui"
	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/dzjyyds666/tq/pkg"
	"github.com/spf13/cobra"
)

type SetParams struct {
	Key    string `json:"key"`    // 要修改的key
	Value  string `json:"value"`  // 新的值
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var setParams *SetParams

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "set a key to a new value, keeping the surrounding formatting",
	Run:   setRun,
}

func init() {
	setParams = &SetParams{}
	setCmd.Flags().StringVarP(&setParams.Key, "key", "k", "", "dotted key path")
	setCmd.Flags().StringVarP(&setParams.Value, "value", "v", "", "new value, TOML syntax")
	setCmd.Flags().StringVarP(&setParams.Input, "input", "i", "", "input file path")
	setCmd.Flags().StringVarP(&setParams.Output, "output", "o", "", "output path, stdout when empty")
}

func setRun(cmd *cobra.Command, args []string) {
	doc, ok := loadDocument(setParams.Input)
	if !ok {
		return
	}
	if len(setParams.Key) == 0 {
		fmt.Println("no key path")
		return
	}
	out, err := applySet(doc, setParams.Key, setParams.Value)
	if err != nil {
		ui.ErrorLine(os.Stderr, err)
		return
	}
	if len(setParams.Output) == 0 {
		fmt.Print(out)
		return
	}
	if err := pkg.WriteFileSafe(setParams.Output, []byte(out)); err != nil {
		ui.ErrorLine(os.Stderr, err)
		return
	}
	ui.OkLine(os.Stdout, setParams.Output)
}

// applySet replaces the value at a dotted path, or appends the key to its
// table when it does not exist yet, and returns the re-serialized document.
func applySet(doc *toml.Document, keyPath, value string) (string, error) {
	val, err := toml.ParseValue(value)
	if err != nil {
		return "", err
	}
	path := strings.Split(keyPath, ".")
	if !doc.SetValue(path, val) {
		if err := doc.AppendValue(path[:len(path)-1], path[len(path)-1], val); err != nil {
			return "", err
		}
	}
	return doc.String(), nil
}
