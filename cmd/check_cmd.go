package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/tq/internal/ui"
	"github.com/spf13/cobra"
)

type CheckParams struct {
	Input string `json:"input"` // 输入文件路径
}

var checkParams *CheckParams

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "parse a file and report the first problem, if any",
	Run:   checkRun,
}

func init() {
	checkParams = &CheckParams{}
	checkCmd.Flags().StringVarP(&checkParams.Input, "input", "i", "", "input file path")
}

func checkRun(cmd *cobra.Command, args []string) {
	doc, ok := loadDocument(checkParams.Input)
	if !ok {
		return
	}
	ui.OkLine(os.Stdout, fmt.Sprintf("%s: %d top-level entries", checkParams.Input, doc.Root.Len()))
}
