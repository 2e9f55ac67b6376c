package metrics

import (
	"encoding/json"
	"fmt"

	"github.com/nathanhack/infochannel/channel"
	"github.com/nathanhack/infochannel/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var JSON bool

var MetricsRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires PROBS_FILE")
		return
	}

	d, c, err := tools.LoadChannel(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	m := channel.ComputeMetrics(d, c)
	if !JSON {
		fmt.Print(m)
		return
	}

	bs, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		fmt.Println("Unable to serialize the metrics: ", err)
		return
	}
	fmt.Println(string(bs))
}
