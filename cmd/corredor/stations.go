package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/transitprint/corredor/stations"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Print the corridor station table",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "POS\tCODE\tNAME")
		for _, st := range stations.Corridor() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", st.Position, st.Code, st.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}
