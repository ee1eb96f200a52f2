package commands

import (
	"github.com/spf13/cobra"

	"github.com/shrovate/shrovate/pkg/helperd"
)

var helperdPort int

var helperdCmd = &cobra.Command{
	Use:   "helperd",
	Short: "Run the local control daemon",
	Long: `Run the control daemon the console's voice commands call for
launching applications and for shutdown/restart/lock. The daemon binds
to localhost only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := helperd.NewServer()
		srv.Port = helperdPort
		return srv.ListenAndServe()
	},
}

func init() {
	helperdCmd.Flags().IntVar(&helperdPort, "port", helperd.DefaultPort, "listen port")
	rootCmd.AddCommand(helperdCmd)
}
