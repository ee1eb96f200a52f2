package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrovate/shrovate/pkg/console"
	"github.com/shrovate/shrovate/pkg/gemini"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard web console",
	Long: `Serve the SHROVATE dashboard on a local port.

The page renders the boot sequence, the chat terminal, and the voice
command node. All generative work is delegated to the Gemini API; a
missing GEMINI_API_KEY is reported here, before the server starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}

		client, err := gemini.NewClient(cmd.Context(), cfg.APIKey)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}
		var opts []console.Option
		if cfg.HelperURL != "" {
			opts = append(opts, console.WithHelperBaseURL(cfg.HelperURL))
		}
		srv := console.New(client, addr, opts...)
		fmt.Printf("SHROVATE console on http://%s\n", addr)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
