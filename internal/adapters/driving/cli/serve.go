package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/psychmatch/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Documents live in memory for the lifetime of the process.

Routes:
  GET  /                     index
  POST /users                register (form or JSON: email, username, hobbies)
  GET  /users/confirm?uid=   confirm an email address
  GET  /users/:uid           user info
  POST /users/:uid/verify    confirm an email address
  GET  /matches              matches of the caller (header uid)
  GET  /messages             conversation partners of the caller (header uid)
  GET  /messages/:partner    conversation with partner (header uid)
  POST /messages/:partner    send a message (form or JSON: content; header uid)`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Users:    a.Users,
		Messages: a.Messages,
		Matches:  a.Matches,
	})
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = a.Settings.Server.Addr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on %s\n", addr)
	return server.Run(cmd.Context(), addr)
}
