package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/assesskit/assesskit/internal/client"
	"github.com/assesskit/assesskit/internal/tui"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take an assessment in the terminal",
	Long:  "Assess connects to an assesskit server, presents one question per page and submits your answers for grading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, _ := cmd.Flags().GetString("server")
		ctrl := client.NewController(client.NewAPI(server))
		p := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run UI: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	server := os.Getenv("ASSESS_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().String("server", server, "Base URL of the assessment server (overrides ASSESS_SERVER)")
	rootCmd.AddCommand(versionCmd)
}
