package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehdc-llpg/housenumber/internal/address"
	"github.com/ehdc-llpg/housenumber/internal/debug"
	"github.com/ehdc-llpg/housenumber/internal/postal"
)

func createCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [address]",
		Short: "Compare the heuristic result with libpostal",
		Long:  `Prints the heuristic result next to libpostal's road and house_number labels. Requires a binary built with -tags libpostal.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !postal.Available() {
				return postal.ErrUnavailable
			}
			addr := args[0]

			p := a.factory.New(addr)
			res, ok := p.Operation()

			done := debug.Timing(a.logger, a.debug, "libpostal")
			components, err := postal.Parse(addr)
			done()
			if err != nil {
				return fmt.Errorf("libpostal failed: %w", err)
			}

			report := struct {
				Address    string             `json:"address"`
				Mode       string             `json:"mode"`
				Heuristic  *address.Result    `json:"heuristic"`
				Libpostal  address.Result     `json:"libpostal"`
				Components []postal.Component `json:"components"`
				Agree      bool               `json:"agree"`
			}{
				Address:    addr,
				Mode:       p.Mode().String(),
				Libpostal:  postal.ToResult(components),
				Components: components,
			}
			if ok {
				report.Heuristic = &res
				report.Agree = res == report.Libpostal
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
