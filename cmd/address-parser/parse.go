package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ehdc-llpg/housenumber/internal/address"
)

// demoAddresses are the sample inputs printed by parse --demo.
var demoAddresses = []string{
	"Winterallee 3",
	"Musterstrasse 45",
	"Blaufeldweg 123B",
	"Am Bächle 23",
	"Auf der Vogelwiese 23 b",
	"4, rue de la revolution",
	"200 Broadway Av",
	"Calle Aduana, 29",
	"Calle 39 No 1540",
}

func createParseCmd(a *app) *cobra.Command {
	var format string
	var demo bool

	cmd := &cobra.Command{
		Use:   "parse [address...]",
		Short: "Parse one or more addresses",
		Long:  `Parse each argument as a separate address. Faults are written to the error log and shown as a null result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if demo {
				args = append(demoAddresses[:len(demoAddresses):len(demoAddresses)], args...)
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one address required (or --demo)")
			}

			faults := 0
			out := cmd.OutOrStdout()
			for _, addr := range args {
				p := a.factory.New(addr)
				res, ok := p.Operation()
				if !ok {
					faults++
				}
				var err error
				if format == "json" {
					err = writeJSONLine(out, addr, res, ok)
				} else {
					err = writeText(out, p, res, ok)
				}
				if err != nil {
					return err
				}
			}

			if faults > 0 {
				return fmt.Errorf("%d address(es) could not be parsed, see %s", faults, a.cfg.Log.ErrorFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or text")
	cmd.Flags().BoolVar(&demo, "demo", false, "Parse the built-in sample addresses")

	return cmd
}

func writeJSONLine(w io.Writer, addr string, res address.Result, ok bool) error {
	line := struct {
		Address string          `json:"address"`
		Result  *address.Result `json:"result"`
	}{Address: addr}
	if ok {
		line.Result = &res
	}
	return json.NewEncoder(w).Encode(line)
}

func writeText(w io.Writer, p *address.Parser, res address.Result, ok bool) error {
	label := color.New(color.Bold).SprintFunc()
	var err error
	switch {
	case !ok:
		_, err = fmt.Fprintf(w, "%s [%s]\n  %s\n", label(p.Address()), p.Mode(), color.RedString("no result (fault logged)"))
	case res.Failed():
		_, err = fmt.Fprintf(w, "%s [%s]\n  error: %s\n", label(p.Address()), p.Mode(), color.YellowString(res.Error))
	default:
		_, err = fmt.Fprintf(w, "%s [%s]\n  street:      %s\n  housenumber: %s\n",
			label(p.Address()), p.Mode(), color.GreenString(res.Street), color.CyanString(res.HouseNumber))
	}
	return err
}
