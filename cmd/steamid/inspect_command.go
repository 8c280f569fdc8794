package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/steamwire/steamid/steamid"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>...",
		Short: "Decode identifiers and show their fields",
		Long:  "Decode each argument (the format is auto-detected) and show the unpacked fields alongside all three encodings.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				id, err := steamid.Parse(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				writeInspect(out, id)
			}
			return nil
		},
	}
}

func writeInspect(out io.Writer, id steamid.SteamID) {
	fields := id.Fields()
	rows := [][]string{
		{"universe", fmt.Sprintf("%s (%d)", fields.Universe, uint8(fields.Universe))},
		{"account type", fmt.Sprintf("%s (%d)", fields.AccountType, uint8(fields.AccountType))},
		{"account id", fmt.Sprintf("%d", fields.AccountID)},
		{"full account id", fmt.Sprintf("%d", id.FullAccountID())},
		{"instance", fmt.Sprintf("%d", fields.Instance)},
		{"low bit", fmt.Sprintf("%d", fields.LowBit)},
	}
	for _, f := range []steamid.Format{steamid.FormatDefault, steamid.FormatCommunity32, steamid.FormatCommunity64} {
		rendered, err := id.Encode(f)
		if err != nil {
			rendered = "(not representable)"
		}
		rows = append(rows, []string{f.String(), rendered})
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s\t%s\n", row[0], row[1])
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
