package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steamwire/steamid/steamid"
)

func newConvertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [<id>...]",
		Short: "Re-encode identifiers into another format",
		Long:  "Re-encode each argument into the requested format. With no arguments, identifiers are read one per line from standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := steamid.FormatFromName(to)
			if !ok {
				return fmt.Errorf("unknown format %q (want default, community32, or community64)", to)
			}

			out := cmd.OutOrStdout()
			convert := func(input string) error {
				id, err := steamid.Parse(input)
				if err != nil {
					return err
				}
				rendered, err := id.Encode(format)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, rendered)
				return nil
			}

			if len(args) > 0 {
				for _, arg := range args {
					if err := convert(arg); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := convert(line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&to, "to", steamid.FormatCommunity64.String(),
		"Target format: default, community32, or community64")

	return cmd
}
