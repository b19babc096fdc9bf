package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gesturecraft/gesture"
)

var encodeCmd = &cobra.Command{
	Use:     "encode [finger...]",
	Short:   "Print the gesture id for a set of fingers",
	Example: "  gesturecraft encode index middle   # G_01100",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := gesture.ParseFingers(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gesture.Encode(sel))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <gesture-id>",
	Short: "Print the fingers selected by a gesture id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := gesture.ID(strings.TrimSpace(args[0]))
		sel, err := gesture.Decode(id)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n", id, id.Binary())
		if sel.IsEmpty() {
			fmt.Fprintln(out, "(no fingers)")
			return nil
		}
		fmt.Fprintln(out, strings.Join(sel.Names(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
